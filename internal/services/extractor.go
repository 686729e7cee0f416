package services

import (
	"context"
	"fmt"
)

// ExtractionTask identifies one field the pipeline asks the model for.
// Email is deliberately absent: it has an unambiguous syntactic definition and
// is extracted locally by ExtractEmail instead of being delegated to the model.
type ExtractionTask string

const (
	TaskName               ExtractionTask = "name"
	TaskSkillList          ExtractionTask = "skill_list"
	TaskExperienceDuration ExtractionTask = "experience_duration"
)

// FieldExtractor issues one task-specific request to the text-generation
// capability and returns the raw answer untouched. It performs no retries and
// no validation; parsing the answer is entirely the normalizer's job.
type FieldExtractor interface {
	Extract(ctx context.Context, text string, task ExtractionTask) (string, error)
}

type fieldExtractor struct {
	generator     TextGenerator
	promptBuilder *PromptBuilder
	temperature   float32
}

func NewFieldExtractor(generator TextGenerator) FieldExtractor {
	return &fieldExtractor{
		generator:     generator,
		promptBuilder: NewPromptBuilder(),
		temperature:   0.2,
	}
}

// Extract implements FieldExtractor. For TaskExperienceDuration the caller is
// expected to pass the filtered professional-experience section, not the whole
// document.
func (e *fieldExtractor) Extract(ctx context.Context, text string, task ExtractionTask) (string, error) {
	var prompt string

	switch task {
	case TaskName:
		prompt = e.promptBuilder.BuildNamePrompt(text)
	case TaskSkillList:
		prompt = e.promptBuilder.BuildSkillListPrompt(text)
	case TaskExperienceDuration:
		prompt = e.promptBuilder.BuildExperiencePrompt(text)
	default:
		return "", fmt.Errorf("unknown extraction task: %q", task)
	}

	answer, err := e.generator.GenerateText(ctx, prompt, e.temperature)
	if err != nil {
		return "", fmt.Errorf("extraction task %s: %w", task, err)
	}

	return answer, nil
}
