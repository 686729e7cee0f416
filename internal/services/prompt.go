package services

import (
	"fmt"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildNamePrompt asks for the candidate's full name and nothing else.
func (pb *PromptBuilder) BuildNamePrompt(resumeText string) string {
	return fmt.Sprintf(`You are a resume parser. Extract only the full name of the candidate from the given resume text.

STRICTLY RETURN: Full name only, no titles, no salutations, no extra text.

Resume Text:
"""%s"""`, resumeText)
}

// BuildSkillListPrompt asks for a literal JSON array of technical skills.
// The model's compliance is inconsistent; NormalizeSkills handles the drift.
func (pb *PromptBuilder) BuildSkillListPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract only the technical skills (programming languages, libraries, frameworks, tools, platforms, APIs) from the resume below.

STRICTLY RETURN:
- A valid JSON array of strings, like this: ["Python", "Java", "SQL"]
- Do NOT include explanations, numbering, or categories
- Only the skills themselves

Resume:
"""%s"""`, resumeText)
}

// BuildExperiencePrompt asks for total full-time professional experience as a
// single fixed-format sentence. It embeds only the filtered experience section
// so the model does not count internships or academic work.
func (pb *PromptBuilder) BuildExperiencePrompt(experienceSection string) string {
	return fmt.Sprintf(`From the following text, extract only the total number of years and months of full-time professional work experience (in industry/company jobs only).

Do NOT count:
- internships
- academic/capstone/freelance/training experience
- college or research projects

Only count professional jobs (e.g., Software Engineer, Developer, etc.)

RETURN FORMAT (exactly one sentence):
"Total experience: X years Y months"

Text:
"""%s"""`, experienceSection)
}
