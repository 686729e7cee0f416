package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

type SubmissionRequest struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Skills          string  `json:"skills" validate:"required"`
	ExperienceYears float64 `json:"experience_years" validate:"gte=0,lte=50"`
	Motivation      string  `json:"motivation"`
	DocumentID      string  `json:"document_id" validate:"omitempty,uuid"`
}

type ScreeningRequest struct {
	Policy             string   `json:"policy" validate:"required,oneof=binary_gate weighted_tier"`
	MandatorySkills    []string `json:"mandatory_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	MinExperienceYears float64  `json:"min_experience_years" validate:"gte=0"`
	DocumentIDs        []string `json:"document_ids" validate:"omitempty,dive,uuid"`
	FromSubmissions    bool     `json:"from_submissions"`
}

type ScreeningResponse struct {
	BatchID string   `json:"batch_id"`
	JobIDs  []string `json:"job_ids"`
	Status  string   `json:"status"`
}

type CandidateData struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
}

type VerdictData struct {
	FitScore  float64 `json:"fit_score"`
	FitStatus string  `json:"fit_status"`
	Reason    string  `json:"reason"`
}

type ResultResponse struct {
	ID           string         `json:"id"`
	BatchID      string         `json:"batch_id"`
	Status       string         `json:"status"`
	Candidate    *CandidateData `json:"candidate,omitempty"`
	Verdict      *VerdictData   `json:"verdict,omitempty"`
	ErrorMessage *string        `json:"error_message,omitempty"`
}

type CandidateMatchResponse struct {
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Skills          string  `json:"skills"`
	ExperienceYears float64 `json:"experience_years"`
	Similarity      float32 `json:"similarity"`
}
