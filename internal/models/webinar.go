package models

// WebinarRegistration is the payload of the five-section parent webinar form.
type WebinarRegistration struct {
	// Section 1: basic details
	ParentName string `json:"parentName"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	City       string `json:"city"`
	State      string `json:"state"`

	// Section 2: child profile
	NumberOfChildren string `json:"numberOfChildren"`
	ChildAgeGroup    string `json:"childAgeGroup"`
	EducationStage   string `json:"educationStage"`

	// Section 3: challenges and awareness
	ParentConcerns      []string `json:"parentConcerns"`
	SchoolSystemOpinion string   `json:"schoolSystemOpinion"`

	// Section 4: skill awareness
	LifeSkillsAwareness string   `json:"lifeSkillsAwareness"`
	SkillsNeeded        []string `json:"skillsNeeded"`

	// Section 5: final step
	IsDecisionMaker     string `json:"isDecisionMaker"`
	EnrollmentReadiness string `json:"enrollmentReadiness"`
	Consent             bool   `json:"consent"`
}

func (r *WebinarRegistration) UnmarshalJSON(data []byte) error {
	type plain WebinarRegistration
	return decodeLenient(data, (*plain)(r))
}
