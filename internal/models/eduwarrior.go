package models

type EduWarriorApplication struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	City         string `json:"city"`
	Education    string `json:"education"`
	Expertise    string `json:"expertise"`
	Experience   string `json:"experience,omitempty"`
	Motivation   string `json:"motivation"`
	Availability string `json:"availability"`
}

func (a *EduWarriorApplication) UnmarshalJSON(data []byte) error {
	type plain EduWarriorApplication
	return decodeLenient(data, (*plain)(a))
}
