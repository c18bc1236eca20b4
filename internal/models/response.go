package models

// FormType identifies which of the public forms a submission came from.
type FormType string

const (
	FormSubscription FormType = "subscription"
	FormEduWarrior   FormType = "eduwarrior"
	FormWebinar      FormType = "webinar"
)

func (f FormType) String() string {
	return string(f)
}

// SubmissionResponse is the JSON body returned by every submission endpoint.
// Exactly one of Message and Error is set.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// EndpointDescription is returned by GET on a submission endpoint.
type EndpointDescription struct {
	Message   string            `json:"message"`
	Webinar   *WebinarEvent     `json:"webinar,omitempty"`
	Endpoints map[string]string `json:"endpoints"`
}

type WebinarEvent struct {
	Title    string `json:"title" yaml:"title"`
	Date     string `json:"date" yaml:"date"`
	Audience string `json:"audience" yaml:"audience"`
	Mode     string `json:"mode" yaml:"mode"`
}
