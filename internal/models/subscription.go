package models

// SubscriptionTypeSubscribe marks a plain newsletter sign-up. Any other value,
// including an empty one, must carry the full contact details.
const SubscriptionTypeSubscribe = "subscribe"

// SubscriptionTypeWebinar is the type sent by the webinar sign-up variant of the form.
const SubscriptionTypeWebinar = "webinar"

type SubscriptionRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Mobile  string `json:"mobile,omitempty"`
	City    string `json:"city,omitempty"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
	Type    string `json:"type"`
}

// IsNewsletter reports whether only an email address is required.
func (r SubscriptionRequest) IsNewsletter() bool {
	return r.Type == SubscriptionTypeSubscribe
}

// IsWebinar reports whether the sign-up should be confirmed as a webinar
// registration.
func (r SubscriptionRequest) IsWebinar() bool {
	return r.Type == SubscriptionTypeWebinar
}

func (r *SubscriptionRequest) UnmarshalJSON(data []byte) error {
	type plain SubscriptionRequest
	return decodeLenient(data, (*plain)(r))
}
