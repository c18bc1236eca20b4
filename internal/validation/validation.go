package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

const (
	MsgEmailRequired   = "Email is required"
	MsgMissingFields   = "Missing required fields"
	MsgInvalidEmail    = "Invalid email format"
	MsgInvalidMobile   = "Invalid mobile number. Please enter 10 digits."
	MsgNoConcerns      = "Please select at least one concern about your child"
	MsgNoSkills        = "Please select at least one skill your child needs"
	MsgConsentRequired = "Please accept the consent to proceed"

	missingFieldFmt = "Missing required field: %s"

	tagRequired = "required"
	tagEmail    = "sv_email"
	tagMobile   = "sv_mobile"
	tagNonEmpty = "required,min=1"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Error is returned when a submission breaks one of the form rules. Message is
// safe to show to the person who filled in the form.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// IsValidationError reports whether err (or anything it wraps) is an *Error.
func IsValidationError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsMobile reports whether s is a ten digit mobile number.
func IsMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

type rule struct {
	value   any
	tag     string
	message string
}

// Validator checks the three public payloads. Rules are evaluated in order and
// the first failing rule decides the message.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation(tagEmail, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(tagMobile, func(fl validator.FieldLevel) bool {
		return IsMobile(fl.Field().String())
	})

	return &Validator{validate: v}
}

func (v *Validator) Subscription(req models.SubscriptionRequest) error {
	var rules []rule
	if req.IsNewsletter() {
		rules = append(rules, rule{req.Email, tagRequired, MsgEmailRequired})
	} else {
		rules = append(rules, requireAll(MsgMissingFields, req.Name, req.Email, req.City, req.Role)...)
	}
	rules = append(rules, rule{req.Email, tagEmail, MsgInvalidEmail})

	return v.check(rules)
}

func (v *Validator) EduWarrior(app models.EduWarriorApplication) error {
	rules := requireAll(MsgMissingFields,
		app.Name, app.Email, app.Mobile, app.City,
		app.Education, app.Expertise, app.Motivation, app.Availability,
	)
	rules = append(rules,
		rule{app.Email, tagEmail, MsgInvalidEmail},
		rule{app.Mobile, tagMobile, MsgInvalidMobile},
	)

	return v.check(rules)
}

func (v *Validator) Webinar(reg models.WebinarRegistration) error {
	var rules []rule
	for _, f := range WebinarRequiredFields(reg) {
		rules = append(rules, rule{f.Value, tagRequired, fmt.Sprintf(missingFieldFmt, f.Name)})
	}
	rules = append(rules,
		rule{reg.ParentConcerns, tagNonEmpty, MsgNoConcerns},
		rule{reg.SkillsNeeded, tagNonEmpty, MsgNoSkills},
		rule{reg.Consent, tagRequired, MsgConsentRequired},
		rule{reg.Email, tagEmail, MsgInvalidEmail},
		rule{reg.Mobile, tagMobile, MsgInvalidMobile},
	)

	return v.check(rules)
}

// Field is a named scalar form value.
type Field struct {
	Name  string
	Value string
}

// WebinarRequiredFields lists the scalar webinar fields in the order they are
// checked.
func WebinarRequiredFields(reg models.WebinarRegistration) []Field {
	return []Field{
		{"parentName", reg.ParentName},
		{"mobile", reg.Mobile},
		{"email", reg.Email},
		{"city", reg.City},
		{"state", reg.State},
		{"numberOfChildren", reg.NumberOfChildren},
		{"childAgeGroup", reg.ChildAgeGroup},
		{"educationStage", reg.EducationStage},
		{"schoolSystemOpinion", reg.SchoolSystemOpinion},
		{"lifeSkillsAwareness", reg.LifeSkillsAwareness},
		{"isDecisionMaker", reg.IsDecisionMaker},
		{"enrollmentReadiness", reg.EnrollmentReadiness},
	}
}

func requireAll(message string, values ...string) []rule {
	rules := make([]rule, 0, len(values))
	for _, value := range values {
		rules = append(rules, rule{value, tagRequired, message})
	}
	return rules
}

func (v *Validator) check(rules []rule) error {
	for _, r := range rules {
		err := v.validate.Var(r.value, r.tag)
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return &Error{Message: r.message}
		}
		return fmt.Errorf("validate %q: %w", r.tag, err)
	}
	return nil
}
