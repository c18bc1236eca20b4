package forms

import (
	"context"
	"slices"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

const (
	FirstSection = 1
	LastSection  = 5

	mobileDigits = 10

	MsgIncompleteSection = "Please fill all required fields before proceeding."
	MsgIncompleteForm    = "Please fill all required fields and accept the consent."
)

// WebinarState is the whole wizard at one point in time. Values are never
// mutated in place; every change produces a new state through ReduceWebinar.
type WebinarState struct {
	Section int
	Data    models.WebinarRegistration
	Status  Status
	Message string
}

func NewWebinarState() WebinarState {
	return WebinarState{Section: FirstSection, Status: StatusIdle}
}

// Progress is the completed share of the wizard in percent.
func (s WebinarState) Progress() int {
	return s.Section * 100 / LastSection
}

// Action is anything ReduceWebinar understands.
type Action interface {
	isWebinarAction()
}

// SetField sets a scalar field by its JSON name.
type SetField struct {
	Field string
	Value string
}

// ToggleOption adds or removes an option of parentConcerns or skillsNeeded.
type ToggleOption struct {
	Field  string
	Option string
}

type SetConsent struct {
	Value bool
}

type Advance struct{}

type Retreat struct{}

type SubmitStarted struct{}

type SubmitSucceeded struct{}

type SubmitFailed struct {
	Message string
}

func (SetField) isWebinarAction()        {}
func (ToggleOption) isWebinarAction()    {}
func (SetConsent) isWebinarAction()      {}
func (Advance) isWebinarAction()         {}
func (Retreat) isWebinarAction()         {}
func (SubmitStarted) isWebinarAction()   {}
func (SubmitSucceeded) isWebinarAction() {}
func (SubmitFailed) isWebinarAction()    {}

// ValidateSection reports whether every required answer of section n is
// present. Sections outside 1..5 are never valid.
func ValidateSection(d models.WebinarRegistration, n int) bool {
	switch n {
	case 1:
		return allSet(d.ParentName, d.Mobile, d.Email, d.City, d.State)
	case 2:
		return allSet(d.NumberOfChildren, d.ChildAgeGroup, d.EducationStage)
	case 3:
		return len(d.ParentConcerns) > 0 && d.SchoolSystemOpinion != ""
	case 4:
		return d.LifeSkillsAwareness != "" && len(d.SkillsNeeded) > 0
	case 5:
		return allSet(d.IsDecisionMaker, d.EnrollmentReadiness) && d.Consent
	default:
		return false
	}
}

// ReduceWebinar returns the state that follows s after a. While a submission
// is in flight only its outcome is accepted, and the thank-you state after a
// success accepts nothing.
func ReduceWebinar(s WebinarState, a Action) WebinarState {
	switch s.Status {
	case StatusSuccess:
		return s
	case StatusLoading:
		switch act := a.(type) {
		case SubmitSucceeded:
			s.Status = StatusSuccess
			s.Message = ""
		case SubmitFailed:
			s.Status = StatusError
			s.Message = act.Message
			if s.Message == "" {
				s.Message = MsgSomethingWrong
			}
		}
		return s
	}

	switch act := a.(type) {
	case SetField:
		s.Data = setField(s.Data, act.Field, act.Value)
		return edited(s)
	case ToggleOption:
		s.Data = toggleOption(s.Data, act.Field, act.Option)
		return edited(s)
	case SetConsent:
		s.Data.Consent = act.Value
		return edited(s)
	case Advance:
		s = edited(s)
		if !ValidateSection(s.Data, s.Section) {
			s.Message = MsgIncompleteSection
			return s
		}
		s.Section = min(s.Section+1, LastSection)
		s.Message = ""
		return s
	case Retreat:
		s = edited(s)
		s.Section = max(s.Section-1, FirstSection)
		s.Message = ""
		return s
	case SubmitStarted:
		if s.Section != LastSection {
			return s
		}
		if !ValidateSection(s.Data, LastSection) {
			s.Message = MsgIncompleteForm
			return s
		}
		s.Status = StatusLoading
		s.Message = ""
		return s
	}
	return s
}

// SubmitWebinar runs one accepted submission through submitter. It makes no
// call when the state does not accept SubmitStarted.
func SubmitWebinar(ctx context.Context, s WebinarState, submitter WebinarSubmitter) WebinarState {
	if s.Status == StatusLoading {
		return s
	}
	next := ReduceWebinar(s, SubmitStarted{})
	if next.Status != StatusLoading {
		return next
	}

	resp, err := submitter.RegisterWebinar(ctx, next.Data)
	if err != nil || !resp.Success {
		return ReduceWebinar(next, SubmitFailed{Message: failureMessage(resp, err)})
	}
	return ReduceWebinar(next, SubmitSucceeded{})
}

// edited moves an errored form back to idle once the user touches it.
func edited(s WebinarState) WebinarState {
	if s.Status == StatusError {
		s.Status = StatusIdle
		s.Message = ""
	}
	return s
}

func setField(d models.WebinarRegistration, field, value string) models.WebinarRegistration {
	switch field {
	case "parentName":
		d.ParentName = value
	case "mobile":
		d.Mobile = DigitsOnly(value, mobileDigits)
	case "email":
		d.Email = value
	case "city":
		d.City = value
	case "state":
		d.State = value
	case "numberOfChildren":
		d.NumberOfChildren = value
	case "childAgeGroup":
		d.ChildAgeGroup = value
	case "educationStage":
		d.EducationStage = value
	case "schoolSystemOpinion":
		d.SchoolSystemOpinion = value
	case "lifeSkillsAwareness":
		d.LifeSkillsAwareness = value
	case "isDecisionMaker":
		d.IsDecisionMaker = value
	case "enrollmentReadiness":
		d.EnrollmentReadiness = value
	}
	return d
}

func toggleOption(d models.WebinarRegistration, field, option string) models.WebinarRegistration {
	switch field {
	case "parentConcerns":
		d.ParentConcerns = toggled(d.ParentConcerns, option)
	case "skillsNeeded":
		d.SkillsNeeded = toggled(d.SkillsNeeded, option)
	}
	return d
}

// toggled returns a new slice so earlier states keep their own selection.
func toggled(selected []string, option string) []string {
	if i := slices.Index(selected, option); i >= 0 {
		return append(append([]string(nil), selected[:i]...), selected[i+1:]...)
	}
	return append(slices.Clone(selected), option)
}

func allSet(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}
