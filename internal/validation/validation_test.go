package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

func validWebinar() models.WebinarRegistration {
	return models.WebinarRegistration{
		ParentName:          "Asha Rao",
		Mobile:              "9876543210",
		Email:               "asha@example.com",
		City:                "Pune",
		State:               "Maharashtra",
		NumberOfChildren:    "1",
		ChildAgeGroup:       "11–13 years",
		EducationStage:      "School (Class 7–10)",
		ParentConcerns:      []string{"Exam stress or anxiety"},
		SchoolSystemOpinion: "Partially",
		LifeSkillsAwareness: "Yes, I know about it",
		SkillsNeeded:        []string{"Focus & productivity"},
		IsDecisionMaker:     "Yes",
		EnrollmentReadiness: "Maybe",
		Consent:             true,
	}
}

func validEduWarrior() models.EduWarriorApplication {
	return models.EduWarriorApplication{
		Name:         "Ravi Kumar",
		Email:        "ravi@example.com",
		Mobile:       "9123456780",
		City:         "Indore",
		Education:    "graduate",
		Expertise:    "education",
		Motivation:   "I want to teach life skills.",
		Availability: "1-month",
	}
}

func assertMessage(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
	assert.Equal(t, want, err.Error())
}

func TestValidator_Subscription(t *testing.T) {
	v := validation.New()

	cases := []struct {
		name string
		req  models.SubscriptionRequest
		want string
	}{
		{
			name: "newsletter with email only",
			req:  models.SubscriptionRequest{Email: "a@b.co", Type: "subscribe"},
		},
		{
			name: "newsletter without email",
			req:  models.SubscriptionRequest{Type: "subscribe", Name: "A"},
			want: validation.MsgEmailRequired,
		},
		{
			name: "newsletter with bad email",
			req:  models.SubscriptionRequest{Email: "not-an-email", Type: "subscribe"},
			want: validation.MsgInvalidEmail,
		},
		{
			name: "webinar type missing role",
			req:  models.SubscriptionRequest{Email: "a@b.co", Name: "A", City: "Delhi", Type: "webinar"},
			want: validation.MsgMissingFields,
		},
		{
			name: "empty type is treated as webinar",
			req:  models.SubscriptionRequest{Email: "a@b.co"},
			want: validation.MsgMissingFields,
		},
		{
			name: "webinar type complete",
			req: models.SubscriptionRequest{
				Email: "a@b.co", Name: "A", City: "Delhi", Role: "parent", Type: "webinar",
			},
		},
		{
			name: "webinar type with bad email",
			req: models.SubscriptionRequest{
				Email: "a@b", Name: "A", City: "Delhi", Role: "parent", Type: "webinar",
			},
			want: validation.MsgInvalidEmail,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertMessage(t, v.Subscription(tc.req), tc.want)
		})
	}
}

func TestValidator_EduWarrior(t *testing.T) {
	v := validation.New()

	cases := []struct {
		name   string
		mutate func(a *models.EduWarriorApplication)
		want   string
	}{
		{name: "valid", mutate: func(*models.EduWarriorApplication) {}},
		{
			name:   "experience is optional",
			mutate: func(a *models.EduWarriorApplication) { a.Experience = "" },
		},
		{
			name:   "missing motivation",
			mutate: func(a *models.EduWarriorApplication) { a.Motivation = "" },
			want:   validation.MsgMissingFields,
		},
		{
			name:   "nine digit mobile",
			mutate: func(a *models.EduWarriorApplication) { a.Mobile = "912345678" },
			want:   validation.MsgInvalidMobile,
		},
		{
			name:   "mobile with letters",
			mutate: func(a *models.EduWarriorApplication) { a.Mobile = "91234abc90" },
			want:   validation.MsgInvalidMobile,
		},
		{
			name: "email checked before mobile",
			mutate: func(a *models.EduWarriorApplication) {
				a.Email = "ravi@"
				a.Mobile = "1"
			},
			want: validation.MsgInvalidEmail,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := validEduWarrior()
			tc.mutate(&app)
			assertMessage(t, v.EduWarrior(app), tc.want)
		})
	}
}

func TestValidator_Webinar(t *testing.T) {
	v := validation.New()

	cases := []struct {
		name   string
		mutate func(r *models.WebinarRegistration)
		want   string
	}{
		{name: "valid", mutate: func(*models.WebinarRegistration) {}},
		{
			name:   "missing state",
			mutate: func(r *models.WebinarRegistration) { r.State = "" },
			want:   "Missing required field: state",
		},
		{
			name: "first missing field wins",
			mutate: func(r *models.WebinarRegistration) {
				r.EnrollmentReadiness = ""
				r.ChildAgeGroup = ""
			},
			want: "Missing required field: childAgeGroup",
		},
		{
			name:   "no concerns",
			mutate: func(r *models.WebinarRegistration) { r.ParentConcerns = nil },
			want:   validation.MsgNoConcerns,
		},
		{
			name:   "empty skills",
			mutate: func(r *models.WebinarRegistration) { r.SkillsNeeded = []string{} },
			want:   validation.MsgNoSkills,
		},
		{
			name:   "consent not given",
			mutate: func(r *models.WebinarRegistration) { r.Consent = false },
			want:   validation.MsgConsentRequired,
		},
		{
			name: "consent checked before email format",
			mutate: func(r *models.WebinarRegistration) {
				r.Consent = false
				r.Email = "bad"
			},
			want: validation.MsgConsentRequired,
		},
		{
			name:   "mobile too long",
			mutate: func(r *models.WebinarRegistration) { r.Mobile = "98765432101" },
			want:   validation.MsgInvalidMobile,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := validWebinar()
			tc.mutate(&reg)
			assertMessage(t, v.Webinar(reg), tc.want)
		})
	}
}

func TestPatterns(t *testing.T) {
	assert.True(t, validation.IsEmail("x@y.in"))
	assert.False(t, validation.IsEmail("x y@z.in"))
	assert.False(t, validation.IsEmail("x@yin"))

	assert.True(t, validation.IsMobile("0123456789"))
	assert.False(t, validation.IsMobile("+911234567890"))
	assert.False(t, validation.IsMobile(""))
}
