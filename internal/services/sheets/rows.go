package sheets

import (
	"strings"
	"time"

	"github.com/Rakeshkoyya/skillverse/internal/models"
)

// TimestampLayout is ISO-8601 with millisecond precision. Rows are always
// stamped in UTC so the layout ends in "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const listSeparator = ", "

// Free text is copied into rows exactly as typed.
type SubscriptionRow struct {
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	City      string `json:"city"`
	Role      string `json:"role"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

type EduWarriorRow struct {
	Timestamp    string `json:"timestamp"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	City         string `json:"city"`
	Education    string `json:"education"`
	Expertise    string `json:"expertise"`
	Experience   string `json:"experience"`
	Motivation   string `json:"motivation"`
	Availability string `json:"availability"`
}

// WebinarRow flattens a registration into spreadsheet cells: multi-selects
// become comma separated text and consent becomes "Yes" or "No".
type WebinarRow struct {
	Timestamp           string `json:"timestamp"`
	ParentName          string `json:"parentName"`
	Mobile              string `json:"mobile"`
	Email               string `json:"email"`
	City                string `json:"city"`
	State               string `json:"state"`
	NumberOfChildren    string `json:"numberOfChildren"`
	ChildAgeGroup       string `json:"childAgeGroup"`
	EducationStage      string `json:"educationStage"`
	ParentConcerns      string `json:"parentConcerns"`
	SchoolSystemOpinion string `json:"schoolSystemOpinion"`
	LifeSkillsAwareness string `json:"lifeSkillsAwareness"`
	SkillsNeeded        string `json:"skillsNeeded"`
	IsDecisionMaker     string `json:"isDecisionMaker"`
	EnrollmentReadiness string `json:"enrollmentReadiness"`
	Consent             string `json:"consent"`
}

func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func NewSubscriptionRow(req models.SubscriptionRequest, at time.Time) SubscriptionRow {
	return SubscriptionRow{
		Timestamp: Timestamp(at),
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		City:      req.City,
		Role:      req.Role,
		Type:      req.Type,
		Message:   req.Message,
	}
}

func NewEduWarriorRow(app models.EduWarriorApplication, at time.Time) EduWarriorRow {
	return EduWarriorRow{
		Timestamp:    Timestamp(at),
		Name:         app.Name,
		Email:        app.Email,
		Mobile:       app.Mobile,
		City:         app.City,
		Education:    app.Education,
		Expertise:    app.Expertise,
		Experience:   app.Experience,
		Motivation:   app.Motivation,
		Availability: app.Availability,
	}
}

func NewWebinarRow(reg models.WebinarRegistration, at time.Time) WebinarRow {
	consent := "No"
	if reg.Consent {
		consent = "Yes"
	}

	return WebinarRow{
		Timestamp:           Timestamp(at),
		ParentName:          reg.ParentName,
		Mobile:              reg.Mobile,
		Email:               reg.Email,
		City:                reg.City,
		State:               reg.State,
		NumberOfChildren:    reg.NumberOfChildren,
		ChildAgeGroup:       reg.ChildAgeGroup,
		EducationStage:      reg.EducationStage,
		ParentConcerns:      strings.Join(reg.ParentConcerns, listSeparator),
		SchoolSystemOpinion: reg.SchoolSystemOpinion,
		LifeSkillsAwareness: reg.LifeSkillsAwareness,
		SkillsNeeded:        strings.Join(reg.SkillsNeeded, listSeparator),
		IsDecisionMaker:     reg.IsDecisionMaker,
		EnrollmentReadiness: reg.EnrollmentReadiness,
		Consent:             consent,
	}
}
