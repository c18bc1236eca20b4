package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/Rakeshkoyya/skillverse/internal/catalog"
	"github.com/Rakeshkoyya/skillverse/internal/forms"
)

const (
	navBack   = "Back"
	navNext   = "Next"
	navSubmit = "Submit registration"

	MsgWebinarThanks = "Thank you for registering! You are now registered for the webinar on %s."
)

// WebinarWizard walks a parent through the five webinar sections.
type WebinarWizard struct {
	driver    PromptDriver
	catalog   *catalog.Catalog
	submitter forms.WebinarSubmitter
}

func NewWebinarWizard(d PromptDriver, c *catalog.Catalog, s forms.WebinarSubmitter) *WebinarWizard {
	return &WebinarWizard{driver: d, catalog: c, submitter: s}
}

// Run loops until the registration succeeds or a prompt fails.
func (w *WebinarWizard) Run(ctx context.Context) (forms.WebinarState, error) {
	state := forms.NewWebinarState()

	for state.Status != forms.StatusSuccess {
		header := fmt.Sprintf("Section %d of %d: %s (%d%%)",
			state.Section, forms.LastSection, w.catalog.SectionTitle(state.Section), state.Progress())
		if err := w.driver.Info(ctx, header); err != nil {
			return state, err
		}

		actions, err := w.askSection(ctx, state)
		if err != nil {
			return state, err
		}
		for _, a := range actions {
			state = forms.ReduceWebinar(state, a)
		}

		choice, err := w.navigate(ctx, state.Section)
		if err != nil {
			return state, err
		}
		switch choice {
		case navBack:
			state = forms.ReduceWebinar(state, forms.Retreat{})
		case navNext:
			state = forms.ReduceWebinar(state, forms.Advance{})
		case navSubmit:
			state = forms.SubmitWebinar(ctx, state, w.submitter)
		}

		if state.Message != "" {
			if err := w.driver.Info(ctx, state.Message); err != nil {
				return state, err
			}
		}
	}

	return state, w.driver.Info(ctx, fmt.Sprintf(MsgWebinarThanks, w.catalog.WebinarEvent.Date))
}

func (w *WebinarWizard) navigate(ctx context.Context, section int) (string, error) {
	var options []string
	if section > forms.FirstSection {
		options = append(options, navBack)
	}
	if section < forms.LastSection {
		options = append(options, navNext)
	} else {
		options = append(options, navSubmit)
	}

	i, err := w.driver.Select(ctx, SelectConfig{
		Message:      "What next?",
		Options:      options,
		DefaultIndex: len(options) - 1,
	})
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(options) {
		return "", fmt.Errorf("navigation choice %d out of range", i)
	}
	return options[i], nil
}

// askSection prompts for every answer of the current section, prefilled with
// what was entered before.
func (w *WebinarWizard) askSection(ctx context.Context, s forms.WebinarState) ([]forms.Action, error) {
	d := s.Data
	c := w.catalog
	q := &questions{ctx: ctx, driver: w.driver}

	switch s.Section {
	case 1:
		q.input("parentName", "Parent's full name", d.ParentName)
		q.input("mobile", "Mobile number (10 digits)", d.Mobile)
		q.input("email", "Email address", d.Email)
		q.input("city", "City", d.City)
		q.choose("state", "State", c.States, d.State)
	case 2:
		q.choose("numberOfChildren", "Number of children", c.NumberOfChildren, d.NumberOfChildren)
		q.choose("childAgeGroup", "Child's age group", c.ChildAgeGroups, d.ChildAgeGroup)
		q.choose("educationStage", "Child's current education stage", c.EducationStages, d.EducationStage)
	case 3:
		q.chooseMany("parentConcerns", "What concerns you most about your child?", c.ParentConcerns, d.ParentConcerns)
		q.choose("schoolSystemOpinion", "Do you feel the school system prepares children for real life?",
			c.SchoolSystemOpinions, d.SchoolSystemOpinion)
	case 4:
		q.choose("lifeSkillsAwareness", "Are you aware of life-skills education?",
			c.LifeSkillsAwareness, d.LifeSkillsAwareness)
		q.chooseMany("skillsNeeded", "Which skills does your child need most?", c.SkillsNeeded, d.SkillsNeeded)
	case 5:
		q.choose("isDecisionMaker", "Are you the decision maker for your child's learning?",
			c.DecisionMaker, d.IsDecisionMaker)
		q.choose("enrollmentReadiness", "Would you enrol your child in a skill program?",
			c.EnrollmentReadiness, d.EnrollmentReadiness)
		q.consent("I agree to be contacted about the webinar and Skillverse programs", d.Consent)
	}

	return q.actions, q.err
}

// questions collects reducer actions and stops at the first prompt error.
type questions struct {
	ctx     context.Context
	driver  PromptDriver
	actions []forms.Action
	err     error
}

func (q *questions) input(field, message, current string) {
	if q.err != nil {
		return
	}
	var v string
	v, q.err = q.driver.Input(q.ctx, InputConfig{Message: message, Default: current})
	if q.err == nil {
		q.actions = append(q.actions, forms.SetField{Field: field, Value: v})
	}
}

func (q *questions) choose(field, message string, options []string, current string) {
	if q.err != nil {
		return
	}
	var i int
	i, q.err = q.driver.Select(q.ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: slices.Index(options, current),
		PageSize:     10,
	})
	if q.err == nil && i >= 0 && i < len(options) {
		q.actions = append(q.actions, forms.SetField{Field: field, Value: options[i]})
	}
}

func (q *questions) chooseMany(field, message string, options, current []string) {
	if q.err != nil {
		return
	}
	var defaults []int
	for i, o := range options {
		if slices.Contains(current, o) {
			defaults = append(defaults, i)
		}
	}

	var picked []int
	picked, q.err = q.driver.MultiSelect(q.ctx, SelectConfig{
		Message:  message,
		Options:  options,
		Defaults: defaults,
		PageSize: 10,
	})
	if q.err != nil {
		return
	}

	// Toggle only what changed so the stored order follows the clicks.
	for i, o := range options {
		if slices.Contains(picked, i) != slices.Contains(current, o) {
			q.actions = append(q.actions, forms.ToggleOption{Field: field, Option: o})
		}
	}
}

func (q *questions) consent(message string, current bool) {
	if q.err != nil {
		return
	}
	var v bool
	v, q.err = q.driver.Confirm(q.ctx, ConfirmConfig{Message: message, Default: current})
	if q.err == nil {
		q.actions = append(q.actions, forms.SetConsent{Value: v})
	}
}
