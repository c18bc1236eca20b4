package cli

import (
	"context"
	"errors"
	"slices"

	"github.com/Rakeshkoyya/skillverse/internal/catalog"
	"github.com/Rakeshkoyya/skillverse/internal/forms"
	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
)

// ErrNotSubmitted is returned when the user gives up after a failed attempt.
var ErrNotSubmitted = errors.New("form was not submitted")

// SubscriptionFlow asks for a newsletter or webinar-interest subscription.
type SubscriptionFlow struct {
	driver    PromptDriver
	catalog   *catalog.Catalog
	validator *validation.Validator
	submitter forms.SubscriptionSubmitter
}

func NewSubscriptionFlow(
	d PromptDriver,
	c *catalog.Catalog,
	v *validation.Validator,
	s forms.SubscriptionSubmitter,
) *SubscriptionFlow {
	return &SubscriptionFlow{driver: d, catalog: c, validator: v, submitter: s}
}

func (f *SubscriptionFlow) Run(ctx context.Context, formType string) (forms.Form[models.SubscriptionRequest], error) {
	form := forms.NewSubscriptionForm(formType)

	for {
		req, err := f.ask(ctx, form.Data)
		if err != nil {
			return form, err
		}
		form = form.Edit(func(models.SubscriptionRequest) models.SubscriptionRequest { return req })
		form = forms.SubmitSubscription(ctx, form, f.validator, f.submitter)

		done, err := settle(ctx, f.driver, form.Status, form.Message)
		if done || err != nil {
			return form, err
		}
	}
}

func (f *SubscriptionFlow) ask(ctx context.Context, cur models.SubscriptionRequest) (models.SubscriptionRequest, error) {
	q := &answers{ctx: ctx, driver: f.driver}
	req := models.SubscriptionRequest{Type: cur.Type}

	if req.IsNewsletter() {
		req.Email = q.input("Email address", cur.Email)
		return req, q.err
	}

	req.Name = q.input("Full name", cur.Name)
	req.Email = q.input("Email address", cur.Email)
	req.Mobile = forms.DigitsOnly(q.input("Mobile number (optional)", cur.Mobile), 0)
	req.City = q.input("City", cur.City)
	req.Role = q.choose("I am a", f.catalog.SubscriberRoles, cur.Role)
	req.Message = q.text("Anything you would like to tell us? (optional)", cur.Message)
	return req, q.err
}

// EduWarriorFlow asks for a volunteer educator application.
type EduWarriorFlow struct {
	driver    PromptDriver
	catalog   *catalog.Catalog
	validator *validation.Validator
	submitter forms.EduWarriorSubmitter
}

func NewEduWarriorFlow(
	d PromptDriver,
	c *catalog.Catalog,
	v *validation.Validator,
	s forms.EduWarriorSubmitter,
) *EduWarriorFlow {
	return &EduWarriorFlow{driver: d, catalog: c, validator: v, submitter: s}
}

func (f *EduWarriorFlow) Run(ctx context.Context) (forms.Form[models.EduWarriorApplication], error) {
	form := forms.NewEduWarriorForm()
	opts := f.catalog.EduWarrior

	for {
		q := &answers{ctx: ctx, driver: f.driver}
		cur := form.Data
		app := models.EduWarriorApplication{
			Name:         q.input("Full name", cur.Name),
			Email:        q.input("Email address", cur.Email),
			City:         q.input("City", cur.City),
			Education:    q.choose("Highest education", opts.Education, cur.Education),
			Expertise:    q.choose("Area of expertise", opts.Expertise, cur.Expertise),
			Experience:   q.text("Teaching or mentoring experience (optional)", cur.Experience),
			Motivation:   q.text("Why do you want to become an EduWarrior?", cur.Motivation),
			Availability: q.choose("When can you start?", opts.Availability, cur.Availability),
		}
		mobile := q.input("Mobile number (10 digits)", cur.Mobile)
		if q.err != nil {
			return form, q.err
		}

		form = form.Edit(func(models.EduWarriorApplication) models.EduWarriorApplication { return app })
		form = forms.SetEduWarriorMobile(form, mobile)
		form = forms.SubmitEduWarrior(ctx, form, f.validator, f.submitter)

		done, err := settle(ctx, f.driver, form.Status, form.Message)
		if done || err != nil {
			return form, err
		}
	}
}

// settle reports the outcome of one attempt. It returns done once the form
// was accepted or the user declines another try.
func settle(ctx context.Context, d PromptDriver, status forms.Status, message string) (bool, error) {
	if message != "" {
		if err := d.Info(ctx, message); err != nil {
			return true, err
		}
	}
	if status == forms.StatusSuccess {
		return true, nil
	}

	again, err := d.Confirm(ctx, ConfirmConfig{Message: "Try again?", Default: true})
	if err != nil {
		return true, err
	}
	if !again {
		return true, ErrNotSubmitted
	}
	return false, nil
}

// answers is a prompt sequence that stops asking after the first error.
type answers struct {
	ctx    context.Context
	driver PromptDriver
	err    error
}

func (a *answers) input(message, current string) string {
	if a.err != nil {
		return ""
	}
	var v string
	v, a.err = a.driver.Input(a.ctx, InputConfig{Message: message, Default: current})
	return v
}

func (a *answers) text(message, current string) string {
	if a.err != nil {
		return ""
	}
	var v string
	v, a.err = a.driver.TextArea(a.ctx, TextAreaConfig{Message: message, Default: current})
	return v
}

func (a *answers) choose(message string, options []string, current string) string {
	if a.err != nil {
		return ""
	}
	var i int
	i, a.err = a.driver.Select(a.ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: slices.Index(options, current),
	})
	if a.err != nil || i < 0 || i >= len(options) {
		return ""
	}
	return options[i]
}
