package cli_test

import (
	"context"
	"fmt"
	"slices"

	"github.com/Rakeshkoyya/skillverse/internal/cli"
	"github.com/Rakeshkoyya/skillverse/internal/models"
)

// scriptedDriver answers prompts by message. Each queue is consumed in order
// and its last answer repeats; unscripted prompts take their default.
type scriptedDriver struct {
	inputs   map[string][]string
	texts    map[string][]string
	selects  map[string][]string
	multis   map[string][][]string
	confirms map[string][]bool
	failOn   string
	failWith error

	infos []string
}

func next[T any](queues map[string][]T, key string) (T, bool) {
	var zero T
	q, ok := queues[key]
	if !ok || len(q) == 0 {
		return zero, false
	}
	if len(q) > 1 {
		queues[key] = q[1:]
	}
	return q[0], true
}

func (d *scriptedDriver) fail(message string) error {
	if d.failOn != "" && d.failOn == message {
		return d.failWith
	}
	return nil
}

func (d *scriptedDriver) Input(_ context.Context, cfg cli.InputConfig) (string, error) {
	if err := d.fail(cfg.Message); err != nil {
		return "", err
	}
	if v, ok := next(d.inputs, cfg.Message); ok {
		return v, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) TextArea(_ context.Context, cfg cli.TextAreaConfig) (string, error) {
	if err := d.fail(cfg.Message); err != nil {
		return "", err
	}
	if v, ok := next(d.texts, cfg.Message); ok {
		return v, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg cli.ConfirmConfig) (bool, error) {
	if err := d.fail(cfg.Message); err != nil {
		return false, err
	}
	if v, ok := next(d.confirms, cfg.Message); ok {
		return v, nil
	}
	return cfg.Default, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg cli.SelectConfig) (int, error) {
	if err := d.fail(cfg.Message); err != nil {
		return 0, err
	}
	label, ok := next(d.selects, cfg.Message)
	if !ok {
		return max(cfg.DefaultIndex, 0), nil
	}
	i := slices.Index(cfg.Options, label)
	if i < 0 {
		return 0, fmt.Errorf("%q is not an option of %q", label, cfg.Message)
	}
	return i, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg cli.SelectConfig) ([]int, error) {
	if err := d.fail(cfg.Message); err != nil {
		return nil, err
	}
	labels, ok := next(d.multis, cfg.Message)
	if !ok {
		return cfg.Defaults, nil
	}
	var out []int
	for _, l := range labels {
		i := slices.Index(cfg.Options, l)
		if i < 0 {
			return nil, fmt.Errorf("%q is not an option of %q", l, cfg.Message)
		}
		out = append(out, i)
	}
	slices.Sort(out)
	return out, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

// fakeAPI records submissions and answers from a response queue whose last
// entry repeats. An empty queue accepts everything.
type fakeAPI struct {
	responses []models.SubmissionResponse
	errs      []error

	subscriptions []models.SubscriptionRequest
	applications  []models.EduWarriorApplication
	registrations []models.WebinarRegistration

	description models.EndpointDescription
	described   []string
}

func (f *fakeAPI) answer() (models.SubmissionResponse, error) {
	resp := models.SubmissionResponse{Success: true}
	var err error
	if len(f.responses) > 0 {
		resp = f.responses[0]
		if len(f.responses) > 1 {
			f.responses = f.responses[1:]
		}
	}
	if len(f.errs) > 0 {
		err = f.errs[0]
		f.errs = f.errs[1:]
	}
	return resp, err
}

func (f *fakeAPI) Subscribe(_ context.Context, req models.SubscriptionRequest) (models.SubmissionResponse, error) {
	f.subscriptions = append(f.subscriptions, req)
	return f.answer()
}

func (f *fakeAPI) ApplyEduWarrior(_ context.Context, app models.EduWarriorApplication) (models.SubmissionResponse, error) {
	f.applications = append(f.applications, app)
	return f.answer()
}

func (f *fakeAPI) RegisterWebinar(_ context.Context, reg models.WebinarRegistration) (models.SubmissionResponse, error) {
	f.registrations = append(f.registrations, reg)
	return f.answer()
}

func (f *fakeAPI) Describe(_ context.Context, path string) (models.EndpointDescription, error) {
	f.described = append(f.described, path)
	return f.description, nil
}
