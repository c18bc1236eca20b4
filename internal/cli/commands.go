package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Rakeshkoyya/skillverse/internal/catalog"
	"github.com/Rakeshkoyya/skillverse/internal/client"
	"github.com/Rakeshkoyya/skillverse/internal/config"
	"github.com/Rakeshkoyya/skillverse/internal/forms"
	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/validation"
	"github.com/Rakeshkoyya/skillverse/pkg/logger"
)

// API is everything the commands need from the lead-capture server.
type API interface {
	forms.SubscriptionSubmitter
	forms.EduWarriorSubmitter
	forms.WebinarSubmitter
	Describe(ctx context.Context, path string) (models.EndpointDescription, error)
}

// APIFactory builds the API for a base URL and request timeout.
type APIFactory func(baseURL string, timeout time.Duration, l zerolog.Logger) API

// HTTPAPI is the production factory.
func HTTPAPI(baseURL string, timeout time.Duration, l zerolog.Logger) API {
	return client.New(baseURL, &http.Client{Timeout: timeout}, l)
}

type rootOptions struct {
	apiURL  string
	timeout time.Duration
	verbose bool
}

type env struct {
	api       API
	catalog   *catalog.Catalog
	validator *validation.Validator
	driver    PromptDriver
}

// NewRootCommand wires the terminal client. driver may be nil, in which case
// prompts go through the terminal.
func NewRootCommand(cfg *config.CLI, driver PromptDriver, newAPI APIFactory) *cobra.Command {
	opts := &rootOptions{}
	e := &env{validator: validation.New()}

	root := &cobra.Command{
		Use:           "skillverse",
		Short:         "Fill in the Skillverse forms from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Default()
			if err != nil {
				return err
			}

			l := logger.New(cmd.ErrOrStderr(), "skillverse-cli").Level(zerolog.WarnLevel)
			if opts.verbose {
				l = l.Level(zerolog.DebugLevel)
			}

			e.catalog = cat
			e.api = newAPI(opts.apiURL, opts.timeout, l)
			e.driver = driver
			if e.driver == nil {
				e.driver = NewSurveyDriver(cmd.OutOrStdout())
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", cfg.APIURL, "base URL of the Skillverse API")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", cfg.RequestTimeout(), "timeout of one API request")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log API traffic to stderr")

	root.AddCommand(
		newSubscribeCommand(e),
		newEduWarriorCommand(e),
		newWebinarCommand(e),
		newInfoCommand(e),
	)
	return root
}

func newSubscribeCommand(e *env) *cobra.Command {
	var webinar bool
	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to Skillverse updates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formType := models.SubscriptionTypeSubscribe
			if webinar {
				formType = models.SubscriptionTypeWebinar
			}
			_, err := NewSubscriptionFlow(e.driver, e.catalog, e.validator, e.api).Run(cmd.Context(), formType)
			return err
		},
	}
	cmd.Flags().BoolVar(&webinar, "webinar", false, "register interest in the webinar with full contact details")
	return cmd
}

func newEduWarriorCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "eduwarrior",
		Short: "Apply to become an EduWarrior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := NewEduWarriorFlow(e.driver, e.catalog, e.validator, e.api).Run(cmd.Context())
			return err
		},
	}
}

func newWebinarCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "webinar",
		Short: "Register for the parent webinar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := NewWebinarWizard(e.driver, e.catalog, e.api).Run(cmd.Context())
			return err
		},
	}
}

var describePaths = map[string]string{
	"subscribe":  client.SubscribePath,
	"eduwarrior": client.EduWarriorPath,
	"webinar":    client.WebinarPath,
}

func newInfoCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "info [subscribe|eduwarrior|webinar]",
		Short:     "Show what a form endpoint accepts",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"subscribe", "eduwarrior", "webinar"},
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := e.api.Describe(cmd.Context(), describePaths[args[0]])
			if err != nil {
				return err
			}
			return printDescription(cmd.OutOrStdout(), desc)
		},
	}
}

func printDescription(w io.Writer, desc models.EndpointDescription) error {
	var b strings.Builder
	b.WriteString(desc.Message + "\n")
	if ev := desc.Webinar; ev != nil {
		fmt.Fprintf(&b, "  %s\n  %s | %s | %s\n", ev.Title, ev.Date, ev.Mode, ev.Audience)
	}

	routes := make([]string, 0, len(desc.Endpoints))
	for route := range desc.Endpoints {
		routes = append(routes, route)
	}
	slices.Sort(routes)
	for _, route := range routes {
		fmt.Fprintf(&b, "  %-6s %s\n", route, desc.Endpoints[route])
	}

	_, err := io.WriteString(w, b.String())
	return err
}
