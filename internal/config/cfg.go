package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Rakeshkoyya/skillverse/internal/models"
	"github.com/Rakeshkoyya/skillverse/internal/services/sheets"
)

type Server struct {
	Host        string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port        string `envconfig:"PORT" default:"8080"`
	ReadTimeout int    `envconfig:"SERVER_TIMEOUT" default:"10"`
}

// Sheets holds the spreadsheet webhook URLs. An empty URL turns forwarding
// off for that form.
type Sheets struct {
	SubscribeURL  string `envconfig:"GOOGLE_SHEETS_SUBSCRIBE_URL"`
	EduWarriorURL string `envconfig:"GOOGLE_SHEETS_EDUWARRIOR_URL"`
	WebinarURL    string `envconfig:"GOOGLE_SHEETS_WEBINAR_URL"`
	Timeout       int    `envconfig:"SHEETS_TIMEOUT" default:"10"`
}

// Breaker is off unless RepeatNumber is set; by default every valid
// submission is attempted against its webhook.
type Breaker struct {
	Interval     int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	Timeout      int    `envconfig:"BREAKER_TIMEOUT" default:"15"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"0"`
}

func (b *Breaker) Policy() sheets.BreakerPolicy {
	return sheets.BreakerPolicy{
		Trips:    b.RepeatNumber,
		Window:   time.Duration(b.Interval) * time.Second,
		Cooldown: time.Duration(b.Timeout) * time.Second,
	}
}

type Config struct {
	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/skillverse.log"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/outbound.log"`
	GinMode      string `envconfig:"GIN_MODE" default:"release"`

	Server  Server
	Sheets  Sheets
	Breaker Breaker
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (s *Sheets) DeliveryTimeout() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// URLs returns the configured webhook per form, leaving out empty ones.
func (s *Sheets) URLs() map[models.FormType]string {
	urls := make(map[models.FormType]string, 3)
	for form, url := range map[models.FormType]string{
		models.FormSubscription: s.SubscribeURL,
		models.FormEduWarrior:   s.EduWarriorURL,
		models.FormWebinar:      s.WebinarURL,
	} {
		if url != "" {
			urls[form] = url
		}
	}
	return urls
}

// CLI configures the terminal client.
type CLI struct {
	APIURL  string `envconfig:"SKILLVERSE_API_URL" default:"http://localhost:8080"`
	Timeout int    `envconfig:"CLI_TIMEOUT" default:"15"`
}

func NewCLIConfig() (*CLI, error) {
	var cfg CLI
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *CLI) RequestTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}
