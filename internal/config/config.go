package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Defaults for the follow-up scheduling workflow. The tool and CLI layers
// apply these when the caller omits the corresponding argument.
const (
	DefaultDaysFromNow     = 7
	DefaultDurationMinutes = 30
	DefaultEventHour       = 8
	DefaultEventMinute     = 0

	DefaultCalendarID = "primary"
	DefaultTimezone   = "America/Phoenix"
	DefaultSFDomain   = "login"
)

// Salesforce holds the credentials for the Salesforce SOAP login.
type Salesforce struct {
	Username      string
	Password      string
	SecurityToken string

	// Domain is the login domain ("login" for production, "test" for
	// sandboxes, or a custom My Domain prefix).
	Domain string
}

// Google holds the Google service-account configuration shared by the
// Calendar and Sheets clients.
type Google struct {
	// CredentialsFile is the path to the service-account JSON key.
	CredentialsFile string

	// DelegatedUser is an optional email to impersonate via domain-wide
	// delegation. Empty means the service account acts as itself.
	DelegatedUser string

	// CalendarID is the target calendar for follow-up events.
	CalendarID string
}

// Followup holds the workflow-level settings.
type Followup struct {
	// Timezone is the IANA timezone in which meeting slots are resolved.
	Timezone string
}

// Config is the process-wide configuration. It is built once at startup and
// passed into each collaborator factory; nothing reads the environment at
// call time.
type Config struct {
	Salesforce Salesforce
	Google     Google
	Followup   Followup
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory. Missing optional values fall back to
// defaults; credentials are validated lazily by the clients that need them.
func Load() (*Config, error) {
	// Ignore a missing .env; explicit environment always wins because
	// godotenv does not overwrite existing variables.
	_ = godotenv.Load()

	cfg := &Config{
		Salesforce: Salesforce{
			Username:      os.Getenv("SF_USERNAME"),
			Password:      os.Getenv("SF_PASSWORD"),
			SecurityToken: os.Getenv("SF_SECURITY_TOKEN"),
			Domain:        getEnvOrDefault("SF_DOMAIN", DefaultSFDomain),
		},
		Google: Google{
			CredentialsFile: getEnvOrDefault("GOOGLE_CALENDAR_CREDENTIALS", "calendar_credentials.json"),
			DelegatedUser:   os.Getenv("GOOGLE_CALENDAR_USER_EMAIL"),
			CalendarID:      getEnvOrDefault("GOOGLE_CALENDAR_ID", DefaultCalendarID),
		},
		Followup: Followup{
			Timezone: getEnvOrDefault("FOLLOWUP_TIMEZONE", DefaultTimezone),
		},
	}

	if _, err := time.LoadLocation(cfg.Followup.Timezone); err != nil {
		return nil, fmt.Errorf("invalid FOLLOWUP_TIMEZONE %q: %w", cfg.Followup.Timezone, err)
	}

	return cfg, nil
}

// Location resolves the configured workflow timezone. Load already validated
// it, so failures here only happen for hand-built configs.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Followup.Timezone)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
