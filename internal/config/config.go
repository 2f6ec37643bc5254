package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const configFileBase = "weekshift_config"

// defaultWeekRule expands to the seven consecutive days of the scheduled week
const defaultWeekRule = "FREQ=DAILY;COUNT=7"

// Config represents the application configuration
type Config struct {
	// MaxPerShift is the capacity ceiling for every shift cell
	MaxPerShift int `yaml:"maxPerShift" validate:"required,min=1"`

	// WeekStart is the date of day 0 of the scheduled week
	WeekStart string `yaml:"weekStart" validate:"required,datetime=2006-01-02"`

	// WeekRule is the recurrence expanded into the week's shift dates.
	// Must yield exactly seven dates. Defaults to one date per day.
	WeekRule string `yaml:"weekRule,omitempty"`

	// DatabaseURL enables schedule persistence when set
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// RotaSheetID and RotaSheetTab identify the Google Sheet the finished
	// grid is published to; CredentialsFile holds the service account key
	RotaSheetID     string `yaml:"rotaSheetID,omitempty"`
	RotaSheetTab    string `yaml:"rotaSheetTab,omitempty"`
	CredentialsFile string `yaml:"credentialsFile,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads the configuration for the given environment, looking for
// weekshift_config.<env>.yaml in the current directory then the home directory
func LoadWithEnv(env string) (*Config, error) {
	fileName := fmt.Sprintf("%s.%s.yaml", configFileBase, env)

	configPath, err := findConfigFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.WeekRule == "" {
		cfg.WeekRule = defaultWeekRule
	}
	if cfg.RotaSheetTab == "" {
		cfg.RotaSheetTab = "Week"
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks the week rule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.WeekRule != "" {
		if _, err := rrule.StrToRRule(cfg.WeekRule); err != nil {
			return fmt.Errorf("invalid rrule in weekRule: %w", err)
		}
	}

	return nil
}

// ShiftDates expands WeekRule from WeekStart into the seven concrete dates of
// the scheduled week, one per day index
func (c *Config) ShiftDates() ([]time.Time, error) {
	start, err := time.Parse("2006-01-02", c.WeekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse weekStart: %w", err)
	}

	opts, err := rrule.StrToROption(c.WeekRule)
	if err != nil {
		return nil, fmt.Errorf("invalid rrule in weekRule: %w", err)
	}
	opts.Dtstart = start

	rule, err := rrule.NewRRule(*opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build week rule: %w", err)
	}

	dates := rule.All()
	if len(dates) != 7 {
		return nil, fmt.Errorf("weekRule must yield exactly 7 dates, got %d", len(dates))
	}
	return dates, nil
}

// findConfigFile searches for the named file in the current directory and
// the home directory
func findConfigFile(fileName string) (string, error) {
	if _, err := os.Stat(fileName); err == nil {
		return fileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, fileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", fileName)
}
