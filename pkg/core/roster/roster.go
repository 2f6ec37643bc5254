// Package roster loads worker rosters from YAML files and normalizes raw
// preference input into the scheduler's fixed shift vocabulary.
package roster

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/weekshift/pkg/core/scheduler"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// WorkerEntry is one worker in a roster file. Preferences maps a lowercase
// day name to a raw ranked string, e.g. "morning > evening" or
// "evening,afternoon". Days without an entry have no preference.
type WorkerEntry struct {
	Name        string            `yaml:"name" validate:"required"`
	Preferences map[string]string `yaml:"preferences,omitempty"`
}

// File is the top-level roster document
type File struct {
	Workers []WorkerEntry `yaml:"workers" validate:"required,min=1,dive"`
}

// dayIndex maps accepted day keys to their index in the week grid
var dayIndex = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

// Load reads, validates and normalizes a roster file into scheduler workers
func Load(path string) ([]*scheduler.Worker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	return Parse(data)
}

// Parse builds scheduler workers from raw roster YAML. Names must be unique:
// the scheduler keys all output by display name.
func Parse(data []byte) ([]*scheduler.Worker, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}

	seen := make(map[string]bool)
	workers := make([]*scheduler.Worker, 0, len(file.Workers))
	for i, entry := range file.Workers {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("workers[%d]: name is blank", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("workers[%d]: duplicate worker name %q", i, name)
		}
		seen[name] = true

		w := scheduler.NewWorker(name)
		for dayKey, raw := range entry.Preferences {
			day, ok := dayIndex[strings.ToLower(strings.TrimSpace(dayKey))]
			if !ok {
				return nil, fmt.Errorf("workers[%d]: unknown day %q", i, dayKey)
			}
			w.Preferences[day] = ParseRankedShifts(raw)
		}
		workers = append(workers, w)
	}

	return workers, nil
}

// ParseRankedShifts normalizes a raw ranked preference string. Both ">" and
// "," separate entries, tokens are trimmed and lowercased, unrecognized
// tokens are dropped, and duplicates keep their first occurrence.
func ParseRankedShifts(raw string) []scheduler.Shift {
	parts := strings.Split(strings.ReplaceAll(raw, ">", ","), ",")

	var shifts []scheduler.Shift
	seen := make(map[scheduler.Shift]bool)
	for _, part := range parts {
		token := scheduler.Shift(strings.ToLower(strings.TrimSpace(part)))
		if token == "" || !scheduler.IsValidShift(token) || seen[token] {
			continue
		}
		seen[token] = true
		shifts = append(shifts, token)
	}
	return shifts
}
