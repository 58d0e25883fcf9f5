package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Defaults used when the config file leaves a setting empty
const (
	DefaultTimezone = "Europe/Warsaw"
	DefaultWeeks    = 15
	dateLayout      = "2006-01-02"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	SavedSelection map[string]int `json:"saved_selection,omitempty"`
	LastPagePath   string         `json:"last_page_path,omitempty"`
	Timezone       string         `json:"timezone,omitempty"`
	SemesterStart  string         `json:"semester_start,omitempty"`
	Weeks          int            `json:"weeks,omitempty"`
	AccentColor    string         `json:"accent_color,omitempty"`
}

// Location resolves the configured timezone, falling back to DefaultTimezone.
func (c *AppConfig) Location() (*time.Location, error) {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", name, err)
	}
	return loc, nil
}

// StartDate parses SemesterStart in loc. An empty setting yields the Monday of the current week.
func (c *AppConfig) StartDate(loc *time.Location) (time.Time, error) {
	if c.SemesterStart == "" {
		now := time.Now().In(loc)
		offset := (int(now.Weekday()) + 6) % 7
		return time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, loc), nil
	}

	start, err := time.ParseInLocation(dateLayout, c.SemesterStart, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid semester start %q (want YYYY-MM-DD): %w", c.SemesterStart, err)
	}
	return start, nil
}

// WeekCount returns Weeks or DefaultWeeks when unset.
func (c *AppConfig) WeekCount() int {
	if c.Weeks <= 0 {
		return DefaultWeeks
	}
	return c.Weeks
}

// ValidateDate checks a YYYY-MM-DD semester start before it is saved.
func ValidateDate(s string) error {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateColor accepts an ANSI 256 color number or a #RRGGBB hex code.
func ValidateColor(s string) error {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return fmt.Errorf("ANSI color must be between 0 and 255")
		}
		return nil
	}

	if len(s) != 7 || !strings.HasPrefix(s, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}

// getConfigPath returns the absolute path to ~/.syjonctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".syjonctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
