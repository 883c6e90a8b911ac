package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config is the root configuration for hamster, stored in ~/.hamster/config.json.
// The file supports single-line // comments for documentation purposes.
type Config struct {
	// DayStart is the clock time ("HH:MM") at which a logical hamster day
	// begins. Facts recorded before this hour belong to the previous day.
	DayStart string `json:"day_start"`
}

const (
	// DefaultDayStart is the conventional hamster-day boundary.
	DefaultDayStart = "05:00"
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{DayStart: DefaultDayStart}
}

// DayStartHour returns the day-start boundary as a full hour. Malformed
// values fall back to the default; minutes are not supported and are ignored.
func (c Config) DayStartHour() int {
	value, _, _ := strings.Cut(c.DayStart, ":")
	hour, err := strconv.Atoi(value)
	if err != nil || hour < 0 || hour > 23 {
		return 5
	}
	return hour
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON parsing,
// allowing human-readable documentation inside the file.
const configTemplate = `// hamster configuration – ~/.hamster/config.json
//
// All settings are optional; the built-in defaults shown below work out of
// the box. Edit this file to customise hamster behaviour.
{
  // Clock time at which a logical "hamster day" begins, as "HH:MM".
  // Facts recorded after midnight but before this hour are reported under
  // the previous day, so late-night work stays with its evening.
  // Only full hours are honoured. Use "00:00" for plain calendar days.
  "day_start": "05:00"
}
`

// configFilePath returns the path to ~/.hamster/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".hamster", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content starts
// with //. Only full-line comments are handled; inline comments are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.hamster/config.json, creating it with annotated defaults on
// first run. Lines starting with // are treated as comments and stripped
// before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.DayStart == "" {
		cfg.DayStart = DefaultDayStart
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
