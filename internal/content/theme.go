package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme is a YAML content pack. Any list left empty keeps the default.
type Theme struct {
	MOTD                   []string `yaml:"motd,omitempty"`
	MiddayAffirmations     []string `yaml:"midday_affirmations,omitempty"`
	EveningCongratulations []string `yaml:"evening_congratulations,omitempty"`
}

// LoadTheme parses a theme pack from a YAML file.
func LoadTheme(path string) (Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme %q: %w", path, err)
	}
	return ParseTheme(raw)
}

// ParseTheme parses a theme pack from YAML bytes.
func ParseTheme(raw []byte) (Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(raw, &theme); err != nil {
		return Theme{}, fmt.Errorf("YAML parse error: %w", err)
	}
	if len(theme.MOTD) == 0 && len(theme.MiddayAffirmations) == 0 && len(theme.EveningCongratulations) == 0 {
		return Theme{}, fmt.Errorf("theme overrides no lists")
	}
	return theme, nil
}

// ApplyTheme replaces the library lists the theme overrides.
func (l *Library) ApplyTheme(t Theme) {
	if len(t.MOTD) > 0 {
		l.motd = t.MOTD
	}
	if len(t.MiddayAffirmations) > 0 {
		l.affirmations = t.MiddayAffirmations
	}
	if len(t.EveningCongratulations) > 0 {
		l.congratulations = t.EveningCongratulations
	}
}
