package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Editor captures configuration for the preferences editor binary.
type Editor struct {
	PreferencesFile string `env:"COMPANION_PREFERENCES_FILE" envDefault:"preferences.yaml"`
	LogLevel        string `env:"COMPANION_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string `env:"COMPANION_LOG_FORMAT"       envDefault:"text"`
	Language        string `env:"COMPANION_LANGUAGE"         envDefault:"en"`
}

// FromEnv builds an Editor config from environment variables so main stays lean.
func FromEnv() (Editor, error) {
	var cfg Editor
	if err := env.Parse(&cfg); err != nil {
		return Editor{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LanguageTag parses Language, falling back to English.
func (c Editor) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}
