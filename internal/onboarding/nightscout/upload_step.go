// Package nightscout holds the onboarding step that decides what the app may
// upload to a Nightscout site. The upload client itself lives elsewhere.
package nightscout

import (
	"context"
	"fmt"
	"log/slog"

	"companion/pkg/platform/sentinel"
)

const (
	Prompt = "Please choose from the options below."
	Note   = "Note: Choosing your pump model determines which increments for setting up your basal rates are available. You will pair your actual pump after finishing the onboarding process."

	ToggleUploadEnabled = "upload_enabled"
	ToggleUploadGlucose = "upload_glucose"
)

// Settings is what the step commits.
type Settings struct {
	UploadEnabled bool
	UploadGlucose bool
}

// Sink receives the committed settings, usually the Nightscout settings store.
type Sink interface {
	SaveUploadSettings(ctx context.Context, settings Settings) error
}

// Toggle is one row of the step.
type Toggle struct {
	Name  string
	Label string
	On    bool
}

// UploadStep is the state behind the onboarding screen.
type UploadStep struct {
	UploadEnabled bool
	UploadGlucose bool

	logger *slog.Logger
}

// NewUploadStep starts the step from the currently stored settings.
func NewUploadStep(current Settings, logger *slog.Logger) *UploadStep {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &UploadStep{
		UploadEnabled: current.UploadEnabled,
		UploadGlucose: current.UploadGlucose,
		logger:        logger,
	}
}

// Toggles returns the rows in display order.
func (s *UploadStep) Toggles() []Toggle {
	return []Toggle{
		{Name: ToggleUploadEnabled, Label: "Allow Uploading to Nightscout", On: s.UploadEnabled},
		{Name: ToggleUploadGlucose, Label: "Upload Glucose", On: s.UploadGlucose},
	}
}

// Set flips the toggle called name.
func (s *UploadStep) Set(name string, on bool) error {
	switch name {
	case ToggleUploadEnabled:
		s.UploadEnabled = on
	case ToggleUploadGlucose:
		s.UploadGlucose = on
	default:
		return fmt.Errorf("toggle %q: %w", name, sentinel.ErrNotFound)
	}
	return nil
}

// Effective is the settings as they will be committed. Glucose upload needs
// uploading to be allowed at all.
func (s *UploadStep) Effective() Settings {
	return Settings{
		UploadEnabled: s.UploadEnabled,
		UploadGlucose: s.UploadEnabled && s.UploadGlucose,
	}
}

// Commit writes the effective settings to sink.
func (s *UploadStep) Commit(ctx context.Context, sink Sink) error {
	settings := s.Effective()
	if err := sink.SaveUploadSettings(ctx, settings); err != nil {
		return fmt.Errorf("save nightscout upload settings: %w", err)
	}
	s.logger.InfoContext(ctx, "nightscout upload settings saved",
		"upload_enabled", settings.UploadEnabled,
		"upload_glucose", settings.UploadGlucose)
	return nil
}
