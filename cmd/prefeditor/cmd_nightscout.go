package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"companion/internal/onboarding/nightscout"
)

type printSink struct {
	w io.Writer
}

func (p printSink) SaveUploadSettings(_ context.Context, s nightscout.Settings) error {
	_, err := fmt.Fprintf(p.w, "upload_enabled=%t upload_glucose=%t\n", s.UploadEnabled, s.UploadGlucose)
	return err
}

func newNightscoutCmd(a *app) *cobra.Command {
	var upload, glucose bool
	cmd := &cobra.Command{
		Use:   "nightscout-onboarding",
		Short: "Run the Nightscout upload onboarding step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			step := nightscout.NewUploadStep(nightscout.Settings{}, a.log)
			if err := step.Set(nightscout.ToggleUploadEnabled, upload); err != nil {
				return err
			}
			if err := step.Set(nightscout.ToggleUploadGlucose, glucose); err != nil {
				return err
			}

			fmt.Fprintln(out, nightscout.Prompt)
			for _, t := range step.Toggles() {
				fmt.Fprintf(out, "  [%s] %s\n", checkbox(t.On), t.Label)
			}
			fmt.Fprintln(out, nightscout.Note)
			return step.Commit(cmd.Context(), printSink{w: out})
		},
	}
	cmd.Flags().BoolVar(&upload, "upload", false, "allow uploading to Nightscout")
	cmd.Flags().BoolVar(&glucose, "glucose", false, "upload glucose readings")
	return cmd
}

func checkbox(on bool) string {
	if on {
		return "x"
	}
	return " "
}
