package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"companion/internal/preferences"
	"companion/internal/preferences/service"
	"companion/internal/preferences/store/file"
)

func newSetCmd(a *app) *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "set key=value [key=value...]",
		Short: "Change preferences; out-of-range numbers are clamped to their guardrails",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := service.New(file.New(a.cfg.PreferencesFile),
				service.WithLogger(a.log), service.WithMetrics(a.metrics))
			if err := editor.Open(cmd.Context()); err != nil {
				return err
			}
			defer editor.Close()

			errOut := cmd.ErrOrStderr()
			unsubscribe := editor.Subscribe(func(note preferences.ClampNotification) {
				fmt.Fprintf(errOut, "%s: %s\n\n", note.Field, note.Message)
			})
			defer unsubscribe()

			for _, arg := range args {
				key, value, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected key=value, got %q", arg)
				}
				f, err := editor.Apply(key, value)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", f.Key(), fieldValue(f))
			}

			if dryRun {
				return nil
			}
			return editor.Save(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "apply edits without saving")
	return cmd
}
