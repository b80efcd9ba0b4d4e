package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"companion/internal/preferences"
	"companion/internal/preferences/service"
	"companion/internal/preferences/store/file"
)

func newSectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List every editable preference with its current value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			editor := service.New(file.New(a.cfg.PreferencesFile),
				service.WithLogger(a.log), service.WithMetrics(a.metrics))
			if err := editor.Open(cmd.Context()); err != nil {
				return err
			}
			defer editor.Close()

			printSections(cmd.OutOrStdout(), editor.Sections())
			return nil
		},
	}
}

func printSections(w io.Writer, sections []preferences.FieldSection) {
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\n", s.DisplayName)
		for _, f := range s.Fields() {
			fmt.Fprintf(w, "  %-36s %-34s %s\n", f.Key(), f.DisplayName, fieldValue(f))
		}
	}
}

func fieldValue(f *preferences.Field) string {
	switch f.Kind.(type) {
	case preferences.BoolKind:
		return fmt.Sprint(f.BoolValue())
	case preferences.DecimalKind:
		return f.DecimalValue().String()
	case preferences.CurveKind:
		return f.CurveValue().String()
	default:
		return "?"
	}
}
