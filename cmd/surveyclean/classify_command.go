package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"surveyclean/internal/cleaner"
	"surveyclean/internal/occupation"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>...",
		Short: "Zeigt, wie Beschäftigungsangaben eingeordnet werden",
		Long: "Ordnet jede übergebene Angabe mit den konfigurierten Regeln einer Kategorie zu,\n" +
			"ohne Dateien zu lesen oder zu schreiben.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			classifier := occupation.New(cleaner.Rules(cfg))

			rows := make([][]string, 0, len(args))
			for _, raw := range args {
				m := classifier.Match(raw)
				rows = append(rows, []string{fmt.Sprintf("%q", raw), m.Category.Label(), matchReason(m)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable("", []string{"Angabe", "Kategorie", "Grund"}, rows, nil))
			return nil
		},
	}
}

func matchReason(m occupation.Match) string {
	switch {
	case m.Sentinel:
		return "keine Angabe"
	case m.Fallback:
		return "kein Stichwort (Standard)"
	default:
		return fmt.Sprintf("Stichwort %q", m.Keyword)
	}
}
