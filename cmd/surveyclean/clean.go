package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"surveyclean/internal/cleaner"
)

func runClean(cmd *cobra.Command, ctx *commandContext) (err error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := ctx.closeLogger(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	out := newConsole(cmd.OutOrStdout())
	out.heading("Starte Datenbereinigung...")
	out.line("Input:  %s (%s)", cfg.Files.Input, cfg.Files.InputEncoding)
	out.line("Output: %s (%s)", cfg.Files.Output, cfg.Files.OutputEncoding)
	out.blank()

	res, err := cleaner.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	printSummary(out, res)
	return nil
}

func printSummary(out *console, res *cleaner.Result) {
	out.success("Bereinigung erfolgreich abgeschlossen!")
	out.blank()
	out.heading("Statistiken:")
	out.line("  - Zeilen verarbeitet: %d", res.Stats.Processed)
	out.line("  - Beschäftigungen bereinigt: %d", res.Stats.Changed)
	out.blank()
	out.heading("  Beschäftigungsverteilung:")

	counts := res.Stats.Ordered()
	if len(counts) == 0 {
		out.line("    (keine Einträge)")
	} else {
		rows := make([][]string, 0, len(counts))
		for _, c := range counts {
			rows = append(rows, []string{c.Category.Label(), strconv.Itoa(c.Count)})
		}
		out.line("%s", renderTable("    ", []string{"Kategorie", "Anzahl"}, rows, []columnAlignment{alignLeft, alignRight}))
	}

	out.blank()
	out.success("Datei gespeichert als: %s", res.Output)
}
