package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"surveyclean/internal/cleaner"
	"surveyclean/internal/csvtable"
)

// exitCode maps a command error to the process exit status. Every abort,
// whatever its kind, exits 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// describeFailure renders the diagnostic shown on stderr.
func describeFailure(err error) string {
	var runErr *cleaner.Error
	if !errors.As(err, &runErr) {
		return fmt.Sprintf("FEHLER: %v", err)
	}

	switch runErr.Kind {
	case cleaner.KindResourceNotFound:
		return fmt.Sprintf("FEHLER: Input-Datei '%s' nicht gefunden!\n"+
			"Bitte stelle sicher, dass die Datei im aktuellen Verzeichnis liegt.", runErr.Path)
	case cleaner.KindSchema:
		if errors.Is(runErr, csvtable.ErrEmptyTable) {
			return "FEHLER: Input-Datei ist leer!"
		}
		msg := fmt.Sprintf("FEHLER: Spalte '%s' nicht gefunden!", runErr.Column)
		if len(runErr.Columns) > 0 {
			msg += fmt.Sprintf("\nVerfügbare Spalten: %s...", strings.Join(runErr.Columns, ", "))
		}
		return msg
	case cleaner.KindEncoding:
		return fmt.Sprintf("FEHLER: Zeichenkodierung: %v", runErr)
	case cleaner.KindWrite:
		return fmt.Sprintf("FEHLER: Ausgabedatei '%s' konnte nicht geschrieben werden: %v", runErr.Path, runErr.Err)
	case cleaner.KindUnclassified:
		msg := fmt.Sprintf("FEHLER beim Verarbeiten der Daten: %v", runErr)
		if len(runErr.Trace) > 0 {
			msg += "\n" + strings.TrimRight(string(runErr.Trace), "\n")
		}
		return msg
	}
	return fmt.Sprintf("FEHLER: %v", runErr)
}

func printFailure(w io.Writer, err error) {
	fmt.Fprintln(w, describeFailure(err))
}
