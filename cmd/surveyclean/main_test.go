package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"surveyclean/internal/cleaner"
	"surveyclean/internal/testsupport"
)

const defaultInputName = "data_stressskala_2025-11-09_17-36.csv"

const surveyExport = "\"CASE\";\"DE07_01\";\"DE08\"\r\n" +
	"\"1\";\"Vollzeit angestellt bei Firma X\";\"3\"\r\n" +
	"\"2\";\"Studentin der Psychologie\";\"2\"\r\n" +
	"\"3\";\"Rentner seit 2020\";\"5\"\r\n" +
	"\"4\";\"\";\"1\"\r\n" +
	"\"5\";\"Pilot\";\"4\"\r\n"

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// chdirTemp switches into a fresh directory so default file names resolve there.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testChdir(t, dir)
	return dir
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestCleanWithDefaults(t *testing.T) {
	dir := chdirTemp(t)
	testsupport.WriteLatin1(t, filepath.Join(dir, defaultInputName), surveyExport)

	out, _, err := runCLI(t)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}

	requireContains(t, out, "Starte Datenbereinigung...")
	requireContains(t, out, "Input:  "+defaultInputName+" (iso-8859-1)")
	requireContains(t, out, "Output: data.csv (utf-8)")
	requireContains(t, out, "✓ Bereinigung erfolgreich abgeschlossen!")
	requireContains(t, out, "Zeilen verarbeitet: 5")
	requireContains(t, out, "Beschäftigungen bereinigt: 4")
	requireContains(t, out, "Angestellte")
	requireContains(t, out, "(leer)")
	requireContains(t, out, "✓ Datei gespeichert als: data.csv")

	got := testsupport.ReadFile(t, filepath.Join(dir, "data.csv"))
	want := "CASE;DE07_01;DE08\r\n" +
		"1;Angestellte;3\r\n" +
		"2;Studenten;2\r\n" +
		"3;Andere;5\r\n" +
		"4;;1\r\n" +
		"5;Andere;4\r\n"
	if got != want {
		t.Fatalf("output mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestCleanDistributionOrder(t *testing.T) {
	dir := chdirTemp(t)
	testsupport.WriteLatin1(t, filepath.Join(dir, defaultInputName), surveyExport)

	out, _, err := runCLI(t)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	order := []string{"Studenten", "Angestellte", "Andere", "(leer)"}
	section := out[strings.Index(out, "Beschäftigungsverteilung"):]
	last := -1
	for _, label := range order {
		idx := strings.Index(section, label)
		if idx < 0 {
			t.Fatalf("distribution is missing %q:\n%s", label, section)
		}
		if idx < last {
			t.Fatalf("distribution out of order at %q:\n%s", label, section)
		}
		last = idx
	}
}

func TestCleanWithOverrides(t *testing.T) {
	dir := chdirTemp(t)
	input := filepath.Join(dir, "export", "raw.csv")
	output := filepath.Join(dir, "clean.csv")
	testsupport.WriteLatin1(t, input, "DE07_01\r\nLehrerin\r\n")

	out, _, err := runCLI(t, "--input", input, "--output", output)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	requireContains(t, out, "Datei gespeichert als: "+output)
	if got := testsupport.ReadFile(t, output); got != "DE07_01\r\nAngestellte\r\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCleanMissingColumnAborts(t *testing.T) {
	dir := chdirTemp(t)
	testsupport.WriteLatin1(t, filepath.Join(dir, defaultInputName), "CASE;DE08\r\n1;2\r\n")

	_, _, err := runCLI(t)
	if err == nil {
		t.Fatal("expected error for missing column")
	}
	if exitCode(err) != 1 {
		t.Fatalf("exit code = %d, want 1", exitCode(err))
	}
	msg := describeFailure(err)
	requireContains(t, msg, "FEHLER: Spalte 'DE07_01' nicht gefunden!")
	requireContains(t, msg, "Verfügbare Spalten: CASE, DE08...")
	if _, statErr := os.Stat(filepath.Join(dir, "data.csv")); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("output must not be created, stat err = %v", statErr)
	}
}

func TestCleanMissingInput(t *testing.T) {
	chdirTemp(t)

	_, _, err := runCLI(t)
	if cleaner.KindOf(err) != cleaner.KindResourceNotFound {
		t.Fatalf("kind = %v, want resource_not_found (err %v)", cleaner.KindOf(err), err)
	}
	msg := describeFailure(err)
	requireContains(t, msg, "Input-Datei '"+defaultInputName+"' nicht gefunden!")
	requireContains(t, msg, "im aktuellen Verzeichnis")
}

func TestCleanEmptyInput(t *testing.T) {
	dir := chdirTemp(t)
	testsupport.WriteLatin1(t, filepath.Join(dir, defaultInputName), "")

	_, _, err := runCLI(t)
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if got := describeFailure(err); got != "FEHLER: Input-Datei ist leer!" {
		t.Fatalf("unexpected diagnostic %q", got)
	}
}

func TestCleanRejectsPositionalArgs(t *testing.T) {
	chdirTemp(t)
	if _, _, err := runCLI(t, "unexpected"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestCleanWithConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	testsupport.WriteLatin1(t, filepath.Join(dir, "in.csv"), "JOB\r\nPilotin\r\nHausmann\r\n")
	cfgPath := filepath.Join(dir, "custom.toml")
	content := "[files]\ninput = \"in.csv\"\noutput = \"out.csv\"\n\n" +
		"[classifier]\ncolumn = \"JOB\"\nemployed_keywords = [\"pilot\"]\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t, "--config", cfgPath); err != nil {
		t.Fatalf("clean: %v", err)
	}
	if got := testsupport.ReadFile(t, filepath.Join(dir, "out.csv")); got != "JOB\r\nAngestellte\r\nAndere\r\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCleanWritesLogFile(t *testing.T) {
	dir := chdirTemp(t)
	testsupport.WriteLatin1(t, filepath.Join(dir, defaultInputName), surveyExport)
	content := "[logging]\nlevel = \"info\"\noutput = \"logs/run.log\"\n"
	if err := os.WriteFile(filepath.Join(dir, "surveyclean.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t); err != nil {
		t.Fatalf("clean: %v", err)
	}
	logged := testsupport.ReadFile(t, filepath.Join(dir, "logs", "run.log"))
	requireContains(t, logged, "output written")
	requireContains(t, logged, "elapsed=")
	requireContains(t, logged, "run_id=")
}

func TestExitCode(t *testing.T) {
	if exitCode(nil) != 0 {
		t.Fatal("nil error must exit 0")
	}
	for _, kind := range []cleaner.Kind{
		cleaner.KindUnclassified,
		cleaner.KindResourceNotFound,
		cleaner.KindSchema,
		cleaner.KindEncoding,
		cleaner.KindWrite,
	} {
		if code := exitCode(&cleaner.Error{Kind: kind, Op: "x", Err: errors.New("boom")}); code != 1 {
			t.Fatalf("exit code for %s = %d, want 1", kind, code)
		}
	}
}

func TestDescribeFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "encoding",
			err:  &cleaner.Error{Kind: cleaner.KindEncoding, Op: "read", Path: "in.csv", Err: errors.New("undecodable input")},
			want: []string{"FEHLER: Zeichenkodierung", "in.csv", "undecodable input"},
		},
		{
			name: "write",
			err:  &cleaner.Error{Kind: cleaner.KindWrite, Op: "write", Path: "out.csv", Err: errors.New("disk full")},
			want: []string{"Ausgabedatei 'out.csv'", "disk full"},
		},
		{
			name: "unclassified with trace",
			err:  &cleaner.Error{Kind: cleaner.KindUnclassified, Op: "run", Err: errors.New("panic: boom"), Trace: []byte("goroutine 1 [running]:\n")},
			want: []string{"FEHLER beim Verarbeiten der Daten: run: panic: boom", "goroutine 1 [running]:"},
		},
		{
			name: "plain error",
			err:  errors.New("parse config: bad"),
			want: []string{"FEHLER: parse config: bad"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeFailure(tt.err)
			for _, want := range tt.want {
				requireContains(t, got, want)
			}
		})
	}
}
