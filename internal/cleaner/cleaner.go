package cleaner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"surveyclean/internal/config"
	"surveyclean/internal/csvtable"
	"surveyclean/internal/logging"
	"surveyclean/internal/occupation"
	"surveyclean/internal/textenc"
)

// columnPreview is how many header names a missing-column error lists.
const columnPreview = 20

// Result describes a completed run.
type Result struct {
	Input       string
	Output      string
	Column      string
	ColumnIndex int
	Stats       Stats
}

// Run executes the pipeline described by cfg. Panics are recovered into a
// KindUnclassified error carrying the stack trace.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &Error{Kind: KindUnclassified, Op: "run", Err: fmt.Errorf("panic: %v", r), Trace: debug.Stack()}
		}
	}()

	if cfg == nil {
		return nil, &Error{Kind: KindUnclassified, Op: "run", Err: fmt.Errorf("no configuration")}
	}
	start := time.Now()
	ctx = logging.WithRunID(ctx)
	logger = logging.NewComponentLogger(logger, "cleaner")

	inputEnc, err := textenc.Lookup(cfg.Files.InputEncoding)
	if err != nil {
		return nil, &Error{Kind: KindEncoding, Op: "resolve input encoding", Err: err}
	}
	outputEnc, err := textenc.Lookup(cfg.Files.OutputEncoding)
	if err != nil {
		return nil, &Error{Kind: KindEncoding, Op: "resolve output encoding", Err: err}
	}

	readCtx := logging.WithStage(ctx, "read")
	tbl, err := csvtable.Read(cfg.Files.Input, csvtable.Options{Encoding: inputEnc, Delimiter: cfg.Delimiter()})
	if err != nil {
		runErr := readError(cfg.Files.Input, err)
		logging.WithContext(readCtx, logger).Error("read failed",
			logging.String("kind", runErr.Kind.String()),
			logging.Error(err),
		)
		return nil, runErr
	}
	logging.WithContext(readCtx, logger).Info("table loaded",
		logging.String("path", cfg.Files.Input),
		logging.String("encoding", inputEnc.Name),
		logging.Int("columns", len(tbl.Header)),
		logging.Int("rows", tbl.Rows()),
	)

	column := cfg.Classifier.Column
	idx, ok := tbl.ColumnIndex(column)
	if !ok {
		runErr := &Error{
			Kind:    KindSchema,
			Op:      "locate column",
			Err:     fmt.Errorf("%w: %q", ErrColumnNotFound, column),
			Column:  column,
			Columns: tbl.HeaderPreview(columnPreview),
		}
		logging.WithContext(logging.WithStage(ctx, "locate"), logger).Error("column missing",
			logging.String("column", column),
			logging.Int("available", len(tbl.Header)),
		)
		return nil, runErr
	}

	classifier := occupation.New(Rules(cfg))
	stats := Transform(tbl, idx, classifier)
	logging.WithContext(logging.WithStage(ctx, "transform"), logger).Info("column classified",
		logging.String("column", column),
		logging.Int("index", idx),
		logging.Int("processed", stats.Processed),
		logging.Int("changed", stats.Changed),
	)

	writeCtx := logging.WithStage(ctx, "write")
	if err := csvtable.Write(cfg.Files.Output, tbl, csvtable.Options{Encoding: outputEnc, Delimiter: cfg.Delimiter()}); err != nil {
		runErr := writeError(cfg.Files.Output, err)
		logging.WithContext(writeCtx, logger).Error("write failed",
			logging.String("kind", runErr.Kind.String()),
			logging.Error(err),
		)
		return nil, runErr
	}
	logging.WithContext(writeCtx, logger).Info("output written",
		logging.String("path", cfg.Files.Output),
		logging.String("encoding", outputEnc.Name),
		logging.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Input:       cfg.Files.Input,
		Output:      cfg.Files.Output,
		Column:      column,
		ColumnIndex: idx,
		Stats:       stats,
	}, nil
}

// Transform classifies column idx of every record in place. Records too short
// to hold the column are counted as processed and left alone.
func Transform(tbl *csvtable.Table, idx int, classifier *occupation.Classifier) Stats {
	stats := Stats{
		Processed:    tbl.Rows(),
		Distribution: make(map[occupation.Category]int, len(occupation.DisplayOrder)),
	}
	for _, record := range tbl.Records {
		if idx >= len(record) {
			continue
		}
		original := record[idx]
		cleaned := classifier.Classify(original)
		if string(cleaned) != original {
			stats.Changed++
		}
		record[idx] = string(cleaned)
		stats.Distribution[cleaned]++
	}
	return stats
}

// Rules builds classifier rules from the [classifier] section, falling back
// to the curated defaults for every list left empty.
func Rules(cfg *config.Config) occupation.Rules {
	rules := occupation.DefaultRules(cfg.Classifier.Column)
	if len(cfg.Classifier.Sentinels) > 0 {
		rules.Sentinels = append([]string(nil), cfg.Classifier.Sentinels...)
	}
	overrides := map[occupation.Category][]string{
		occupation.Student:  cfg.Classifier.StudentKeywords,
		occupation.Employed: cfg.Classifier.EmployedKeywords,
		occupation.Other:    cfg.Classifier.OtherKeywords,
	}
	for i, g := range rules.Groups {
		if kw := overrides[g.Category]; len(kw) > 0 {
			rules.Groups[i].Keywords = append([]string(nil), kw...)
		}
	}
	return rules
}
