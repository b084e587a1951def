// Package exporter runs the full export pipeline: parse the CSV, filter
// and extract cards, render the report, and write it out.
package exporter

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/akyairhashvil/trellomd/internal/config"
	"github.com/akyairhashvil/trellomd/internal/csvio"
	"github.com/akyairhashvil/trellomd/internal/history"
	"github.com/akyairhashvil/trellomd/internal/models"
	"github.com/akyairhashvil/trellomd/internal/report"
	"github.com/akyairhashvil/trellomd/internal/util"
)

// ErrNoCards is returned when the filter criteria match nothing. The
// rendered fallback document is still available on the Result.
var ErrNoCards = errors.New("no cards matched the filter criteria")

// History receives completed runs. Satisfied by *history.Store.
type History interface {
	RecordExport(ctx context.Context, e history.Entry) error
}

// Result is the outcome of the read-only half of the pipeline.
type Result struct {
	Cards      []models.Card
	Markdown   string
	OutputPath string
}

// Prepare parses, filters, extracts, and renders without touching the
// filesystem beyond reading the CSV. Parse failures degrade to an empty
// card set with a logged warning.
func Prepare(opts config.Options) Result {
	rows, err := csvio.NewParser(opts.CSVPath).Rows()
	if err != nil {
		util.LogError("parsing csv export", err)
		rows = nil
	}
	cards := Cards(rows, opts)
	return Result{
		Cards:      cards,
		Markdown:   report.RenderMarkdown(cards, renderOptions(opts)),
		OutputPath: opts.OutputPath,
	}
}

// Cards turns raw rows into report cards using the configured filters.
func Cards(rows []csvio.Row, opts config.Options) []models.Card {
	filtered := report.Filter(rows, report.FilterOptions{
		ListName:        opts.ListName,
		ReportableLabel: opts.ReportableLabel,
		IncludeArchived: opts.IncludeArchived,
	})
	return report.Extract(filtered, opts.ReportableLabel)
}

// Commit writes the rendered report and performs the post-export side
// effects: optional PDF, source deletion, history journal. Deletion and
// journal failures are logged warnings, never fatal.
func Commit(ctx context.Context, res Result, opts config.Options, hist History) error {
	if err := os.WriteFile(res.OutputPath, []byte(res.Markdown), 0o644); err != nil {
		return err
	}
	if opts.PDFPath != "" {
		if err := report.RenderPDF(res.Cards, renderOptions(opts), opts.PDFPath); err != nil {
			return err
		}
	}
	if !opts.KeepCSV {
		deleteSource(opts.CSVPath)
	}
	if hist != nil {
		err := hist.RecordExport(ctx, history.Entry{
			ExportedAt: time.Now(),
			SourcePath: opts.CSVPath,
			OutputPath: res.OutputPath,
			ListName:   opts.ListName,
			Label:      opts.ReportableLabel,
			CardCount:  len(res.Cards),
		})
		util.LogError("recording export history", err)
	}
	return nil
}

// Run executes one export end to end. Nothing is written when no cards
// match; the caller decides how to surface ErrNoCards.
func Run(ctx context.Context, opts config.Options, hist History) (Result, error) {
	res := Prepare(opts)
	if len(res.Cards) == 0 {
		return res, ErrNoCards
	}
	if err := Commit(ctx, res, opts, hist); err != nil {
		return res, err
	}
	return res, nil
}

func renderOptions(opts config.Options) report.RenderOptions {
	return report.RenderOptions{
		Title:           opts.Title,
		IncludeMetadata: opts.IncludeMetadata,
	}
}

func deleteSource(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		util.LogError("deleting source csv", err)
	}
}
