package exporter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/trellomd/internal/config"
	"github.com/akyairhashvil/trellomd/internal/history"
)

const scenarioCSV = `Card ID,Card Name,Card Description,Card URL,Labels,List Name,Archived,Board Name
1,Keep me,Still open,https://trello.test/c/1,"Reportable (black_dark), TMM (red)",Project List,false,Platform
2,Drop me,Archived card,https://trello.test/c/2,"Reportable (black_dark), TMM (red)",Project List,true,Platform
`

type fakeHistory struct {
	entries []history.Entry
	err     error
}

func (f *fakeHistory) RecordExport(ctx context.Context, e history.Entry) error {
	f.entries = append(f.entries, e)
	return f.err
}

func testOptions(t *testing.T, csv string) config.Options {
	t.Helper()
	dir := t.TempDir()
	opts := config.DefaultOptions()
	opts.CSVPath = filepath.Join(dir, "export.csv")
	opts.OutputPath = filepath.Join(dir, "report.md")
	opts.IncludeMetadata = false
	if err := os.WriteFile(opts.CSVPath, []byte(csv), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return opts
}

func TestRunEndToEnd(t *testing.T) {
	opts := testOptions(t, scenarioCSV)
	hist := &fakeHistory{}

	res, err := Run(context.Background(), opts, hist)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Cards) != 1 {
		t.Fatalf("len(Cards) = %d, want 1 (archived row dropped)", len(res.Cards))
	}
	if res.Cards[0].Team != "TMM" {
		t.Fatalf("Team = %q, want TMM", res.Cards[0].Team)
	}

	data, err := os.ReadFile(opts.OutputPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "## TMM") || !strings.Contains(out, "### Keep me") {
		t.Fatalf("report missing sections:\n%s", out)
	}

	// Default behavior deletes the source CSV.
	if _, err := os.Stat(opts.CSVPath); !os.IsNotExist(err) {
		t.Fatalf("expected source csv to be deleted")
	}

	if len(hist.entries) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(hist.entries))
	}
	if hist.entries[0].CardCount != 1 {
		t.Fatalf("CardCount = %d, want 1", hist.entries[0].CardCount)
	}
}

func TestRunKeepCSV(t *testing.T) {
	opts := testOptions(t, scenarioCSV)
	opts.KeepCSV = true

	if _, err := Run(context.Background(), opts, nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(opts.CSVPath); err != nil {
		t.Fatalf("expected source csv to survive: %v", err)
	}
}

func TestRunIncludeArchived(t *testing.T) {
	opts := testOptions(t, scenarioCSV)
	opts.IncludeArchived = true

	res, err := Run(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Cards) != 2 {
		t.Fatalf("len(Cards) = %d, want 2", len(res.Cards))
	}
}

func TestRunNoCardsWritesNothing(t *testing.T) {
	opts := testOptions(t, "Card Name,List Name,Labels\nStray,Another List,\n")

	res, err := Run(context.Background(), opts, nil)
	if !errors.Is(err, ErrNoCards) {
		t.Fatalf("err = %v, want ErrNoCards", err)
	}
	if !strings.Contains(res.Markdown, "*No cards found matching the criteria.*") {
		t.Fatalf("fallback document missing:\n%s", res.Markdown)
	}
	if _, statErr := os.Stat(opts.OutputPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no output file for empty result")
	}
	// Source survives a no-op run.
	if _, statErr := os.Stat(opts.CSVPath); statErr != nil {
		t.Fatalf("expected source csv to survive: %v", statErr)
	}
}

func TestPrepareUnreadableFileDegrades(t *testing.T) {
	opts := config.DefaultOptions()
	opts.CSVPath = filepath.Join(t.TempDir(), "absent.csv")
	opts.IncludeMetadata = false

	res := Prepare(opts)
	if len(res.Cards) != 0 {
		t.Fatalf("len(Cards) = %d, want 0", len(res.Cards))
	}
	if !strings.Contains(res.Markdown, "*No cards found matching the criteria.*") {
		t.Fatalf("expected fallback document, got:\n%s", res.Markdown)
	}
}

func TestCommitHistoryFailureNonFatal(t *testing.T) {
	opts := testOptions(t, scenarioCSV)
	hist := &fakeHistory{err: errors.New("disk full")}

	if _, err := Run(context.Background(), opts, hist); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(opts.OutputPath); err != nil {
		t.Fatalf("expected report despite history failure: %v", err)
	}
}

func TestRunWritesPDF(t *testing.T) {
	opts := testOptions(t, scenarioCSV)
	opts.PDFPath = filepath.Join(filepath.Dir(opts.OutputPath), "report.pdf")

	if _, err := Run(context.Background(), opts, nil); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	info, err := os.Stat(opts.PDFPath)
	if err != nil {
		t.Fatalf("Stat pdf failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected non-empty pdf")
	}
}
