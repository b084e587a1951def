package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("close failed: %v", err)
		}
	})
	return s
}

func TestRecordAndListExports(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	older := Entry{
		ExportedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		SourcePath: "a.csv",
		OutputPath: "a.md",
		ListName:   "Project List",
		Label:      "Reportable (black_dark)",
		CardCount:  3,
	}
	newer := older
	newer.ExportedAt = older.ExportedAt.Add(time.Hour)
	newer.SourcePath = "b.csv"
	newer.OutputPath = "b.md"
	newer.CardCount = 5

	if err := s.RecordExport(ctx, older); err != nil {
		t.Fatalf("RecordExport failed: %v", err)
	}
	if err := s.RecordExport(ctx, newer); err != nil {
		t.Fatalf("RecordExport failed: %v", err)
	}

	entries, err := s.RecentExports(ctx, 10)
	if err != nil {
		t.Fatalf("RecentExports failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].SourcePath != "b.csv" {
		t.Fatalf("entries[0].SourcePath = %q, want newest first", entries[0].SourcePath)
	}
	if entries[0].CardCount != 5 {
		t.Fatalf("CardCount = %d, want 5", entries[0].CardCount)
	}
}

func TestRecentExportsLimit(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	for i := 0; i < 3; i++ {
		if err := s.RecordExport(ctx, Entry{SourcePath: "x.csv", OutputPath: "x.md"}); err != nil {
			t.Fatalf("RecordExport failed: %v", err)
		}
	}
	entries, err := s.RecentExports(ctx, 2)
	if err != nil {
		t.Fatalf("RecentExports failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
}

func TestRecordExportFillsTimestamp(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	if err := s.RecordExport(ctx, Entry{SourcePath: "x.csv", OutputPath: "x.md"}); err != nil {
		t.Fatalf("RecordExport failed: %v", err)
	}
	entries, err := s.RecentExports(ctx, 1)
	if err != nil {
		t.Fatalf("RecentExports failed: %v", err)
	}
	if entries[0].ExportedAt.IsZero() {
		t.Fatalf("expected a non-zero timestamp")
	}
}
