package db

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenPath(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestInsertAndSelectExtraction(t *testing.T) {
	database := openTestDB(t)

	id, err := InsertExtraction(database, Extraction{
		SourcePath:   "/videos/a.mp4",
		OutputPath:   "/output/a.mp4_clip_20250227_161000.mp4",
		StartSeconds: 5,
		EndSeconds:   10,
		Status:       StatusCompleted,
	})
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero id")
	}

	extractions, err := SelectRecentExtractions(database, 10)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(extractions) != 1 {
		t.Fatalf("expected 1 extraction, got %d", len(extractions))
	}

	e := extractions[0]
	if e.SourcePath != "/videos/a.mp4" {
		t.Errorf("source path = %q", e.SourcePath)
	}
	if e.StartSeconds != 5 || e.EndSeconds != 10 {
		t.Errorf("range = %d/%d, want 5/10", e.StartSeconds, e.EndSeconds)
	}
	if e.Status != StatusCompleted {
		t.Errorf("status = %q, want %q", e.Status, StatusCompleted)
	}
	if e.CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestSelectRecentExtractionsNewestFirst(t *testing.T) {
	database := openTestDB(t)

	for _, path := range []string{"/videos/first.mp4", "/videos/second.mp4", "/videos/third.mp4"} {
		if _, err := InsertExtraction(database, Extraction{
			SourcePath: path,
			Status:     StatusCompleted,
		}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	extractions, err := SelectRecentExtractions(database, 2)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(extractions) != 2 {
		t.Fatalf("expected limit of 2 rows, got %d", len(extractions))
	}
	if extractions[0].SourcePath != "/videos/third.mp4" {
		t.Errorf("newest first expected, got %q", extractions[0].SourcePath)
	}
	if extractions[1].SourcePath != "/videos/second.mp4" {
		t.Errorf("second newest expected, got %q", extractions[1].SourcePath)
	}
}

func TestInsertExtractionWithError(t *testing.T) {
	database := openTestDB(t)

	if _, err := InsertExtraction(database, Extraction{
		SourcePath: "/videos/broken.mp4",
		Status:     StatusError,
		Error:      "ffmpeg exited with code 1: Conversion failed!",
	}); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	extractions, err := SelectRecentExtractions(database, 1)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if extractions[0].Status != StatusError {
		t.Errorf("status = %q, want %q", extractions[0].Status, StatusError)
	}
	if extractions[0].Error == "" {
		t.Error("error message should be preserved")
	}
}

func TestDeleteAllExtractions(t *testing.T) {
	database := openTestDB(t)

	for i := 0; i < 3; i++ {
		if _, err := InsertExtraction(database, Extraction{Status: StatusCompleted}); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	deleted, err := DeleteAllExtractions(database)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 3 {
		t.Errorf("expected 3 rows deleted, got %d", deleted)
	}

	extractions, err := SelectRecentExtractions(database, 10)
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(extractions) != 0 {
		t.Errorf("expected empty history, got %d rows", len(extractions))
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data.db")

	first, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}
	first.Close()

	second, err := OpenPath(dbPath)
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	second.Close()
}
