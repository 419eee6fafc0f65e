// ABOUTME: Tests for submission history operations
// ABOUTME: Verifies recording, ordering, and stage round-tripping
package db

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/quickflip/quickflip/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test db: %v", err)
	}
	if err := InitSchema(database); err != nil {
		t.Fatalf("Failed to init schema: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestRecordSubmissionAssignsID(t *testing.T) {
	database := setupTestDB(t)

	sub := &models.Submission{
		DealID:      "d1",
		Rank:        "B",
		Stage:       models.StageMatched,
		Address:     "1 Main St",
		City:        "Springfield",
		State:       "IL",
		AskingPrice: 150000,
	}

	if err := RecordSubmission(database, sub); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	if sub.ID == "" {
		t.Error("expected an ID to be assigned")
	}
	if sub.CreatedAt.IsZero() {
		t.Error("expected a timestamp to be assigned")
	}
}

func TestListSubmissionsNewestFirst(t *testing.T) {
	database := setupTestDB(t)

	base := time.Now().Add(-time.Hour)
	for i, dealID := range []string{"d1", "d2", "d3"} {
		sub := &models.Submission{
			DealID:    dealID,
			Stage:     models.StageSubmitted,
			Address:   "1 Main St",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := RecordSubmission(database, sub); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	subs, err := ListSubmissions(database, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(subs) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(subs))
	}
	if subs[0].DealID != "d3" || subs[2].DealID != "d1" {
		t.Errorf("expected newest first, got %s..%s", subs[0].DealID, subs[2].DealID)
	}
}

func TestListSubmissionsLimit(t *testing.T) {
	database := setupTestDB(t)

	for _, dealID := range []string{"d1", "d2", "d3"} {
		_ = RecordSubmission(database, &models.Submission{
			DealID:  dealID,
			Stage:   models.StageSubmitted,
			Address: "1 Main St",
		})
	}

	subs, err := ListSubmissions(database, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(subs) != 2 {
		t.Errorf("expected 2 submissions, got %d", len(subs))
	}
}

func TestGetSubmissionRoundTripsStage(t *testing.T) {
	database := setupTestDB(t)

	if err := RecordSubmission(database, &models.Submission{
		DealID:      "d9",
		Rank:        "A",
		Stage:       models.StageMatched,
		Address:     "9 Oak Ave",
		AskingPrice: 99000,
	}); err != nil {
		t.Fatalf("record failed: %v", err)
	}

	sub, err := GetSubmission(database, "d9")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if sub == nil {
		t.Fatal("expected a submission")
	}
	if sub.Stage != models.StageMatched {
		t.Errorf("expected matched stage, got %s", sub.Stage)
	}
	if sub.Rank != "A" {
		t.Errorf("expected rank A, got %s", sub.Rank)
	}
}

func TestGetSubmissionMissing(t *testing.T) {
	database := setupTestDB(t)

	sub, err := GetSubmission(database, "nope")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if sub != nil {
		t.Error("expected nil for unknown deal")
	}
}
