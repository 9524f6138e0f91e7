package database

import (
	"path/filepath"
	"testing"

	"github.com/username/matchpulse/src/models"
)

func TestSaveRunAndRecentRuns(t *testing.T) {
	InitDB(filepath.Join(t.TempDir(), "test.db"))
	defer func() {
		DB.Close()
		DB = nil
	}()

	summaries := []models.TeamSummary{
		{Team: "A", MatchesPlayed: 1, TotalGoalsFor: 2, TotalGoalsAgainst: 0, TotalWins: 1, WinRate: 1.00},
		{Team: "B", MatchesPlayed: 1, TotalGoalsFor: 0, TotalGoalsAgainst: 2, TotalWins: 0, WinRate: 0.00},
	}

	if err := SaveRun("https://example.com/matches.csv", 1, summaries); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if err := SaveRun("https://example.com/matches.csv", 3, summaries); err != nil {
		t.Fatalf("second SaveRun failed: %v", err)
	}

	runs, err := RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Newest first.
	if runs[0].MatchCount != 3 || runs[1].MatchCount != 1 {
		t.Errorf("runs not ordered newest first: %+v", runs)
	}
	if runs[0].TeamCount != 2 {
		t.Errorf("team count = %d, want 2", runs[0].TeamCount)
	}
	if runs[0].RanAt == "" {
		t.Error("expected a recorded timestamp")
	}

	var count int
	if err := DB.QueryRow(`SELECT COUNT(*) FROM team_summaries`).Scan(&count); err != nil {
		t.Fatalf("counting summary rows: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 persisted summary rows, got %d", count)
	}
}

func TestSaveRunWithoutInit(t *testing.T) {
	prev := DB
	DB = nil
	defer func() { DB = prev }()

	if err := SaveRun("src", 0, nil); err != nil {
		t.Errorf("SaveRun with nil DB must be a no-op, got %v", err)
	}
	runs, err := RecentRuns(5)
	if err != nil || runs != nil {
		t.Errorf("RecentRuns with nil DB = (%v, %v), want (nil, nil)", runs, err)
	}
}
