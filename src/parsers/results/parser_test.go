package results

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	csv := "Date,HOME,AWAY,H_GOALS,A_GOALS\n" +
		"2024-01-01,Arsenal,Chelsea,2,1\n" +
		"2024-01-02,Liverpool,Everton,0,0\n"

	records, err := NewParser().Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.HomeTeam != "Arsenal" || first.AwayTeam != "Chelsea" {
		t.Errorf("teams = %q vs %q", first.HomeTeam, first.AwayTeam)
	}
	if first.HomeGoals != 2 || first.AwayGoals != 1 {
		t.Errorf("goals = %d-%d, want 2-1", first.HomeGoals, first.AwayGoals)
	}
	if first.Date.IsZero() {
		t.Error("expected a parsed date, got zero time")
	}
}

func TestParseSkipsRowsWithBadGoals(t *testing.T) {
	csv := "Date,HOME,AWAY,H_GOALS,A_GOALS\n" +
		"2024-01-01,Arsenal,Chelsea,2,1\n" +
		"2024-01-02,Liverpool,Everton,,0\n" +
		"2024-01-03,Spurs,Fulham,x,1\n"

	records, err := NewParser().Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected only the valid row, got %d records", len(records))
	}
	if records[0].HomeTeam != "Arsenal" {
		t.Errorf("kept the wrong row: %+v", records[0])
	}
}

func TestParseMissingRequiredColumn(t *testing.T) {
	csv := "Date,HOME,AWAY,A_GOALS\n" +
		"2024-01-01,Arsenal,Chelsea,1\n"

	_, err := NewParser().Parse(strings.NewReader(csv))
	if !errors.Is(err, ErrMissingColumns) {
		t.Errorf("expected ErrMissingColumns, got %v", err)
	}
}

func TestParseRequiredColumnEmptyEverywhere(t *testing.T) {
	// A required column present in the header but empty in every row is
	// dropped, which makes the source unusable.
	csv := "Date,HOME,AWAY,H_GOALS,A_GOALS\n" +
		"2024-01-01,Arsenal,Chelsea,,1\n" +
		"2024-01-02,Liverpool,Everton,,0\n"

	_, err := NewParser().Parse(strings.NewReader(csv))
	if !errors.Is(err, ErrMissingColumns) {
		t.Errorf("expected ErrMissingColumns, got %v", err)
	}
}

func TestParseDropsAllEmptyExtraColumns(t *testing.T) {
	// Dead padding columns from the export are ignored as long as the
	// required ones carry data.
	csv := "Date,HOME,AWAY,H_GOALS,A_GOALS,NOTES\n" +
		"2024-01-01,Arsenal,Chelsea,2,1,\n" +
		"2024-01-02,Liverpool,Everton,0,0,\n"

	records, err := NewParser().Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 records, got %d", len(records))
	}
}

func TestParseHeaderOnly(t *testing.T) {
	csv := "Date,HOME,AWAY,H_GOALS,A_GOALS\n"

	records, err := NewParser().Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestParseEmptySource(t *testing.T) {
	_, err := NewParser().Parse(strings.NewReader(""))
	if err == nil {
		t.Error("expected an error for a source with no header")
	}
}

func TestParseTrimsTeamNames(t *testing.T) {
	csv := "Date,HOME,AWAY,H_GOALS,A_GOALS\n" +
		"2024-01-01, Arsenal , Chelsea ,2,1\n"

	records, err := NewParser().Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if records[0].HomeTeam != "Arsenal" || records[0].AwayTeam != "Chelsea" {
		t.Errorf("team names not trimmed: %q vs %q", records[0].HomeTeam, records[0].AwayTeam)
	}
}
