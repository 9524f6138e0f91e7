package database

import (
	"database/sql"
	"fmt"
	stdlog "log"
	"time"

	"github.com/username/matchpulse/src/logger"
	"github.com/username/matchpulse/src/models"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS report_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ran_at TEXT NOT NULL,
		source TEXT NOT NULL,
		match_count INTEGER NOT NULL,
		team_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS team_summaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL,
		team TEXT NOT NULL,
		matches_played INTEGER NOT NULL,
		total_goals_for INTEGER NOT NULL,
		total_goals_against INTEGER NOT NULL,
		total_wins INTEGER NOT NULL,
		win_rate REAL NOT NULL,
		FOREIGN KEY(run_id) REFERENCES report_runs(id)
	);`

	if _, err := DB.Exec(createTableStatement); err != nil {
		stdlog.Fatalf("failed to create tables: %v", err)
	}

	if logger.L != nil {
		logger.L.Info("Database initialized", "databasePath", databasePath)
	} else {
		stdlog.Println("Database initialized:", databasePath)
	}
}

// SaveRun records one completed pipeline run together with its summary
// rows, in a single transaction. A nil DB (history disabled) is a no-op.
func SaveRun(source string, matchCount int, summaries []models.TeamSummary) error {
	if DB == nil {
		return nil
	}

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO report_runs (ran_at, source, match_count, team_count) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), source, matchCount, len(summaries))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read run id: %w", err)
	}

	for _, s := range summaries {
		if _, err := tx.Exec(
			`INSERT INTO team_summaries
			(run_id, team, matches_played, total_goals_for, total_goals_against, total_wins, win_rate)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			runID, s.Team, s.MatchesPlayed, s.TotalGoalsFor, s.TotalGoalsAgainst, s.TotalWins, s.WinRate); err != nil {
			return fmt.Errorf("failed to insert summary for %s: %w", s.Team, err)
		}
	}

	return tx.Commit()
}

// RecentRuns returns the most recent run history rows, newest first.
func RecentRuns(limit int) ([]models.ReportRun, error) {
	if DB == nil {
		return nil, nil
	}

	rows, err := DB.Query(
		`SELECT id, ran_at, source, match_count, team_count
		FROM report_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query run history: %w", err)
	}
	defer rows.Close()

	var runs []models.ReportRun
	for rows.Next() {
		var run models.ReportRun
		if err := rows.Scan(&run.ID, &run.RanAt, &run.Source, &run.MatchCount, &run.TeamCount); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run history: %w", err)
	}
	return runs, nil
}
