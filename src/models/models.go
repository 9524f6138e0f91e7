package models

import "time"

// MatchRecord is one row of the source feed: a single finished match.
type MatchRecord struct {
	Date      time.Time
	HomeTeam  string
	AwayTeam  string
	HomeGoals int
	AwayGoals int
}

// TeamOutcome is one team's perspective on a single match. Every
// MatchRecord expands into exactly two of these, with goals for and
// against swapped between the home and away view.
type TeamOutcome struct {
	Date         time.Time
	Team         string
	GoalsFor     int
	GoalsAgainst int
	Result       int // GoalsFor - GoalsAgainst
	IsWin        bool
	IsDraw       bool
	IsLoss       bool
}

// TeamSummary aggregates one team's results across all its matches.
// WinRate is TotalWins/MatchesPlayed rounded to two decimal places.
type TeamSummary struct {
	Team              string  `json:"team"`
	MatchesPlayed     int     `json:"matches_played"`
	TotalGoalsFor     int     `json:"total_goals_for"`
	TotalGoalsAgainst int     `json:"total_goals_against"`
	TotalWins         int     `json:"total_wins"`
	WinRate           float64 `json:"win_rate"`
}

// ReportRun is one persisted pipeline run, as stored in report_runs.
// RanAt stays a string (RFC3339), matching the TEXT column it comes from.
type ReportRun struct {
	ID         int64  `json:"id"`
	RanAt      string `json:"ran_at"`
	Source     string `json:"source"`
	MatchCount int    `json:"match_count"`
	TeamCount  int    `json:"team_count"`
}
