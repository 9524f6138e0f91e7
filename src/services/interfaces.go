package services

import (
	"io"

	"github.com/username/matchpulse/src/models"
)

// ReportResult describes one completed pipeline run.
type ReportResult struct {
	Source     string `json:"source"`
	OutputPath string `json:"output_path"`
	MatchCount int    `json:"match_count"`
	TeamCount  int    `json:"team_count"`
}

// FetchService retrieves the raw match CSV from a URL or a local path.
type FetchService interface {
	Fetch(source string) (io.ReadCloser, error)
}

// ReportService runs the full pipeline: fetch, parse, aggregate,
// render, persist.
type ReportService interface {
	GenerateReport() (*ReportResult, error)
	LatestSummaries() ([]models.TeamSummary, []string, bool)
}
