package processors

import (
	"github.com/username/matchpulse/src/models"
)

// SummaryProcessor turns raw match records into per-team statistics and
// a list of human-readable findings.
type SummaryProcessor interface {
	Aggregate(records []models.MatchRecord) ([]models.TeamSummary, []string)
}
