package parsers

import (
	"io"

	"github.com/username/matchpulse/src/models"
)

// MatchParser decodes a tabular source into match records.
type MatchParser interface {
	Parse(file io.Reader) ([]models.MatchRecord, error)
}
