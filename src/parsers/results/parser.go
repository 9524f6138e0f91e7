package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/username/matchpulse/src/models"
	"github.com/username/matchpulse/src/utils"
)

// Column names fixed by convention with the upstream feed.
const (
	colDate      = "Date"
	colHome      = "HOME"
	colAway      = "AWAY"
	colHomeGoals = "H_GOALS"
	colAwayGoals = "A_GOALS"
)

// ErrMissingColumns reports a source whose header lacks a required
// column (or carries it with every cell empty), so no match record can
// be constructed from it.
var ErrMissingColumns = errors.New("results: required column missing from source")

// Parser decodes the finished-matches CSV feed.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(file io.Reader) ([]models.MatchRecord, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV records: %w", err)
	}

	index := columnIndex(header, rows)
	for _, name := range []string{colDate, colHome, colAway, colHomeGoals, colAwayGoals} {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, name)
		}
	}

	var records []models.MatchRecord
	for _, row := range rows {
		home := strings.TrimSpace(field(row, index[colHome]))
		away := strings.TrimSpace(field(row, index[colAway]))
		if home == "" || away == "" {
			continue
		}

		homeGoals, err := strconv.Atoi(strings.TrimSpace(field(row, index[colHomeGoals])))
		if err != nil {
			log.Printf("Skipping row due to invalid home goals: %q", field(row, index[colHomeGoals]))
			continue
		}
		awayGoals, err := strconv.Atoi(strings.TrimSpace(field(row, index[colAwayGoals])))
		if err != nil {
			log.Printf("Skipping row due to invalid away goals: %q", field(row, index[colAwayGoals]))
			continue
		}

		records = append(records, models.MatchRecord{
			Date:      utils.ParseDate(field(row, index[colDate])),
			HomeTeam:  home,
			AwayTeam:  away,
			HomeGoals: homeGoals,
			AwayGoals: awayGoals,
		})
	}

	return records, nil
}

// columnIndex maps header names to column positions. Columns whose
// cells are empty in every data row are dropped, mirroring how the
// upstream feed pads exports with dead columns.
func columnIndex(header []string, rows [][]string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" || columnEmpty(rows, i) {
			continue
		}
		index[name] = i
	}
	return index
}

func columnEmpty(rows [][]string, col int) bool {
	for _, row := range rows {
		if strings.TrimSpace(field(row, col)) != "" {
			return false
		}
	}
	// A header-only file keeps its columns; there is nothing to judge
	// emptiness against.
	return len(rows) > 0
}

func field(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
