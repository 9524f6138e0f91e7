package renderer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/username/matchpulse/src/logger"
	"github.com/username/matchpulse/src/models"
)

// Placeholder tokens recognised in the template. Substitution is plain
// global string replacement; tokens outside this set are left as-is,
// and a template missing a token simply keeps its text unchanged.
const (
	tokenLastUpdated = "{{last_updated}}"
	tokenSummaryRows = "{{team_summary_rows}}"
	tokenFindings    = "{{interesting_findings}}"
)

const timestampLayout = "2006-01-02 15:04:05"

// ErrTemplate reports a template file that could not be read.
var ErrTemplate = errors.New("renderer: template unavailable")

// Render fills the placeholder tokens in template with the summary
// table rows, the findings list items and the given timestamp. Row
// fragments follow the order of summaries. Finding text is interpolated
// verbatim, without HTML escaping.
func Render(summaries []models.TeamSummary, findings []string, template string, timestamp string) string {
	var rows strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%.2f</td></tr>",
			s.Team, s.MatchesPlayed, s.TotalGoalsFor, s.TotalGoalsAgainst, s.TotalWins, s.WinRate)
	}

	var items strings.Builder
	for _, f := range findings {
		fmt.Fprintf(&items, "<li>%s</li>", f)
	}

	html := strings.ReplaceAll(template, tokenLastUpdated, timestamp)
	html = strings.ReplaceAll(html, tokenSummaryRows, rows.String())
	html = strings.ReplaceAll(html, tokenFindings, items.String())
	return html
}

// WriteReport renders the summaries into the template at templatePath
// and overwrites outputPath with the result.
func WriteReport(summaries []models.TeamSummary, findings []string, templatePath, outputPath string, now time.Time) error {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTemplate, err)
	}

	html := Render(summaries, findings, string(template), now.Format(timestampLayout))

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}

	if logger.L != nil {
		logger.L.Info("Blog updated", "output", outputPath)
	}
	return nil
}
