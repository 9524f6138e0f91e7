package processors

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/matchpulse/src/models"
	"github.com/username/matchpulse/src/utils"
)

const findingTopWinRate = "The team with the highest win rate is %s with a win rate of %.2f."

type summaryProcessorImpl struct{}

func NewSummaryProcessor() SummaryProcessor {
	return &summaryProcessorImpl{}
}

// Aggregate expands each match into its two team outcomes, groups them
// by team and reduces each group to a TeamSummary. Summaries come back
// sorted by team name; an empty input yields no summaries and no
// findings. Pure transform, no side effects.
func (p *summaryProcessorImpl) Aggregate(records []models.MatchRecord) ([]models.TeamSummary, []string) {
	outcomes := toOutcomes(records)

	grouped := make(map[string][]models.TeamOutcome)
	for _, o := range outcomes {
		grouped[o.Team] = append(grouped[o.Team], o)
	}

	summaries := make([]models.TeamSummary, 0, len(grouped))
	for team, teamOutcomes := range grouped {
		s := models.TeamSummary{Team: team}
		for _, o := range teamOutcomes {
			s.MatchesPlayed++
			s.TotalGoalsFor += o.GoalsFor
			s.TotalGoalsAgainst += o.GoalsAgainst
			if o.IsWin {
				s.TotalWins++
			}
		}
		// MatchesPlayed > 0 always holds here: teams only exist
		// because at least one outcome referenced them.
		s.WinRate = utils.RoundFloat(float64(s.TotalWins)/float64(s.MatchesPlayed), 2)
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Team < summaries[j].Team
	})

	return summaries, findings(summaries)
}

// toOutcomes derives the home and away perspective for every match.
func toOutcomes(records []models.MatchRecord) []models.TeamOutcome {
	outcomes := make([]models.TeamOutcome, 0, len(records)*2)
	for _, r := range records {
		outcomes = append(outcomes,
			newOutcome(r.Date, r.HomeTeam, r.HomeGoals, r.AwayGoals),
			newOutcome(r.Date, r.AwayTeam, r.AwayGoals, r.HomeGoals),
		)
	}
	return outcomes
}

func newOutcome(date time.Time, team string, goalsFor, goalsAgainst int) models.TeamOutcome {
	result := goalsFor - goalsAgainst
	return models.TeamOutcome{
		Date:         date,
		Team:         team,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		Result:       result,
		IsWin:        result > 0,
		IsDraw:       result == 0,
		IsLoss:       result < 0,
	}
}

// findings derives notable facts from the summary rows. Summaries
// arrive sorted by team name, so a strict comparison resolves win-rate
// ties to the alphabetically first team.
func findings(summaries []models.TeamSummary) []string {
	if len(summaries) == 0 {
		return nil
	}

	top := summaries[0]
	for _, s := range summaries[1:] {
		if s.WinRate > top.WinRate {
			top = s
		}
	}

	return []string{fmt.Sprintf(findingTopWinRate, top.Team, top.WinRate)}
}
