// Package matchlog extracts patterns from past matches to inform
// tactical and training choices.
package matchlog

import (
	"github.com/okian/scouty/internal/domain/model"
)

// Pattern thresholds. Possession is a percentage, chances and goals are
// per-match averages.
const (
	lowPossession     = 45.0
	lowChances        = 3.0
	weakDefenseGoals  = 2.0
	neutralPossession = 50.0

	trendWindow         = 5
	recentTrendSize     = 3
	possessionTrendGap  = 5.0
	pointsTrendGap      = 0.5
	defaultRecentWindow = 5
)

// Trend labels.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// PossessionAnalysis summarizes midfield control over the history.
type PossessionAnalysis struct {
	Average float64 `json:"average"`
	Trend   string  `json:"trend"`
}

// AttackAnalysis summarizes chance creation and conversion.
type AttackAnalysis struct {
	AverageChances float64 `json:"average_chances"`
	AverageGoals   float64 `json:"average_goals"`
	ConversionRate float64 `json:"conversion_rate"`
}

// DefenseAnalysis summarizes goals conceded.
type DefenseAnalysis struct {
	GoalsConcededAvg float64 `json:"goals_conceded_avg"`
	CleanSheets      int     `json:"clean_sheets"`
}

// Patterns is the full extraction over a match history.
type Patterns struct {
	Possession  PossessionAnalysis `json:"possession_analysis"`
	Attack      AttackAnalysis     `json:"attack_patterns"`
	Defense     DefenseAnalysis    `json:"defense_patterns"`
	Suggestions []string           `json:"tactical_suggestions"`
	WeakPoints  []string           `json:"weak_points"`
}

// RecentForm summarizes the last N matches.
type RecentForm struct {
	MatchesAnalyzed   int     `json:"matches_analyzed"`
	Wins              int     `json:"wins"`
	Draws             int     `json:"draws"`
	Losses            int     `json:"losses"`
	WinRate           float64 `json:"win_rate"`
	AveragePossession float64 `json:"average_possession"`
	AverageChances    float64 `json:"average_chances"`
	FormTrend         string  `json:"form_trend"`
}

// ExtractPatterns analyzes the full history. Matches are expected newest
// first, as the ingestion boundary delivers them. An empty history
// returns zero-valued patterns with no suggestions.
func ExtractPatterns(matches []model.Match) Patterns {
	if len(matches) == 0 {
		return Patterns{}
	}
	p := Patterns{
		Possession: analyzePossession(matches),
		Attack:     analyzeAttack(matches),
		Defense:    analyzeDefense(matches),
	}
	p.Suggestions = suggest(p)
	p.WeakPoints = weakPoints(p)
	return p
}

// AnalyzeRecentForm summarizes the last lastN matches. A non-positive
// lastN falls back to 5.
func AnalyzeRecentForm(matches []model.Match, lastN int) RecentForm {
	if lastN <= 0 {
		lastN = defaultRecentWindow
	}
	if lastN > len(matches) {
		lastN = len(matches)
	}
	recent := matches[:lastN]
	form := RecentForm{MatchesAnalyzed: len(recent)}
	if len(recent) == 0 {
		form.AveragePossession = neutralPossession
		form.FormTrend = TrendStable
		return form
	}

	possession := 0.0
	chances := 0
	for i := range recent {
		m := &recent[i]
		scored, conceded, ok := m.Goals()
		if ok {
			switch {
			case scored > conceded:
				form.Wins++
			case scored == conceded:
				form.Draws++
			default:
				form.Losses++
			}
		}
		possession += m.Possession
		chances += m.Chances
	}
	n := float64(len(recent))
	form.WinRate = float64(form.Wins) / n * 100
	form.AveragePossession = possession / n
	form.AverageChances = float64(chances) / n
	form.FormTrend = formTrend(recent)
	return form
}

func analyzePossession(matches []model.Match) PossessionAnalysis {
	total := 0.0
	count := 0
	for i := range matches {
		if matches[i].Possession > 0 {
			total += matches[i].Possession
			count++
		}
	}
	if count == 0 {
		return PossessionAnalysis{Average: neutralPossession, Trend: TrendStable}
	}
	avg := total / float64(count)

	recent, older := splitAverages(matches, trendWindow)
	trend := TrendStable
	switch {
	case recent > older+possessionTrendGap:
		trend = TrendImproving
	case recent < older-possessionTrendGap:
		trend = TrendDeclining
	}
	return PossessionAnalysis{Average: avg, Trend: trend}
}

// splitAverages compares possession over the newest window against the
// rest of the history.
func splitAverages(matches []model.Match, window int) (recent, older float64) {
	if len(matches) <= window {
		avg := averagePossession(matches)
		return avg, avg
	}
	return averagePossession(matches[:window]), averagePossession(matches[window:])
}

func averagePossession(matches []model.Match) float64 {
	if len(matches) == 0 {
		return neutralPossession
	}
	total := 0.0
	for i := range matches {
		total += matches[i].Possession
	}
	return total / float64(len(matches))
}

func analyzeAttack(matches []model.Match) AttackAnalysis {
	chances := 0
	goals := 0
	for i := range matches {
		chances += matches[i].Chances
		scored, _, ok := matches[i].Goals()
		if ok {
			goals += scored
		}
	}
	n := float64(len(matches))
	analysis := AttackAnalysis{
		AverageChances: float64(chances) / n,
		AverageGoals:   float64(goals) / n,
	}
	if chances > 0 {
		analysis.ConversionRate = float64(goals) / float64(chances) * 100
	}
	return analysis
}

func analyzeDefense(matches []model.Match) DefenseAnalysis {
	conceded := 0
	cleanSheets := 0
	for i := range matches {
		_, against, ok := matches[i].Goals()
		if !ok {
			continue
		}
		conceded += against
		if against == 0 {
			cleanSheets++
		}
	}
	return DefenseAnalysis{
		GoalsConcededAvg: float64(conceded) / float64(len(matches)),
		CleanSheets:      cleanSheets,
	}
}

func suggest(p Patterns) []string {
	var suggestions []string
	if p.Possession.Average < lowPossession {
		suggestions = append(suggestions, "Low possession - consider playmaking training or a midfield-heavy formation")
	}
	if p.Attack.AverageChances < lowChances {
		suggestions = append(suggestions, "Low chance creation - focus on scoring or winger development")
	}
	if p.Defense.GoalsConcededAvg > weakDefenseGoals {
		suggestions = append(suggestions, "High goals conceded - strengthen defense or train defending")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Team performing well - maintain current tactics")
	}
	return suggestions
}

func weakPoints(p Patterns) []string {
	var points []string
	if p.Possession.Average < lowPossession {
		points = append(points, "Midfield control")
	}
	if p.Attack.AverageChances < lowChances {
		points = append(points, "Attack creation")
	}
	if p.Defense.GoalsConcededAvg > weakDefenseGoals {
		points = append(points, "Defense")
	}
	return points
}

// formTrend compares average points over the newest matches against the
// ones just before them.
func formTrend(matches []model.Match) string {
	if len(matches) <= recentTrendSize {
		return TrendStable
	}
	recent := averagePoints(matches[:recentTrendSize])
	older := averagePoints(matches[recentTrendSize:])
	switch {
	case recent > older+pointsTrendGap:
		return TrendImproving
	case recent < older-pointsTrendGap:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func averagePoints(matches []model.Match) float64 {
	if len(matches) == 0 {
		return 0
	}
	total := 0.0
	for i := range matches {
		total += matches[i].Points()
	}
	return total / float64(len(matches))
}
