// Package report assembles simulator and scorer outputs into the
// comparison tables consumed by the command layer. Pure transformation;
// it defines sort order and shape, never content.
package report

import (
	"sort"

	"github.com/okian/scouty/internal/domain/insight"
	"github.com/okian/scouty/internal/domain/junior"
	"github.com/okian/scouty/internal/domain/model"
	"github.com/okian/scouty/internal/domain/projection"
)

// Warning is a non-fatal data-quality note attached to a report.
type Warning struct {
	PlayerID string `json:"player_id"`
	Message  string `json:"message"`
}

// ErrorEntry mirrors a per-player failure for serialization.
type ErrorEntry struct {
	PlayerID string `json:"player_id"`
	Error    string `json:"error"`
}

// errorEntries converts the engine's parallel error list for output.
func errorEntries(failures []model.PlayerError) []ErrorEntry {
	if len(failures) == 0 {
		return nil
	}
	entries := make([]ErrorEntry, len(failures))
	for i, f := range failures {
		entries[i] = ErrorEntry{PlayerID: f.PlayerID, Error: f.Err.Error()}
	}
	return entries
}

// MissingSkillWarnings builds warnings for engine-referenced skills
// absent from player records.
func MissingSkillWarnings(players []*model.Player) []Warning {
	var warnings []Warning
	for _, p := range players {
		for _, skill := range p.MissingSkills() {
			warnings = append(warnings, Warning{
				PlayerID: p.ID,
				Message:  "skill " + string(skill) + " missing, defaulted to 0",
			})
		}
	}
	return warnings
}

// Trajectory is the multi-week projection report for a roster under a
// single training type, ranked by total skill gain.
type Trajectory struct {
	Training    model.TrainingType   `json:"training_type"`
	Weeks       int                  `json:"weeks"`
	Projections []*projection.Result `json:"projections"`
	Warnings    []Warning            `json:"warnings,omitempty"`
	Errors      []ErrorEntry         `json:"errors,omitempty"`
}

// NewTrajectory ranks projections by descending gain, ties broken by
// lower salary delta, then player id.
func NewTrajectory(t model.TrainingType, weeks int, results []*projection.Result, warnings []Warning, failures []model.PlayerError) Trajectory {
	ranked := append([]*projection.Result(nil), results...)
	sort.SliceStable(ranked, func(i, j int) bool {
		ga, gb := ranked[i].TotalSkillGain(), ranked[j].TotalSkillGain()
		if ga != gb {
			return ga > gb
		}
		if ranked[i].SalaryDelta != ranked[j].SalaryDelta {
			return ranked[i].SalaryDelta < ranked[j].SalaryDelta
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})
	return Trajectory{
		Training:    t,
		Weeks:       weeks,
		Projections: ranked,
		Warnings:    warnings,
		Errors:      errorEntries(failures),
	}
}

// Comparison is the multi-training-type report. Rankings arrive already
// ordered from the simulator's comparative mode.
type Comparison struct {
	Weeks    int                         `json:"weeks"`
	Rankings []projection.TypeComparison `json:"rankings"`
	// Best names the top-ranked training type, empty for no candidates.
	Best     model.TrainingType `json:"best_training,omitempty"`
	Warnings []Warning          `json:"warnings,omitempty"`
	Errors   []ErrorEntry       `json:"errors,omitempty"`
}

// NewComparison wraps ranked training-type comparisons.
func NewComparison(weeks int, rankings []projection.TypeComparison, warnings []Warning, failures []model.PlayerError) Comparison {
	c := Comparison{
		Weeks:    weeks,
		Rankings: rankings,
		Warnings: warnings,
		Errors:   errorEntries(failures),
	}
	if len(rankings) > 0 {
		c.Best = rankings[0].Training
	}
	return c
}

// NearSkillup is the candidate list of players already close to a
// threshold crossing, sorted by descending progress upstream.
type NearSkillup struct {
	Threshold float64                       `json:"threshold"`
	Entries   []projection.NearSkillupEntry `json:"candidates"`
	Warnings  []Warning                     `json:"warnings,omitempty"`
}

// NewNearSkillup wraps the filtered entries.
func NewNearSkillup(threshold float64, entries []projection.NearSkillupEntry, warnings []Warning) NearSkillup {
	return NearSkillup{Threshold: threshold, Entries: entries, Warnings: warnings}
}

// Insights is the scored-roster report, ranked by composite score.
type Insights struct {
	Scores   []insight.Score `json:"players"`
	Warnings []Warning       `json:"warnings,omitempty"`
	Errors   []ErrorEntry    `json:"errors,omitempty"`
}

// NewInsights ranks scores by descending composite, ties by player id.
func NewInsights(scores []insight.Score, warnings []Warning, failures []model.PlayerError) Insights {
	ranked := append([]insight.Score(nil), scores...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Composite != ranked[j].Composite {
			return ranked[i].Composite > ranked[j].Composite
		}
		return ranked[i].PlayerID < ranked[j].PlayerID
	})
	return Insights{Scores: ranked, Warnings: warnings, Errors: errorEntries(failures)}
}

// Snapshot is the whole-squad overview: aggregates, strength and
// weakness callouts, a suggested lineup, plus ranked scores.
type Snapshot struct {
	TotalPlayers         int                     `json:"total_players"`
	AverageAge           float64                 `json:"average_age"`
	TotalSalary          float64                 `json:"total_salary"`
	TotalTSI             float64                 `json:"total_tsi"`
	PositionDistribution map[model.Position]int  `json:"position_distribution"`
	AverageSkills        map[model.Skill]float64 `json:"average_skills"`

	Strengths               []string `json:"strengths"`
	Weaknesses              []string `json:"weaknesses,omitempty"`
	TacticalRecommendations []string `json:"tactical_recommendations"`
	BestLineup              Lineup   `json:"best_lineup"`

	Players  []insight.Score `json:"players"`
	Warnings []Warning       `json:"warnings,omitempty"`
	Errors   []ErrorEntry    `json:"errors,omitempty"`
}

// NewSnapshot aggregates the roster and attaches ranked insight scores.
func NewSnapshot(players []*model.Player, scores []insight.Score, warnings []Warning, failures []model.PlayerError) Snapshot {
	s := Snapshot{
		TotalPlayers:         len(players),
		PositionDistribution: make(map[model.Position]int),
		AverageSkills:        make(map[model.Skill]float64),
		Players:              NewInsights(scores, nil, nil).Scores,
		Warnings:             warnings,
		Errors:               errorEntries(failures),
	}
	if len(players) == 0 {
		return s
	}

	ageSum := 0
	for _, p := range players {
		ageSum += p.Age
		s.TotalSalary += p.Salary
		s.TotalTSI += p.TSI
		s.PositionDistribution[p.Position]++
	}
	s.AverageAge = float64(ageSum) / float64(len(players))

	for _, skill := range model.Skills() {
		sum := 0
		for _, p := range players {
			sum += p.SkillLevel(skill)
		}
		s.AverageSkills[skill] = float64(sum) / float64(len(players))
	}

	s.Strengths = squadStrengths(s.AverageSkills, s.AverageAge)
	s.Weaknesses = squadWeaknesses(s.AverageSkills, s.PositionDistribution)
	s.TacticalRecommendations = tacticalRecommendations(s.Weaknesses)
	s.BestLineup = bestLineup(players)
	return s
}

// Juniors is the youth-squad report, ranked upstream by potential.
type Juniors struct {
	Analyses []junior.Analysis `json:"juniors"`
	Warnings []Warning         `json:"warnings,omitempty"`
	Errors   []ErrorEntry      `json:"errors,omitempty"`
}

// NewJuniors wraps ranked junior analyses.
func NewJuniors(analyses []junior.Analysis, warnings []Warning, failures []model.PlayerError) Juniors {
	return Juniors{Analyses: analyses, Warnings: warnings, Errors: errorEntries(failures)}
}

// JuniorTraining is the projected youth-development report, strongest
// improvement first.
type JuniorTraining struct {
	Training    model.TrainingType `json:"training_type"`
	Weeks       int                `json:"weeks"`
	Projections []junior.Impact    `json:"projections"`
	Warnings    []Warning          `json:"warnings,omitempty"`
	Errors      []ErrorEntry       `json:"errors,omitempty"`
}

// NewJuniorTraining wraps ranked junior training impacts.
func NewJuniorTraining(t model.TrainingType, weeks int, impacts []junior.Impact, warnings []Warning, failures []model.PlayerError) JuniorTraining {
	return JuniorTraining{
		Training:    t,
		Weeks:       weeks,
		Projections: impacts,
		Warnings:    warnings,
		Errors:      errorEntries(failures),
	}
}

// JuniorFormations ranks the standard formations by squad suitability.
type JuniorFormations struct {
	Formations     []junior.FormationOption `json:"formations"`
	Recommendation string                   `json:"recommendation,omitempty"`
	Warnings       []Warning                `json:"warnings,omitempty"`
	Errors         []ErrorEntry             `json:"errors,omitempty"`
}

// NewJuniorFormations wraps ranked formation options.
func NewJuniorFormations(options []junior.FormationOption, recommendation string, warnings []Warning, failures []model.PlayerError) JuniorFormations {
	return JuniorFormations{
		Formations:     options,
		Recommendation: recommendation,
		Warnings:       warnings,
		Errors:         errorEntries(failures),
	}
}
