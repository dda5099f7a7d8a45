package junior

import (
	"sort"

	"github.com/okian/scouty/internal/domain/model"
)

// trainingBoost scales training intensity for youth squads, which
// absorb drills faster than seniors.
const trainingBoost = 1.5

// Impact is one junior's projected primary-skill development under a
// training plan.
type Impact struct {
	PlayerID       string  `json:"player_id"`
	Name           string  `json:"name"`
	CurrentLevel   int     `json:"current_skill"`
	ProjectedLevel int     `json:"projected_skill"`
	// Improvement counts levels gained plus fractional progress earned.
	Improvement float64 `json:"improvement"`
}

// SimulateTraining projects every junior under the given plan with the
// youth boost applied, ordered by descending improvement. Invalid
// players land in the parallel error list.
func (a *Analyzer) SimulateTraining(juniors []*model.Player, cfg model.TrainingConfig) ([]Impact, []model.PlayerError, error) {
	primary, err := cfg.Type.PrimarySkill()
	if err != nil {
		return nil, nil, err
	}
	boosted := cfg
	boosted.Intensity *= trainingBoost

	impacts := make([]Impact, 0, len(juniors))
	var failures []model.PlayerError
	for _, j := range juniors {
		result, serr := a.simulator.Simulate(j, boosted)
		if serr != nil {
			failures = append(failures, model.PlayerError{PlayerID: j.ID, Err: serr})
			continue
		}
		final := result.Trajectory[len(result.Trajectory)-1].Skills[primary]
		current := j.SkillLevel(primary)
		impacts = append(impacts, Impact{
			PlayerID:       j.ID,
			Name:           j.Name,
			CurrentLevel:   current,
			ProjectedLevel: final.Level,
			Improvement:    float64(final.Level-current) + final.Progress - j.Progress(primary),
		})
	}
	sort.SliceStable(impacts, func(i, j int) bool {
		if impacts[i].Improvement != impacts[j].Improvement {
			return impacts[i].Improvement > impacts[j].Improvement
		}
		return impacts[i].PlayerID < impacts[j].PlayerID
	})
	return impacts, failures, nil
}

// Formation suitability scoring: each position group the squad can
// fully staff earns the group score; the back line adds a quality bonus
// scaled by its average defending level, capped.
const (
	formationGroupScore  = 30.0
	formationQualityCap  = 10.0
	formationQualityRate = 2.0
)

// FormationOption scores one formation against the squad's position mix.
type FormationOption struct {
	Formation   string  `json:"formation"`
	Suitability float64 `json:"suitability_score"`
	// CanField reports whether every outfield slot has a player.
	CanField bool `json:"can_field"`
}

type formationShape struct {
	name                             string
	defenders, midfielders, forwards int
}

// formationShapes lists the standard youth formations, name order.
func formationShapes() []formationShape {
	return []formationShape{
		{name: "3-5-2", defenders: 3, midfielders: 5, forwards: 2},
		{name: "4-3-3", defenders: 4, midfielders: 3, forwards: 3},
		{name: "4-4-2", defenders: 4, midfielders: 4, forwards: 2},
		{name: "5-3-2", defenders: 5, midfielders: 3, forwards: 2},
	}
}

// CompareFormations scores the standard formations against the squad,
// best first, and names the recommended one. Central defenders and wing
// backs fill the back line; inner midfielders and wingers the middle.
func (a *Analyzer) CompareFormations(juniors []*model.Player) ([]FormationOption, string, []model.PlayerError) {
	var failures []model.PlayerError
	var defenders, midfielders, forwards int
	defendingSum := 0
	for _, j := range juniors {
		if err := j.Validate(); err != nil {
			failures = append(failures, model.PlayerError{PlayerID: j.ID, Err: err})
			continue
		}
		switch j.Position {
		case model.PositionCD, model.PositionWB:
			defenders++
			defendingSum += j.SkillLevel(model.SkillDefending)
		case model.PositionIM, model.PositionWI:
			midfielders++
		case model.PositionFW:
			forwards++
		}
	}

	quality := 0.0
	if defenders > 0 {
		quality = formationQualityRate * float64(defendingSum) / float64(defenders)
		if quality > formationQualityCap {
			quality = formationQualityCap
		}
	}

	options := make([]FormationOption, 0, len(formationShapes()))
	for _, shape := range formationShapes() {
		score := quality
		if defenders >= shape.defenders {
			score += formationGroupScore
		}
		if midfielders >= shape.midfielders {
			score += formationGroupScore
		}
		if forwards >= shape.forwards {
			score += formationGroupScore
		}
		options = append(options, FormationOption{
			Formation:   shape.name,
			Suitability: score,
			CanField:    defenders >= shape.defenders && midfielders >= shape.midfielders && forwards >= shape.forwards,
		})
	}
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Suitability != options[j].Suitability {
			return options[i].Suitability > options[j].Suitability
		}
		return options[i].Formation < options[j].Formation
	})

	recommendation := ""
	if len(options) > 0 {
		recommendation = options[0].Formation
	}
	return options, recommendation, failures
}
