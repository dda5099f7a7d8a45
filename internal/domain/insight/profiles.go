package insight

import (
	"github.com/okian/scouty/internal/domain/model"
)

// defaultProfiles holds the per-position skill weight vectors. Weights
// sum to 1 per position.
func defaultProfiles() map[model.Position]map[model.Skill]float64 {
	return map[model.Position]map[model.Skill]float64{
		model.PositionGK: {
			model.SkillGoalkeeping: 0.85,
			model.SkillSetPieces:   0.10,
			model.SkillDefending:   0.05,
		},
		model.PositionCD: {
			model.SkillDefending:  0.70,
			model.SkillPlaymaking: 0.15,
			model.SkillPassing:    0.10,
			model.SkillSetPieces:  0.05,
		},
		model.PositionWB: {
			model.SkillDefending:  0.45,
			model.SkillWinger:     0.35,
			model.SkillPassing:    0.10,
			model.SkillPlaymaking: 0.10,
		},
		model.PositionIM: {
			model.SkillPlaymaking: 0.60,
			model.SkillPassing:    0.20,
			model.SkillDefending:  0.10,
			model.SkillScoring:    0.10,
		},
		model.PositionWI: {
			model.SkillWinger:     0.55,
			model.SkillPassing:    0.20,
			model.SkillPlaymaking: 0.15,
			model.SkillScoring:    0.10,
		},
		model.PositionFW: {
			model.SkillScoring:   0.65,
			model.SkillWinger:    0.15,
			model.SkillPassing:   0.15,
			model.SkillSetPieces: 0.05,
		},
	}
}

// defaultCeilings gives every position the full 0-100 potential range;
// age decay alone differentiates players.
func defaultCeilings() map[model.Position]float64 {
	ceilings := make(map[model.Position]float64, len(model.Positions()))
	for _, pos := range model.Positions() {
		ceilings[pos] = maxScore
	}
	return ceilings
}
