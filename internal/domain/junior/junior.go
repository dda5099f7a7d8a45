// Package junior ranks youth-squad players by promotion potential.
package junior

import (
	"sort"

	"github.com/okian/scouty/internal/domain/insight"
	"github.com/okian/scouty/internal/domain/model"
	"github.com/okian/scouty/internal/domain/projection"
)

// Potential score component caps. The four components sum to at most 100.
const (
	ageScoreUnder17 = 30.0
	ageScoreUnder18 = 20.0
	ageScoreUnder19 = 10.0

	skillScorePerLevel = 5.0
	skillScoreCap      = 40.0

	tsiScoreHigh         = 20.0
	tsiScoreMid          = 10.0
	tsiHighThreshold     = 1000.0
	tsiMidThreshold      = 500.0
	formScoreMultiplier  = 2.0
	maxPotentialScore    = 100.0
	defaultMaxPromotions = 3
)

// Promotion recommendations, strongest first.
const (
	RecommendPromoteTrain = "Promote and Train"
	RecommendPromote      = "Promote"
	RecommendTrain        = "Train"
	RecommendRelease      = "Release"
)

// Recommendation thresholds on the potential score.
const (
	promoteTrainThreshold = 70.0
	promoteThreshold      = 50.0
	trainThreshold        = 30.0
)

// Promotion value estimation factors.
const (
	valuePerTSI         = 10.0
	valueMultiplierHigh = 2.0
	valueMultiplierMid  = 1.5
	valueMultiplierBase = 1.0
)

// Analysis is the ranked assessment of one junior.
type Analysis struct {
	PlayerID       string              `json:"player_id"`
	Name           string              `json:"name"`
	Age            int                 `json:"age"`
	PotentialScore float64             `json:"potential_score"`
	BestPosition   model.Position      `json:"best_position"`
	Skills         map[model.Skill]int `json:"current_skills"`
	Recommendation string              `json:"recommendation"`
	PromotionValue float64             `json:"estimated_promotion_value"`
}

// Analyzer scores juniors. It leans on the insight scorer for best-
// position detection and on the training simulator for development
// projections; juniors often draw no salary, so the cost-benefit path
// is deliberately not used here.
type Analyzer struct {
	scorer    *insight.Scorer
	simulator *projection.Simulator
}

// New creates an Analyzer sharing the roster's insight scorer and
// training simulator.
func New(scorer *insight.Scorer, simulator *projection.Simulator) *Analyzer {
	return &Analyzer{scorer: scorer, simulator: simulator}
}

// Rank assesses every junior and returns them ordered by descending
// potential score. Invalid players land in the parallel error list.
func (a *Analyzer) Rank(juniors []*model.Player) ([]Analysis, []model.PlayerError) {
	analyses := make([]Analysis, 0, len(juniors))
	var failures []model.PlayerError
	for _, j := range juniors {
		if err := j.Validate(); err != nil {
			failures = append(failures, model.PlayerError{PlayerID: j.ID, Err: err})
			continue
		}
		score := potentialScore(j)
		analyses = append(analyses, Analysis{
			PlayerID:       j.ID,
			Name:           j.Name,
			Age:            j.Age,
			PotentialScore: score,
			BestPosition:   a.scorer.BestPosition(j),
			Skills:         j.Skills,
			Recommendation: recommendAction(score),
			PromotionValue: promotionValue(j, score),
		})
	}
	sort.SliceStable(analyses, func(i, j int) bool {
		if analyses[i].PotentialScore != analyses[j].PotentialScore {
			return analyses[i].PotentialScore > analyses[j].PotentialScore
		}
		return analyses[i].PlayerID < analyses[j].PlayerID
	})
	return analyses, failures
}

// Promotions returns the top promotion candidates, at most max entries.
// A non-positive max falls back to the default of 3.
func (a *Analyzer) Promotions(juniors []*model.Player, max int) ([]Analysis, []model.PlayerError) {
	if max <= 0 {
		max = defaultMaxPromotions
	}
	ranked, failures := a.Rank(juniors)
	candidates := make([]Analysis, 0, max)
	for _, analysis := range ranked {
		if analysis.Recommendation != RecommendPromote && analysis.Recommendation != RecommendPromoteTrain {
			continue
		}
		candidates = append(candidates, analysis)
		if len(candidates) == max {
			break
		}
	}
	return candidates, failures
}

// potentialScore blends age, best skill, TSI and form into 0-100.
// Younger is strictly better, which keeps this consistent with the
// growth model's age brackets.
func potentialScore(j *model.Player) float64 {
	score := 0.0
	switch {
	case j.Age < 17:
		score += ageScoreUnder17
	case j.Age < 18:
		score += ageScoreUnder18
	case j.Age < 19:
		score += ageScoreUnder19
	}

	maxSkill := 0
	for _, level := range j.Skills {
		if level > maxSkill {
			maxSkill = level
		}
	}
	skillScore := float64(maxSkill) * skillScorePerLevel
	if skillScore > skillScoreCap {
		skillScore = skillScoreCap
	}
	score += skillScore

	switch {
	case j.TSI > tsiHighThreshold:
		score += tsiScoreHigh
	case j.TSI > tsiMidThreshold:
		score += tsiScoreMid
	}

	score += float64(j.Form) * formScoreMultiplier
	if score > maxPotentialScore {
		score = maxPotentialScore
	}
	return score
}

func recommendAction(score float64) string {
	switch {
	case score >= promoteTrainThreshold:
		return RecommendPromoteTrain
	case score >= promoteThreshold:
		return RecommendPromote
	case score >= trainThreshold:
		return RecommendTrain
	default:
		return RecommendRelease
	}
}

func promotionValue(j *model.Player, score float64) float64 {
	base := j.TSI * valuePerTSI
	switch {
	case score > promoteTrainThreshold:
		return base * valueMultiplierHigh
	case score > promoteThreshold:
		return base * valueMultiplierMid
	default:
		return base * valueMultiplierBase
	}
}
