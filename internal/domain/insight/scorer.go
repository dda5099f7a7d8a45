// Package insight computes role-fit, potential, and cost-benefit scores
// from a roster snapshot. No time dimension; pure functions of current
// attributes.
package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/scouty/internal/domain/growth"
	"github.com/okian/scouty/internal/domain/model"
)

// Score scale and normalization constants.
const (
	maxScore = 100.0
	// idealSkillLevel anchors role-fit: a player matching the position
	// profile at this level scores 100.
	idealSkillLevel = 20.0
	// medianScore is the cost-benefit score of a player sitting exactly
	// on the roster median.
	medianScore = 50.0

	weightsEpsilon = 1e-9
)

// Weights blends the three component scores into the composite.
// The three fields must sum to 1.
type Weights struct {
	RoleFit     float64 `koanf:"role_fit"`
	Potential   float64 `koanf:"potential"`
	CostBenefit float64 `koanf:"cost_benefit"`
}

// Validate returns ErrInvalidWeights unless the weights sum to 1.
func (w Weights) Validate() error {
	sum := w.RoleFit + w.Potential + w.CostBenefit
	if math.Abs(sum-1.0) > weightsEpsilon {
		return fmt.Errorf("%w: sum %.4f, want 1.0", model.ErrInvalidWeights, sum)
	}
	if w.RoleFit < 0 || w.Potential < 0 || w.CostBenefit < 0 {
		return fmt.Errorf("%w: negative component", model.ErrInvalidWeights)
	}
	return nil
}

// DefaultWeights is the built-in composite blend.
var DefaultWeights = Weights{RoleFit: 0.4, Potential: 0.35, CostBenefit: 0.25}

// Score is the full insight result for one player.
type Score struct {
	PlayerID     string         `json:"player_id"`
	Name         string         `json:"name"`
	Age          int            `json:"age"`
	Position     model.Position `json:"position"`
	BestPosition model.Position `json:"best_position"`
	RoleFit      float64        `json:"role_fit"`
	Potential    float64        `json:"potential"`
	CostBenefit  float64        `json:"cost_benefit"`
	Composite    float64        `json:"composite"`
	// Recommendation is a keep/train/sell verdict derived from age,
	// cost-benefit and potential.
	Recommendation string `json:"recommendation"`
}

// Keep/train/sell verdicts.
const (
	RecommendKeep  = "Keep"
	RecommendTrain = "Train"
	RecommendSell  = "Sell"
)

// Scorer computes insight scores against configurable role profiles.
// The age-decay table is shared with the growth model so a player
// flagged high-potential also shows a high weekly rate.
type Scorer struct {
	growth   *growth.Model
	profiles map[model.Position]map[model.Skill]float64
	ceilings map[model.Position]float64
	weights  Weights
}

// New creates a Scorer around the shared growth model.
func New(g *growth.Model, opts ...Option) *Scorer {
	s := &Scorer{
		growth:   g,
		profiles: defaultProfiles(),
		ceilings: defaultCeilings(),
		weights:  DefaultWeights,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score computes the insight score for one player. rosterMedian is the
// roster's median TSI/salary ratio; pass 0 when scoring a player in
// isolation, which pins cost-benefit at the median score.
func (s *Scorer) Score(p *model.Player, rosterMedian float64) (Score, error) {
	if err := s.weights.Validate(); err != nil {
		return Score{}, err
	}
	if err := p.Validate(); err != nil {
		return Score{}, err
	}
	if p.Salary <= 0 {
		return Score{}, fmt.Errorf("%w: player %s salary %.2f, cost-benefit undefined", model.ErrInvalidPlayerData, p.ID, p.Salary)
	}

	roleFit := s.roleFit(p, p.Position)
	potential := s.potential(p)
	costBenefit := s.costBenefit(p, rosterMedian)

	score := Score{
		PlayerID:     p.ID,
		Name:         p.Name,
		Age:          p.Age,
		Position:     p.Position,
		BestPosition: s.BestPosition(p),
		RoleFit:      roleFit,
		Potential:    potential,
		CostBenefit:  costBenefit,
		Composite:    s.weights.RoleFit*roleFit + s.weights.Potential*potential + s.weights.CostBenefit*costBenefit,
	}
	score.Recommendation = recommend(p, costBenefit, potential)
	return score, nil
}

// ScoreRoster scores every player against the roster's own median
// cost-benefit ratio. Invalid players are excluded and reported in the
// parallel error list; they never abort the batch.
func (s *Scorer) ScoreRoster(players []*model.Player) ([]Score, []model.PlayerError) {
	median := MedianCostRatio(players)

	scores := make([]Score, 0, len(players))
	var failures []model.PlayerError
	for _, p := range players {
		score, err := s.Score(p, median)
		if err != nil {
			failures = append(failures, model.PlayerError{PlayerID: p.ID, Err: err})
			continue
		}
		scores = append(scores, score)
	}
	return scores, failures
}

// MedianCostRatio returns the median TSI/salary ratio over players with
// a positive salary, or 0 for an empty roster.
func MedianCostRatio(players []*model.Player) float64 {
	ratios := make([]float64, 0, len(players))
	for _, p := range players {
		if p.Salary > 0 {
			ratios = append(ratios, p.TSI/p.Salary)
		}
	}
	if len(ratios) == 0 {
		return 0
	}
	sort.Float64s(ratios)
	mid := len(ratios) / 2
	if len(ratios)%2 == 1 {
		return ratios[mid]
	}
	return (ratios[mid-1] + ratios[mid]) / 2
}

// roleFit is the dot product of the skill vector against the position
// profile, scaled so a profile-perfect player at the ideal level hits 100.
func (s *Scorer) roleFit(p *model.Player, pos model.Position) float64 {
	profile, ok := s.profiles[pos]
	if !ok {
		return 0
	}
	weighted := 0.0
	for skill, weight := range profile {
		weighted += float64(p.SkillLevel(skill)) * weight
	}
	return clampScore(weighted / idealSkillLevel * maxScore)
}

// potential is the position ceiling decayed by the shared age table.
func (s *Scorer) potential(p *model.Player) float64 {
	ceiling, ok := s.ceilings[p.Position]
	if !ok {
		ceiling = maxScore
	}
	return clampScore(ceiling * s.growth.AgeFactor(p.Age))
}

// costBenefit normalizes TSI/salary against the roster median: a player
// on the median scores 50, twice the median scores 100.
func (s *Scorer) costBenefit(p *model.Player, rosterMedian float64) float64 {
	ratio := p.TSI / p.Salary
	if rosterMedian <= 0 {
		return medianScore
	}
	return clampScore(medianScore * ratio / rosterMedian)
}

// BestPosition returns the position whose profile the player fits best.
// Exported for the junior analyzer, which ranks players that may not
// yet draw a salary.
func (s *Scorer) BestPosition(p *model.Player) model.Position {
	best := p.Position
	bestFit := -1.0
	for _, pos := range model.Positions() {
		fit := s.roleFit(p, pos)
		if fit > bestFit {
			best = pos
			bestFit = fit
		}
	}
	return best
}

// Recommendation thresholds on the 0-100 scales.
const (
	sellVeteranCostBenefit = 40.0
	trainPotential         = 70.0
	trainMaxAge            = 22
	keepCostBenefit        = 70.0
	lowPotential           = 35.0
	lowCostBenefit         = 50.0
	veteranAge             = 30
)

func recommend(p *model.Player, costBenefit, potential float64) string {
	switch {
	case p.Age > veteranAge && costBenefit < sellVeteranCostBenefit:
		return RecommendSell
	case potential >= trainPotential && p.Age < trainMaxAge:
		return RecommendTrain
	case costBenefit > keepCostBenefit:
		return RecommendKeep
	case potential < lowPotential && costBenefit < lowCostBenefit:
		return RecommendSell
	default:
		return RecommendKeep
	}
}

func clampScore(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}
