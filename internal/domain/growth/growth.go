// Package growth maps a player's attributes and a training choice to a
// weekly fractional skill-gain rate.
package growth

import (
	"fmt"

	"github.com/okian/scouty/internal/domain/model"
)

// Rate clamp bound. Keeping the weekly rate strictly below 1 guarantees
// the simulator crosses at most one threshold per week.
const maxWeeklyRate = 0.99

// AgeBracket maps an inclusive upper age bound to a growth multiplier.
// Brackets must be ordered by ascending MaxAge; the last bracket covers
// every remaining age.
type AgeBracket struct {
	MaxAge int
	Factor float64
}

// Model computes weekly rates from configurable tables. The zero value
// is not usable; construct with New.
type Model struct {
	ageBrackets []AgeBracket
	affinity    map[model.Position]map[model.TrainingType]float64
	baseRates   map[model.Skill]float64

	// Form scale: factor = formIntercept + formSlope*(form-1).
	formIntercept float64
	formSlope     float64

	// Stamina scale: factor = staminaIntercept + staminaSlope*stamina,
	// capped at staminaCap.
	staminaIntercept float64
	staminaSlope     float64
	staminaCap       float64
}

// New creates a growth model with the default tables, overridable via
// options so tests can inject synthetic deterministic tables.
func New(opts ...Option) *Model {
	m := &Model{
		ageBrackets:      defaultAgeBrackets(),
		affinity:         defaultAffinity(),
		baseRates:        defaultBaseRates(),
		formIntercept:    0.6,
		formSlope:        0.1,
		staminaIntercept: 0.8,
		staminaSlope:     0.04,
		staminaCap:       1.2,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WeeklyRate returns the fractional gain per week for the given skill
// under the given training, in [0, 0.99]. Pure function of its inputs.
func (m *Model) WeeklyRate(p *model.Player, skill model.Skill, cfg model.TrainingConfig) (float64, error) {
	primary, err := cfg.Type.PrimarySkill()
	if err != nil {
		return 0, err
	}
	if skill != primary {
		return 0, nil
	}

	base, ok := m.baseRates[skill]
	if !ok {
		return 0, fmt.Errorf("%w: no base rate for %q", model.ErrMissingSkill, skill)
	}

	rate := base *
		m.AgeFactor(p.Age) *
		m.positionAffinity(p.Position, cfg.Type) *
		m.formFactor(p.Form) *
		m.staminaFactor(p.Stamina) *
		cfg.Intensity

	return clamp(rate, 0, maxWeeklyRate), nil
}

// AgeFactor returns the growth multiplier for an age. Shared with the
// insight scorer's age decay so potential and projected growth agree.
func (m *Model) AgeFactor(age int) float64 {
	for _, b := range m.ageBrackets {
		if age <= b.MaxAge {
			return b.Factor
		}
	}
	if len(m.ageBrackets) == 0 {
		return 0
	}
	return m.ageBrackets[len(m.ageBrackets)-1].Factor
}

func (m *Model) positionAffinity(pos model.Position, t model.TrainingType) float64 {
	row, ok := m.affinity[pos]
	if !ok {
		return 0
	}
	return row[t]
}

func (m *Model) formFactor(form int) float64 {
	if form < model.MinForm {
		form = model.MinForm
	}
	if form > model.MaxForm {
		form = model.MaxForm
	}
	return m.formIntercept + m.formSlope*float64(form-model.MinForm)
}

func (m *Model) staminaFactor(stamina int) float64 {
	if stamina < 0 {
		stamina = 0
	}
	f := m.staminaIntercept + m.staminaSlope*float64(stamina)
	if f > m.staminaCap {
		return m.staminaCap
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// defaultAgeBrackets: peak growth through 20, steep decline after 30.
func defaultAgeBrackets() []AgeBracket {
	return []AgeBracket{
		{MaxAge: 20, Factor: 1.0},
		{MaxAge: 25, Factor: 0.75},
		{MaxAge: 30, Factor: 0.35},
		{MaxAge: model.MaxAge, Factor: 0.1},
	}
}

// defaultBaseRates give every skill the same weekly base gain.
func defaultBaseRates() map[model.Skill]float64 {
	rates := make(map[model.Skill]float64, len(model.Skills()))
	for _, skill := range model.Skills() {
		rates[skill] = 0.3
	}
	return rates
}

// defaultAffinity maps (position, training type) to a multiplier in
// [0,1]. A zero entry means the training does not reach that position
// at all, e.g. goalkeeping drills for a forward.
func defaultAffinity() map[model.Position]map[model.TrainingType]float64 {
	return map[model.Position]map[model.TrainingType]float64{
		model.PositionGK: {
			model.TrainingGoalkeeping: 1.0,
			model.TrainingSetPieces:   0.5,
		},
		model.PositionCD: {
			model.TrainingDefending:  1.0,
			model.TrainingPlaymaking: 0.4,
			model.TrainingPassing:    0.3,
			model.TrainingSetPieces:  0.3,
		},
		model.PositionWB: {
			model.TrainingDefending:  0.7,
			model.TrainingWinger:     0.8,
			model.TrainingPlaymaking: 0.3,
			model.TrainingPassing:    0.3,
			model.TrainingSetPieces:  0.3,
		},
		model.PositionIM: {
			model.TrainingPlaymaking: 1.0,
			model.TrainingPassing:    0.6,
			model.TrainingDefending:  0.4,
			model.TrainingScoring:    0.3,
			model.TrainingSetPieces:  0.3,
		},
		model.PositionWI: {
			model.TrainingWinger:     1.0,
			model.TrainingPassing:    0.5,
			model.TrainingPlaymaking: 0.4,
			model.TrainingScoring:    0.3,
			model.TrainingSetPieces:  0.3,
		},
		model.PositionFW: {
			model.TrainingScoring:   1.0,
			model.TrainingWinger:    0.4,
			model.TrainingPassing:   0.4,
			model.TrainingSetPieces: 0.3,
		},
	}
}
