package growth

import (
	"github.com/okian/scouty/internal/domain/model"
)

// Option applies a configuration option to the Model.
type Option func(*Model)

// WithAgeBrackets replaces the age factor table. Brackets must be
// ordered by ascending MaxAge.
func WithAgeBrackets(brackets []AgeBracket) Option {
	return func(m *Model) {
		if len(brackets) > 0 {
			m.ageBrackets = append([]AgeBracket(nil), brackets...)
		}
	}
}

// WithAffinity replaces the (position, training type) multiplier table.
func WithAffinity(affinity map[model.Position]map[model.TrainingType]float64) Option {
	return func(m *Model) {
		if len(affinity) == 0 {
			return
		}
		copied := make(map[model.Position]map[model.TrainingType]float64, len(affinity))
		for pos, row := range affinity {
			copied[pos] = make(map[model.TrainingType]float64, len(row))
			for t, f := range row {
				copied[pos][t] = f
			}
		}
		m.affinity = copied
	}
}

// WithBaseRates replaces the per-skill base weekly rates.
func WithBaseRates(rates map[model.Skill]float64) Option {
	return func(m *Model) {
		if len(rates) == 0 {
			return
		}
		copied := make(map[model.Skill]float64, len(rates))
		for skill, r := range rates {
			copied[skill] = r
		}
		m.baseRates = copied
	}
}

// WithFormScale sets the linear form factor: intercept at form 1,
// intercept+7*slope at form 8.
func WithFormScale(intercept, slope float64) Option {
	return func(m *Model) {
		if intercept > 0 {
			m.formIntercept = intercept
			m.formSlope = slope
		}
	}
}

// WithStaminaScale sets the linear stamina factor and its cap.
func WithStaminaScale(intercept, slope, cap float64) Option {
	return func(m *Model) {
		if intercept > 0 && cap > 0 {
			m.staminaIntercept = intercept
			m.staminaSlope = slope
			m.staminaCap = cap
		}
	}
}
