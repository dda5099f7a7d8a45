package insight

import (
	"github.com/okian/scouty/internal/domain/model"
)

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithProfiles replaces the per-position role profiles. Each profile's
// weights should sum to 1.
func WithProfiles(profiles map[model.Position]map[model.Skill]float64) Option {
	return func(s *Scorer) {
		if len(profiles) == 0 {
			return
		}
		copied := make(map[model.Position]map[model.Skill]float64, len(profiles))
		for pos, profile := range profiles {
			copied[pos] = make(map[model.Skill]float64, len(profile))
			for skill, w := range profile {
				copied[pos][skill] = w
			}
		}
		s.profiles = copied
	}
}

// WithCeilings replaces the per-position potential ceilings.
func WithCeilings(ceilings map[model.Position]float64) Option {
	return func(s *Scorer) {
		if len(ceilings) == 0 {
			return
		}
		copied := make(map[model.Position]float64, len(ceilings))
		for pos, c := range ceilings {
			copied[pos] = c
		}
		s.ceilings = copied
	}
}

// WithWeights replaces the composite blend. Validation happens at
// scoring time so a bad blend surfaces as ErrInvalidWeights on the call.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		s.weights = w
	}
}
