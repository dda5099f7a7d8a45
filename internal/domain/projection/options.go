package projection

// Option applies a configuration option to the Simulator.
type Option func(*Simulator)

// WithSalaryModel replaces the salary estimate.
func WithSalaryModel(m SalaryModel) Option {
	return func(s *Simulator) {
		if m != nil {
			s.salaryModel = m
		}
	}
}

// WithValueModel replaces the market-value estimate.
func WithValueModel(m ValueModel) Option {
	return func(s *Simulator) {
		if m != nil {
			s.valueModel = m
		}
	}
}

// WithTSIPerSkillUp sets the fraction of current TSI a player gains per
// skill-up.
func WithTSIPerSkillUp(fraction float64) Option {
	return func(s *Simulator) {
		if fraction > 0 {
			s.tsiPerSkillUp = fraction
		}
	}
}
