package projection

// SalaryModel maps a projected TSI delta to a weekly salary delta.
// Must be monotonic in deltaTSI.
type SalaryModel func(deltaTSI float64) float64

// ValueModel maps a projected TSI delta to a market-value delta.
// Must be monotonic in deltaTSI.
type ValueModel func(deltaTSI float64) float64

// Default linear factors. The real in-game formulas are unpublished and
// drift between seasons, so these are deliberately rough and replaceable.
const (
	defaultSalaryPerTSI  = 0.05
	defaultValuePerTSI   = 0.10
	defaultTSIPerSkillUp = 0.15 // fraction of current TSI gained per skill-up
)

// DefaultSalaryModel is the built-in linear salary estimate.
func DefaultSalaryModel(deltaTSI float64) float64 {
	return deltaTSI * defaultSalaryPerTSI
}

// DefaultValueModel is the built-in linear market-value estimate.
func DefaultValueModel(deltaTSI float64) float64 {
	return deltaTSI * defaultValuePerTSI
}
