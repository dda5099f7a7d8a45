// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Numeric tables live here, never hard-wired in engine logic, so they
//   can be tuned or swapped in tests without touching engine code.
// - Provide New() to build a Config with defaults; Load layers an
//   optional file and env vars on top.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// AgeBracket is one row of the age factor table. MaxAge is inclusive;
// rows must be ordered by ascending MaxAge.
type AgeBracket struct {
	MaxAge int     `koanf:"max_age"`
	Factor float64 `koanf:"factor"`
}

// Weights configures the composite insight blend. Must sum to 1.
type Weights struct {
	RoleFit     float64 `koanf:"role_fit"`
	Potential   float64 `koanf:"potential"`
	CostBenefit float64 `koanf:"cost_benefit"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// WorkerCount bounds the parallel per-player evaluation fan-out.
	WorkerCount int `koanf:"worker_count"`

	// DefaultWeeks is the projection horizon when the caller gives none.
	DefaultWeeks int `koanf:"default_weeks"`

	// DefaultTraining is the training type when the caller gives none.
	DefaultTraining string `koanf:"default_training"`

	// NearSkillupThreshold is the week-0 progress a (player, skill)
	// must exceed to appear on the near-skillup list.
	NearSkillupThreshold float64 `koanf:"near_skillup_threshold"`

	// AgeBrackets is the shared growth/potential age factor table.
	AgeBrackets []AgeBracket `koanf:"age_brackets"`

	// BaseRates maps skill names to their base weekly gain rate.
	BaseRates map[string]float64 `koanf:"base_rates"`

	// PositionAffinity maps position -> training type -> multiplier in
	// [0,1]. A missing entry means the training does not reach that
	// position.
	PositionAffinity map[string]map[string]float64 `koanf:"position_affinity"`

	// RoleProfiles maps position -> skill -> role-fit weight in [0,1].
	RoleProfiles map[string]map[string]float64 `koanf:"role_profiles"`

	// Form factor scale: intercept at form 1, +slope per form step.
	FormIntercept float64 `koanf:"form_intercept"`
	FormSlope     float64 `koanf:"form_slope"`

	// Stamina factor scale, capped at StaminaCap.
	StaminaIntercept float64 `koanf:"stamina_intercept"`
	StaminaSlope     float64 `koanf:"stamina_slope"`
	StaminaCap       float64 `koanf:"stamina_cap"`

	// TSIPerSkillUp is the fraction of current TSI gained per skill-up.
	TSIPerSkillUp float64 `koanf:"tsi_per_skillup"`

	// SalaryPerTSI and ValuePerTSI scale the linear financial models.
	SalaryPerTSI float64 `koanf:"salary_per_tsi"`
	ValuePerTSI  float64 `koanf:"value_per_tsi"`

	// CompositeWeights blends role-fit/potential/cost-benefit.
	CompositeWeights Weights `koanf:"composite_weights"`

	// MaxPromotions caps the junior promotion shortlist.
	MaxPromotions int `koanf:"max_promotions"`
}

// New creates a Config with the default tables.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		WorkerCount:          runtime.NumCPU() * 2,
		DefaultWeeks:         4,
		DefaultTraining:      "Playmaking",
		NearSkillupThreshold: 0.8,
		AgeBrackets: []AgeBracket{
			{MaxAge: 20, Factor: 1.0},
			{MaxAge: 25, Factor: 0.75},
			{MaxAge: 30, Factor: 0.35},
			{MaxAge: 45, Factor: 0.1},
		},
		BaseRates: map[string]float64{
			"goalkeeping": 0.3,
			"defending":   0.3,
			"playmaking":  0.3,
			"winger":      0.3,
			"passing":     0.3,
			"scoring":     0.3,
			"setpieces":   0.3,
		},
		PositionAffinity: map[string]map[string]float64{
			"GK": {"Goalkeeping": 1.0, "SetPieces": 0.5},
			"CD": {"Defending": 1.0, "Playmaking": 0.4, "Passing": 0.3, "SetPieces": 0.3},
			"WB": {"Defending": 0.7, "Winger": 0.8, "Playmaking": 0.3, "Passing": 0.3, "SetPieces": 0.3},
			"IM": {"Playmaking": 1.0, "Passing": 0.6, "Defending": 0.4, "Scoring": 0.3, "SetPieces": 0.3},
			"WI": {"Winger": 1.0, "Passing": 0.5, "Playmaking": 0.4, "Scoring": 0.3, "SetPieces": 0.3},
			"FW": {"Scoring": 1.0, "Winger": 0.4, "Passing": 0.4, "SetPieces": 0.3},
		},
		RoleProfiles: map[string]map[string]float64{
			"GK": {"goalkeeping": 0.85, "setpieces": 0.10, "defending": 0.05},
			"CD": {"defending": 0.70, "playmaking": 0.15, "passing": 0.10, "setpieces": 0.05},
			"WB": {"defending": 0.45, "winger": 0.35, "passing": 0.10, "playmaking": 0.10},
			"IM": {"playmaking": 0.60, "passing": 0.20, "defending": 0.10, "scoring": 0.10},
			"WI": {"winger": 0.55, "passing": 0.20, "playmaking": 0.15, "scoring": 0.10},
			"FW": {"scoring": 0.65, "winger": 0.15, "passing": 0.15, "setpieces": 0.05},
		},
		FormIntercept:    0.6,
		FormSlope:        0.1,
		StaminaIntercept: 0.8,
		StaminaSlope:     0.04,
		StaminaCap:       1.2,
		TSIPerSkillUp:    0.15,
		SalaryPerTSI:     0.05,
		ValuePerTSI:      0.10,
		CompositeWeights: Weights{RoleFit: 0.4, Potential: 0.35, CostBenefit: 0.25},
		MaxPromotions:    3,
	}
}
