// Package projection advances a player's fractional skill state week by
// week, detects skill-up threshold crossings, and derives the financial
// return of a training plan.
package projection

import (
	"fmt"

	"github.com/okian/scouty/internal/domain/growth"
	"github.com/okian/scouty/internal/domain/model"
)

// SkillState is one (level, progress) pair. Level is the last crossed
// integer threshold; Progress accumulates in [0,1) toward the next one.
type SkillState struct {
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`
}

// Week is the per-skill state at one week boundary.
type Week struct {
	// Index is 1-based: Week 1 is the state after the first training week.
	Index  int                        `json:"week"`
	Skills map[model.Skill]SkillState `json:"skills"`
}

// Result is the full projection for one player under one config.
type Result struct {
	PlayerID string               `json:"player_id"`
	Name     string               `json:"name"`
	Training model.TrainingConfig `json:"-"`

	// Trajectory holds one snapshot per simulated week, in order.
	Trajectory []Week `json:"trajectory"`

	// SkillUps counts threshold crossings per skill over the horizon.
	SkillUps map[model.Skill]int `json:"skill_ups"`

	// WeeksToNextSkillUp holds the 1-based week of the first crossing
	// per skill, nil if none fires within the horizon.
	WeeksToNextSkillUp map[model.Skill]*int `json:"weeks_to_next_skillup"`

	SalaryDelta float64 `json:"projected_salary_delta"`
	ValueDelta  float64 `json:"projected_value_delta"`
	ROI         float64 `json:"roi"`

	// start records the state the player walked in with, so gain
	// metrics measure what the training earned.
	start map[model.Skill]SkillState
}

// TotalSkillUps sums threshold crossings across all skills.
func (r *Result) TotalSkillUps() int {
	total := 0
	for _, n := range r.SkillUps {
		total += n
	}
	return total
}

// TotalSkillGain sums (level delta + progress delta) across skills,
// i.e. the fractional ground the training actually covered. Default
// comparison metric.
func (r *Result) TotalSkillGain() float64 {
	if len(r.Trajectory) == 0 {
		return 0
	}
	gain := 0.0
	final := r.Trajectory[len(r.Trajectory)-1]
	for skill, state := range final.Skills {
		start := r.start[skill]
		gain += float64(state.Level-start.Level) + state.Progress - start.Progress
	}
	return gain
}

// Simulator runs deterministic week-by-week projections. Stateless
// across calls; safe to reuse and to share between goroutines.
type Simulator struct {
	growth        *growth.Model
	salaryModel   SalaryModel
	valueModel    ValueModel
	tsiPerSkillUp float64
}

// New creates a Simulator around a growth model. Financial models
// default to the linear estimates; override them via options since
// in-game formulas change over time.
func New(g *growth.Model, opts ...Option) *Simulator {
	s := &Simulator{
		growth:        g,
		salaryModel:   DefaultSalaryModel,
		valueModel:    DefaultValueModel,
		tsiPerSkillUp: defaultTSIPerSkillUp,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Simulate projects the player over cfg.Weeks training weeks. The run
// reads the player snapshot and leaves no residue; re-simulating the
// same player with another config starts from the same state.
func (s *Simulator) Simulate(p *model.Player, cfg model.TrainingConfig) (*Result, error) {
	if !cfg.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidTrainingType, cfg.Type)
	}
	if cfg.Weeks <= 0 {
		return nil, fmt.Errorf("%w: weeks must be positive, got %d", model.ErrInvalidPlayerData, cfg.Weeks)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	skills := model.Skills()

	// Weekly rates are constant over the horizon: form and stamina are
	// part of the immutable snapshot, not simulated state.
	rates := make(map[model.Skill]float64, len(skills))
	for _, skill := range skills {
		rate, err := s.growth.WeeklyRate(p, skill, cfg)
		if err != nil {
			return nil, err
		}
		rates[skill] = rate
	}

	states := make(map[model.Skill]*SkillState, len(skills))
	start := make(map[model.Skill]SkillState, len(skills))
	for _, skill := range skills {
		st := SkillState{
			Level:    p.SkillLevel(skill),
			Progress: p.Progress(skill),
		}
		start[skill] = st
		states[skill] = &SkillState{Level: st.Level, Progress: st.Progress}
	}

	result := &Result{
		PlayerID:           p.ID,
		Name:               p.Name,
		Training:           cfg,
		Trajectory:         make([]Week, 0, cfg.Weeks),
		SkillUps:           make(map[model.Skill]int, len(skills)),
		WeeksToNextSkillUp: make(map[model.Skill]*int, len(skills)),
		start:              start,
	}
	for _, skill := range skills {
		result.SkillUps[skill] = 0
		result.WeeksToNextSkillUp[skill] = nil
	}

	for week := 1; week <= cfg.Weeks; week++ {
		snapshot := make(map[model.Skill]SkillState, len(skills))
		for _, skill := range skills {
			st := states[skill]
			st.Progress += rates[skill]
			if st.Progress >= 1.0 {
				// Carry the remainder forward; a skill-up does not
				// forfeit earned progress.
				st.Level++
				st.Progress -= 1.0
				result.SkillUps[skill]++
				if result.WeeksToNextSkillUp[skill] == nil {
					w := week
					result.WeeksToNextSkillUp[skill] = &w
				}
			}
			snapshot[skill] = *st
		}
		result.Trajectory = append(result.Trajectory, Week{Index: week, Skills: snapshot})
	}

	deltaTSI := p.TSI * s.tsiPerSkillUp * float64(result.TotalSkillUps())
	result.SalaryDelta = s.salaryModel(deltaTSI)
	result.ValueDelta = s.valueModel(deltaTSI)
	result.ROI = result.ValueDelta / maxFloat(result.SalaryDelta, roiEpsilon)

	return result, nil
}

// roiEpsilon guards the ROI denominator when no salary change is projected.
const roiEpsilon = 1e-9

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// NearSkillupEntry is one (player, skill) pair whose week-0 progress
// already exceeds the proximity threshold. No simulation involved.
type NearSkillupEntry struct {
	PlayerID string      `json:"player_id"`
	Name     string      `json:"name"`
	Skill    model.Skill `json:"skill"`
	Level    int         `json:"level"`
	Progress float64     `json:"progress"`
}

// DefaultNearSkillupThreshold is used when the caller passes a
// non-positive threshold.
const DefaultNearSkillupThreshold = 0.8

// NearSkillups filters players whose recorded sub-level progress for
// any skill exceeds threshold, sorted by descending progress.
func NearSkillups(players []*model.Player, threshold float64) []NearSkillupEntry {
	if threshold <= 0 {
		threshold = DefaultNearSkillupThreshold
	}
	var entries []NearSkillupEntry
	for _, p := range players {
		for _, skill := range model.Skills() {
			progress := p.Progress(skill)
			if progress > threshold {
				entries = append(entries, NearSkillupEntry{
					PlayerID: p.ID,
					Name:     p.Name,
					Skill:    skill,
					Level:    p.SkillLevel(skill),
					Progress: progress,
				})
			}
		}
	}
	sortNearSkillups(entries)
	return entries
}
