// Package model contains domain models passed between layers.
package model

import (
	"fmt"
)

// Sanity bounds for player validation.
const (
	MinAge  = 16
	MaxAge  = 45
	MinForm = 1
	MaxForm = 8
)

// Position is a closed enumeration of field positions.
type Position string

// Field positions.
const (
	PositionGK Position = "GK" // Goalkeeper
	PositionCD Position = "CD" // Central Defender
	PositionWB Position = "WB" // Wing Back
	PositionIM Position = "IM" // Inner Midfielder
	PositionWI Position = "WI" // Winger
	PositionFW Position = "FW" // Forward
)

// Positions lists every valid position in declaration order.
func Positions() []Position {
	return []Position{PositionGK, PositionCD, PositionWB, PositionIM, PositionWI, PositionFW}
}

// Valid reports whether p is a member of the closed enumeration.
func (p Position) Valid() bool {
	switch p {
	case PositionGK, PositionCD, PositionWB, PositionIM, PositionWI, PositionFW:
		return true
	default:
		return false
	}
}

// Skill is a closed enumeration of trainable skills.
type Skill string

// Trainable skills.
const (
	SkillGoalkeeping Skill = "goalkeeping"
	SkillDefending   Skill = "defending"
	SkillPlaymaking  Skill = "playmaking"
	SkillWinger      Skill = "winger"
	SkillPassing     Skill = "passing"
	SkillScoring     Skill = "scoring"
	SkillSetPieces   Skill = "setpieces"
)

// Skills lists every valid skill in declaration order.
func Skills() []Skill {
	return []Skill{
		SkillGoalkeeping,
		SkillDefending,
		SkillPlaymaking,
		SkillWinger,
		SkillPassing,
		SkillScoring,
		SkillSetPieces,
	}
}

// Valid reports whether s is a member of the closed enumeration.
func (s Skill) Valid() bool {
	switch s {
	case SkillGoalkeeping, SkillDefending, SkillPlaymaking, SkillWinger,
		SkillPassing, SkillScoring, SkillSetPieces:
		return true
	default:
		return false
	}
}

// Player is an immutable roster snapshot handed to the engine.
// The engine never mutates or retains a Player across invocations.
type Player struct {
	ID       string
	Name     string
	Age      int
	Position Position
	// Skills maps each skill to its current integer level (>= 0).
	// Skills referenced by the engine but absent here default to 0
	// and surface as a data-quality warning, never a fatal error.
	Skills map[Skill]int
	// SkillProgress carries fractional sub-level progress per skill in
	// [0,1). It seeds simulation state and drives the near-skillup
	// filter. Missing entries default to 0.
	SkillProgress map[Skill]float64
	Salary        float64
	TSI           float64
	Form          int
	Stamina       int
	Experience    int
	Leadership    int
}

// SkillLevel returns the player's level for skill, defaulting to 0.
func (p *Player) SkillLevel(skill Skill) int {
	return p.Skills[skill]
}

// Progress returns the fractional sub-level progress for skill in [0,1).
func (p *Player) Progress(skill Skill) float64 {
	v := p.SkillProgress[skill]
	if v < 0 || v >= 1 {
		return 0
	}
	return v
}

// Validate checks the player snapshot against the sanity ranges.
// Violations return ErrInvalidPlayerData; the caller decides whether to
// exclude the player or fail the run.
func (p *Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty player id", ErrInvalidPlayerData)
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: player %s age %d outside %d-%d", ErrInvalidPlayerData, p.ID, p.Age, MinAge, MaxAge)
	}
	if !p.Position.Valid() {
		return fmt.Errorf("%w: player %s unknown position %q", ErrInvalidPlayerData, p.ID, p.Position)
	}
	if p.Salary < 0 {
		return fmt.Errorf("%w: player %s negative salary %.2f", ErrInvalidPlayerData, p.ID, p.Salary)
	}
	if p.TSI < 0 {
		return fmt.Errorf("%w: player %s negative tsi %.2f", ErrInvalidPlayerData, p.ID, p.TSI)
	}
	if p.Form < MinForm || p.Form > MaxForm {
		return fmt.Errorf("%w: player %s form %d outside %d-%d", ErrInvalidPlayerData, p.ID, p.Form, MinForm, MaxForm)
	}
	if p.Stamina < 0 {
		return fmt.Errorf("%w: player %s negative stamina %d", ErrInvalidPlayerData, p.ID, p.Stamina)
	}
	for skill, level := range p.Skills {
		if !skill.Valid() {
			return fmt.Errorf("%w: player %s unknown skill %q", ErrInvalidPlayerData, p.ID, skill)
		}
		if level < 0 {
			return fmt.Errorf("%w: player %s skill %s level %d below 0", ErrInvalidPlayerData, p.ID, skill, level)
		}
	}
	return nil
}

// MissingSkills returns the engine-referenced skills absent from the
// player's skill map, for data-quality warnings.
func (p *Player) MissingSkills() []Skill {
	var missing []Skill
	for _, skill := range Skills() {
		if _, ok := p.Skills[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	return missing
}
