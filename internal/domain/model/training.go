package model

import "fmt"

// TrainingType is a closed enumeration of weekly training categories.
type TrainingType string

// Training categories. Each advances exactly one primary skill.
const (
	TrainingGoalkeeping TrainingType = "Goalkeeping"
	TrainingDefending   TrainingType = "Defending"
	TrainingPlaymaking  TrainingType = "Playmaking"
	TrainingWinger      TrainingType = "Winger"
	TrainingPassing     TrainingType = "Passing"
	TrainingScoring     TrainingType = "Scoring"
	TrainingSetPieces   TrainingType = "SetPieces"
)

// TrainingTypes lists every valid training type in declaration order.
func TrainingTypes() []TrainingType {
	return []TrainingType{
		TrainingGoalkeeping,
		TrainingDefending,
		TrainingPlaymaking,
		TrainingWinger,
		TrainingPassing,
		TrainingScoring,
		TrainingSetPieces,
	}
}

// Valid reports whether t is a member of the closed enumeration.
func (t TrainingType) Valid() bool {
	_, ok := primarySkills[t]
	return ok
}

// primarySkills maps each training type to the skill it advances.
var primarySkills = map[TrainingType]Skill{
	TrainingGoalkeeping: SkillGoalkeeping,
	TrainingDefending:   SkillDefending,
	TrainingPlaymaking:  SkillPlaymaking,
	TrainingWinger:      SkillWinger,
	TrainingPassing:     SkillPassing,
	TrainingScoring:     SkillScoring,
	TrainingSetPieces:   SkillSetPieces,
}

// PrimarySkill returns the skill advanced by this training type.
func (t TrainingType) PrimarySkill() (Skill, error) {
	skill, ok := primarySkills[t]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidTrainingType, t)
	}
	return skill, nil
}

// DefaultIntensity is applied when a TrainingConfig omits intensity.
const DefaultIntensity = 1.0

// TrainingConfig describes one projection request. Immutable once built.
type TrainingConfig struct {
	Type      TrainingType
	Weeks     int
	Intensity float64
}

// NewTrainingConfig builds a validated config. A zero intensity is
// replaced with DefaultIntensity.
func NewTrainingConfig(t TrainingType, weeks int, intensity float64) (TrainingConfig, error) {
	if !t.Valid() {
		return TrainingConfig{}, fmt.Errorf("%w: %q", ErrInvalidTrainingType, t)
	}
	if weeks <= 0 {
		return TrainingConfig{}, fmt.Errorf("%w: weeks must be positive, got %d", ErrInvalidPlayerData, weeks)
	}
	if intensity == 0 {
		intensity = DefaultIntensity
	}
	if intensity < 0 {
		return TrainingConfig{}, fmt.Errorf("%w: intensity must be non-negative, got %.2f", ErrInvalidPlayerData, intensity)
	}
	return TrainingConfig{Type: t, Weeks: weeks, Intensity: intensity}, nil
}
