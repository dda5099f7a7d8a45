package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/scouty/internal/domain/model"
)

// playerRecord is the JSON wire shape of one roster entry.
type playerRecord struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Age        int                `json:"age"`
	Position   string             `json:"position"`
	Skills     map[string]int     `json:"skills"`
	Progress   map[string]float64 `json:"progress"`
	Salary     float64            `json:"salary"`
	TSI        float64            `json:"tsi"`
	Form       int                `json:"form"`
	Stamina    int                `json:"stamina"`
	Experience int                `json:"experience"`
	Leadership int                `json:"leadership"`
}

// PlayersJSON reads a roster as a JSON array of player objects.
// Individually invalid entries land in Failures; the batch survives.
func PlayersJSON(r io.Reader) (*Roster, error) {
	var records []playerRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding roster: %w", ErrParse, err)
	}

	roster := &Roster{}
	seen := make(map[string]bool)
	for i, rec := range records {
		player := rec.toPlayer()
		if err := player.Validate(); err != nil {
			roster.Failures = append(roster.Failures, RowError{Row: i + 1, Err: err})
			continue
		}
		if seen[player.ID] {
			roster.Failures = append(roster.Failures, RowError{Row: i + 1, Err: fmt.Errorf("%w: %s", ErrDuplicateID, player.ID)})
			continue
		}
		seen[player.ID] = true
		roster.Players = append(roster.Players, player)
	}
	return roster, nil
}

func (rec *playerRecord) toPlayer() *model.Player {
	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	skills := make(map[model.Skill]int, len(rec.Skills))
	for name, level := range rec.Skills {
		skills[model.Skill(strings.ToLower(name))] = level
	}
	var progress map[model.Skill]float64
	if len(rec.Progress) > 0 {
		progress = make(map[model.Skill]float64, len(rec.Progress))
		for name, p := range rec.Progress {
			progress[model.Skill(strings.ToLower(name))] = p
		}
	}
	return &model.Player{
		ID:            id,
		Name:          rec.Name,
		Age:           rec.Age,
		Position:      model.Position(rec.Position),
		Skills:        skills,
		SkillProgress: progress,
		Salary:        rec.Salary,
		TSI:           rec.TSI,
		Form:          rec.Form,
		Stamina:       rec.Stamina,
		Experience:    rec.Experience,
		Leadership:    rec.Leadership,
	}
}

// MatchesJSON reads the match-history document: an ordered JSON array
// of match objects, newest first.
func MatchesJSON(r io.Reader) ([]model.Match, error) {
	var matches []model.Match
	if err := json.NewDecoder(r).Decode(&matches); err != nil {
		return nil, fmt.Errorf("%w: decoding matches: %w", ErrParse, err)
	}
	return matches, nil
}
