// Package ingest parses roster and match-history documents into domain
// models. Malformed rows surface individually; they never abort a file.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/scouty/internal/domain/model"
)

// Expected roster CSV columns. The progress column is optional.
var rosterColumns = []string{
	"id", "name", "age", "position", "skills", "salary", "tsi",
	"form", "stamina", "experience", "leadership",
}

// Roster is a parsed player file: the usable players plus the rows that
// failed, in parallel, per the batch error policy.
type Roster struct {
	Players []*model.Player
	// Failures holds per-row parse errors; the batch itself never fails.
	Failures []RowError
}

// PlayersCSV reads the roster CSV format:
// id,name,age,position,skills,salary,tsi,form,stamina,experience,leadership
// where skills (and the optional progress column) hold embedded JSON
// objects keyed by skill name. Rows with an empty id get a generated one.
func PlayersCSV(r io.Reader) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrParse, err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	roster := &Roster{}
	seen := make(map[string]bool)
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			roster.Failures = append(roster.Failures, RowError{Row: row, Err: fmt.Errorf("%w: %w", ErrParse, err)})
			continue
		}

		player, err := parseRecord(record, cols)
		if err != nil {
			roster.Failures = append(roster.Failures, RowError{Row: row, Err: err})
			continue
		}
		if seen[player.ID] {
			// First row wins; later duplicates are data-quality noise.
			roster.Failures = append(roster.Failures, RowError{Row: row, Err: fmt.Errorf("%w: %s", ErrDuplicateID, player.ID)})
			continue
		}
		seen[player.ID] = true
		roster.Players = append(roster.Players, player)
	}
	return roster, nil
}

// indexColumns maps known column names to their positions.
func indexColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range rosterColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadHeader, required)
		}
	}
	return cols, nil
}

func parseRecord(record []string, cols map[string]int) (*model.Player, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	id := field("id")
	if id == "" {
		id = uuid.NewString()
	}

	age, err := parseInt("age", field("age"))
	if err != nil {
		return nil, err
	}
	salary, err := parseFloat("salary", field("salary"))
	if err != nil {
		return nil, err
	}
	tsi, err := parseFloat("tsi", field("tsi"))
	if err != nil {
		return nil, err
	}
	form, err := parseInt("form", field("form"))
	if err != nil {
		return nil, err
	}
	if field("form") == "" {
		form = model.MinForm + (model.MaxForm-model.MinForm)/2 // midpoint default
	}
	stamina, err := parseInt("stamina", field("stamina"))
	if err != nil {
		return nil, err
	}
	experience, err := parseInt("experience", field("experience"))
	if err != nil {
		return nil, err
	}
	leadership, err := parseInt("leadership", field("leadership"))
	if err != nil {
		return nil, err
	}

	skills, err := parseSkills(field("skills"))
	if err != nil {
		return nil, err
	}
	progress, err := parseProgress(field("progress"))
	if err != nil {
		return nil, err
	}

	player := &model.Player{
		ID:            id,
		Name:          field("name"),
		Age:           age,
		Position:      model.Position(field("position")),
		Skills:        skills,
		SkillProgress: progress,
		Salary:        salary,
		TSI:           tsi,
		Form:          form,
		Stamina:       stamina,
		Experience:    experience,
		Leadership:    leadership,
	}
	if err := player.Validate(); err != nil {
		return nil, err
	}
	return player, nil
}

// parseSkills decodes the embedded skills JSON object.
func parseSkills(raw string) (map[model.Skill]int, error) {
	skills := make(map[model.Skill]int)
	if raw == "" {
		return skills, nil
	}
	var decoded map[string]int
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: skills column: %w", ErrParse, err)
	}
	for name, level := range decoded {
		skills[model.Skill(strings.ToLower(name))] = level
	}
	return skills, nil
}

// parseProgress decodes the optional embedded progress JSON object.
func parseProgress(raw string) (map[model.Skill]float64, error) {
	if raw == "" {
		return nil, nil
	}
	var decoded map[string]float64
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("%w: progress column: %w", ErrParse, err)
	}
	progress := make(map[model.Skill]float64, len(decoded))
	for name, p := range decoded {
		progress[model.Skill(strings.ToLower(name))] = p
	}
	return progress, nil
}

func parseInt(name, raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: column %s: %w", model.ErrInvalidPlayerData, name, err)
	}
	return v, nil
}

func parseFloat(name, raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %s: %w", model.ErrInvalidPlayerData, name, err)
	}
	return v, nil
}
