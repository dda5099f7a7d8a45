package model

import (
	"strconv"
	"strings"
)

// Match is one entry of the match-history document consumed by the
// match analyzer. Fields mirror the ingestion boundary format.
type Match struct {
	Date       string  `json:"date"`
	Opponent   string  `json:"opponent"`
	Result     string  `json:"result"` // "goals_for-goals_against", e.g. "3-1"
	Possession float64 `json:"possession"`
	Chances    int     `json:"chances"`
	Tactics    string  `json:"tactics"`
	Formation  string  `json:"formation"`
}

// Goals splits the result string into goals for and against.
// Unparseable results report ok=false and are skipped by the analyzer.
func (m *Match) Goals() (scored, conceded int, ok bool) {
	parts := strings.SplitN(m.Result, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	scored, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	conceded, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return scored, conceded, true
}

// Points returns league points for the result: 3 for a win, 1 for a
// draw, 0 for a loss or an unparseable result.
func (m *Match) Points() float64 {
	scored, conceded, ok := m.Goals()
	switch {
	case !ok:
		return 0
	case scored > conceded:
		return 3
	case scored == conceded:
		return 1
	default:
		return 0
	}
}
