package model

import (
	"errors"
)

// Sentinel error kinds for the engine. Callers use errors.Is to decide
// whether to exclude a player, reject a request, or surface a warning.
var (
	// ErrInvalidTrainingType marks an unrecognized training category.
	// Fatal for the projection call that carried it, never for a batch.
	ErrInvalidTrainingType = errors.New("invalid training type")

	// ErrInvalidWeights marks scoring weights that do not sum to 1.
	ErrInvalidWeights = errors.New("invalid scoring weights")

	// ErrInvalidPlayerData marks a non-numeric or out-of-range field.
	// The offending player is excluded from aggregates and reported
	// individually.
	ErrInvalidPlayerData = errors.New("invalid player data")

	// ErrMissingSkill marks a referenced skill absent from a player's
	// skill map. Non-fatal; the level defaults to 0 with a warning.
	ErrMissingSkill = errors.New("missing skill")
)

// PlayerError pairs a failed player with its error. Reports carry a
// parallel list of these alongside successful results so a bad record
// never aborts a batch.
type PlayerError struct {
	PlayerID string `json:"player_id"`
	Err      error  `json:"-"`
}

// Error implements the error interface.
func (e PlayerError) Error() string {
	if e.Err == nil {
		return "player " + e.PlayerID
	}
	return "player " + e.PlayerID + ": " + e.Err.Error()
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (e PlayerError) Unwrap() error { return e.Err }
