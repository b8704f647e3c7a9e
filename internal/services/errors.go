// Package services defines the reporting logic of the dashboard: parameter
// validation, time-zone policy resolution and the composite report bundles.
// This file centralizes the service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// Translation into user-facing messages or HTTP status codes is performed at
// the handler layer.
package services

import "errors"

// Parameter validation errors.
var (
	// ErrInvalidDays is returned when a day-count window is outside
	// [1, MaxDays].
	ErrInvalidDays = errors.New("days out of range")

	// ErrInvalidLimit is returned when a row limit is outside [1, MaxLimit].
	ErrInvalidLimit = errors.New("limit out of range")

	// ErrEmptyUserID is returned by per-user lookups called without a user.
	ErrEmptyUserID = errors.New("user id is empty")

	// ErrEmptyQuestID is returned when a quest-scoped report has no quest id.
	ErrEmptyQuestID = errors.New("quest id is empty")

	// ErrEmptyCharacter is returned by reports that need a character name.
	ErrEmptyCharacter = errors.New("character name is empty")

	// ErrInvalidChapter is returned for chapter numbers below 1.
	ErrInvalidChapter = errors.New("chapter must be >= 1")
)
