// Package common holds sentinel errors shared between the planner core and
// its callers. Match them with errors.Is.
package common

import "errors"

var (

	// lookup errors
	ErrorNotFound = errors.New("not found")

	// validation errors
	ErrorInvalidTimeFormat = errors.New("invalid date/time format, use YYYY-MM-DD HH:MM")

	// undo-specific errors
	ErrorEmptyHistory = errors.New("no edits to undo")
)
