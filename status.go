package projectboard

import "fmt"

// Status represents the lifecycle state of a project.
//
// Status is a string type that can hold one of two predefined values:
// [StatusActive] or [StatusFinished]. Using a string type allows for easy
// JSON serialization and human-readable logging while maintaining type
// safety through the defined constants.
type Status string

const (
	// StatusActive indicates the project is in progress. Every project
	// starts out active; no other initial status is possible.
	StatusActive Status = "active"

	// StatusFinished indicates the project has been completed.
	StatusFinished Status = "finished"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw string into a [Status].
//
// Matching is exact against the defined constants ("active", "finished").
// Returns an error for anything else, including the empty string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive:
		return StatusActive, nil
	case StatusFinished:
		return StatusFinished, nil
	default:
		return "", fmt.Errorf("unknown status %q (expected %q or %q)", s, StatusActive, StatusFinished)
	}
}
