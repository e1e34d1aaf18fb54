package projectboard

import "time"

// Project is the public representation of a project record.
//
// Project values handed out by the board (via [Board.Projects] or listener
// snapshots) are independent copies: mutating one never affects the board's
// internal state or any other snapshot. ID, Title, Description, People and
// CreatedAt are fixed at creation; Status is the only field that changes
// over a project's lifetime, and only through [Board.Move].
type Project struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string

	// Title is the project's display title.
	Title string

	// Description is the free-form project description.
	Description string

	// People is the number of people assigned to the project.
	People int

	// Status is the project's current lifecycle state.
	Status Status

	// CreatedAt is the timestamp when the project was created.
	CreatedAt time.Time
}
