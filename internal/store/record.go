package store

import "time"

// Status values stored on a record.
//
// These mirror the public Status constants. The storage representation is
// decoupled from the public API types to allow independent evolution.
const (
	StatusActive   = "active"
	StatusFinished = "finished"
)

// Record represents a project in storage.
//
// Record is a plain value type: snapshots copy records by value, so a
// listener holding a snapshot can never reach back into the store. Status
// is the only field the store ever mutates after creation.
type Record struct {
	// ID is the opaque unique identifier assigned at creation.
	ID string `json:"id"`

	// Title is the project's display title.
	Title string `json:"title"`

	// Description is the free-form project description.
	Description string `json:"description"`

	// People is the number of people assigned to the project.
	People int `json:"people"`

	// Status is the project's lifecycle state ("active" or "finished").
	Status string `json:"status"`

	// CreatedAt is the timestamp when the project was created.
	CreatedAt time.Time `json:"created_at"`
}

// Listener is a callback that receives a snapshot of the full record
// sequence, in creation order, after every state-changing mutation.
//
// Listeners are invoked synchronously on the mutating call. Each listener
// receives its own copy of the snapshot and is free to retain it.
type Listener func(snapshot []Record)
