package projectboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validation limits for project submissions.
const (
	minDescriptionLen = 5
	minPeople         = 1
	maxPeople         = 5
)

// Submission holds the raw field values of a project form, exactly as the
// user typed them.
//
// Submissions are the input boundary of the board: validation lives here,
// not in the store. Only a Submission that passes [ParseSubmission] should
// reach [Board.Add]. On failure the Submission is left untouched so the
// caller can let the user correct it.
type Submission struct {
	// Title is the raw title field.
	Title string

	// Description is the raw description field.
	Description string

	// People is the raw people-count field, not yet parsed as a number.
	People string
}

// ProjectInput is a validated, typed set of project fields ready to be
// passed to [Board.Add].
type ProjectInput struct {
	Title       string
	Description string
	People      int
}

// ParseSubmission validates and converts raw form fields.
//
// The rules are:
//   - title: required, non-empty after trimming whitespace
//   - description: required, at least 5 characters after trimming
//   - people: required, an integer between 1 and 5 inclusive
//
// Returns the typed input on success. On failure returns a descriptive
// error naming the first offending field; the submission itself is never
// modified.
func ParseSubmission(s Submission) (ProjectInput, error) {
	title := strings.TrimSpace(s.Title)
	if title == "" {
		return ProjectInput{}, errors.New("title is required")
	}

	description := strings.TrimSpace(s.Description)
	if description == "" {
		return ProjectInput{}, errors.New("description is required")
	}
	if n := utf8.RuneCountInString(description); n < minDescriptionLen {
		return ProjectInput{}, fmt.Errorf("description must be at least %d characters, got %d", minDescriptionLen, n)
	}

	rawPeople := strings.TrimSpace(s.People)
	if rawPeople == "" {
		return ProjectInput{}, errors.New("people is required")
	}
	people, err := strconv.Atoi(rawPeople)
	if err != nil {
		return ProjectInput{}, fmt.Errorf("people must be an integer, got %q", rawPeople)
	}
	if people < minPeople || people > maxPeople {
		return ProjectInput{}, fmt.Errorf("people must be between %d and %d, got %d", minPeople, maxPeople, people)
	}

	return ProjectInput{
		Title:       title,
		Description: description,
		People:      people,
	}, nil
}
