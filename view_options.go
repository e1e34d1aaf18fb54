package projectboard

import (
	"errors"
	"io"
)

// viewConfig holds mutable state during view construction.
type viewConfig struct {
	out          io.Writer
	templateText string
}

// ViewOption is a function that configures a [ListView] during construction.
//
// ViewOption implements the functional options pattern, allowing optional
// configuration to be passed to [NewListView] in a type-safe, extensible
// way. Options return an error if validation fails.
//
// Built-in options: [WithViewWriter], [WithViewTemplate].
type ViewOption func(*viewConfig) error

// WithViewWriter sets the destination the view renders to.
//
// Defaults to [os.Stdout] if not specified.
//
// Example:
//
//	var buf bytes.Buffer
//	view, err := projectboard.NewListView("Active", projectboard.StatusActive,
//	    projectboard.WithViewWriter(&buf),
//	)
//
// Returns an error if the writer is nil.
func WithViewWriter(w io.Writer) ViewOption {
	return func(cfg *viewConfig) error {
		if w == nil {
			return errors.New("view writer cannot be nil")
		}
		cfg.out = w
		return nil
	}
}

// WithViewTemplate sets a custom render template for the view.
//
// The template uses Go's text/template syntax and is executed with a value
// exposing Name, Filter, and Projects (the filtered subset in creation
// order). Template validity is checked by [NewListView].
//
// Example:
//
//	view, err := projectboard.NewListView("Active", projectboard.StatusActive,
//	    projectboard.WithViewTemplate("{{.Name}}: {{len .Projects}}\n"),
//	)
//
// Returns an error if the template text is empty.
func WithViewTemplate(text string) ViewOption {
	return func(cfg *viewConfig) error {
		if text == "" {
			return errors.New("view template cannot be empty")
		}
		cfg.templateText = text
		return nil
	}
}
