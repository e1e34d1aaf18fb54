package projectboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"text/template"
)

// defaultViewTemplate renders a headed list of projects. Executed with
// [viewData]; consumers can replace it via [WithViewTemplate].
const defaultViewTemplate = `== {{.Name}}: {{len .Projects}} project(s) ==
{{- range .Projects}}
  {{.Title}} [{{.People}} people] {{.Description}}
{{- end}}
`

// ListView is a status-filtered view of the board.
//
// ListView is immutable after creation via [NewListView]. On each snapshot
// it receives, it discards projects whose status does not match its
// configured filter, retains the rest in creation order, and re-renders
// its display to exactly that filtered set. Rendering is a full replace,
// not an incremental diff: the complete list is written on every change.
//
// Views are configured using the functional options pattern with
// [ViewOption] functions such as [WithViewWriter] and [WithViewTemplate].
type ListView struct {
	name   string
	filter Status
	out    io.Writer
	tmpl   *template.Template
}

// viewData is the root value passed to a view's render template.
type viewData struct {
	// Name is the view's display name.
	Name string

	// Filter is the status this view selects for.
	Filter Status

	// Projects is the filtered subset, in creation order.
	Projects []Project
}

// NewListView creates a [ListView] with the given name, status filter, and
// options.
//
// The name parameter is a human-readable identifier included in the
// rendered output and in logs. The filter must be one of the defined
// [Status] constants. By default the view writes to [os.Stdout] using a
// built-in plain-text template.
//
// Returns an error if the name is empty, the filter is not a valid status,
// or an option is invalid.
//
// Example:
//
//	active, err := projectboard.NewListView("Active Projects", projectboard.StatusActive,
//	    projectboard.WithViewWriter(os.Stdout),
//	)
func NewListView(name string, filter Status, opts ...ViewOption) (*ListView, error) {
	if name == "" {
		return nil, errors.New("view name cannot be empty")
	}
	if _, err := ParseStatus(filter.String()); err != nil {
		return nil, fmt.Errorf("invalid view filter: %w", err)
	}

	cfg := &viewConfig{
		out:          os.Stdout,
		templateText: defaultViewTemplate,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	tmpl, err := template.New("view").Parse(cfg.templateText)
	if err != nil {
		return nil, fmt.Errorf("invalid view template: %w", err)
	}

	return &ListView{
		name:   name,
		filter: filter,
		out:    cfg.out,
		tmpl:   tmpl,
	}, nil
}

// Name returns the view's display name.
func (v *ListView) Name() string {
	return v.name
}

// Filter returns the status this view selects for.
func (v *ListView) Filter() Status {
	return v.filter
}

// Render writes the view's full display for the given snapshot.
//
// Only projects whose status matches the view's filter are shown, in the
// order they appear in the snapshot. The output is rendered to a buffer
// first and written in a single call, so a template error never leaves a
// partially written display.
func (v *ListView) Render(snapshot []Project) error {
	filtered := make([]Project, 0, len(snapshot))
	for _, p := range snapshot {
		if p.Status == v.filter {
			filtered = append(filtered, p)
		}
	}

	var buf bytes.Buffer
	data := viewData{
		Name:     v.name,
		Filter:   v.filter,
		Projects: filtered,
	}
	if err := v.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering view %q: %w", v.name, err)
	}

	if _, err := v.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing view %q: %w", v.name, err)
	}
	return nil
}
