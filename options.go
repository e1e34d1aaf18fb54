package projectboard

import (
	"errors"
	"log/slog"
)

// boardConfig holds mutable state during Board construction.
type boardConfig struct {
	title     string
	logger    *slog.Logger
	newID     func() string
	views     []*ListView
	listeners []func([]Project)
}

// Option is a function that configures a [Board] instance during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithTitle], [WithLogger], [WithView], [WithViews],
// [WithListener], [WithIDGenerator].
type Option func(*boardConfig) error

// WithTitle sets the board's display title.
//
// If not specified, defaults to "ProjectBoard".
//
// Example:
//
//	board, err := projectboard.New(
//	    projectboard.WithTitle("Team Sprint Board"),
//	)
func WithTitle(title string) Option {
	return func(cfg *boardConfig) error {
		cfg.title = title
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Board instance.
//
// This allows SDK consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	board, err := projectboard.New(
//	    projectboard.WithLogger(logger),
//	)
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *boardConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithView attaches a [ListView] to the board.
//
// The view is registered as a listener at construction time and re-renders
// its filtered subset on every state change. Can be called multiple times
// to attach multiple views.
//
// Returns an error if the view is nil.
func WithView(v *ListView) Option {
	return func(cfg *boardConfig) error {
		if v == nil {
			return errors.New("view cannot be nil")
		}
		cfg.views = append(cfg.views, v)
		return nil
	}
}

// WithViews attaches multiple [ListView] values to the board.
//
// This is a convenience function for attaching several views at once.
// Equivalent to calling [WithView] multiple times.
//
// Example:
//
//	board, err := projectboard.New(
//	    projectboard.WithViews(active, finished),
//	)
func WithViews(views ...*ListView) Option {
	return func(cfg *boardConfig) error {
		for _, v := range views {
			if v == nil {
				return errors.New("view cannot be nil")
			}
			cfg.views = append(cfg.views, v)
		}
		return nil
	}
}

// WithListener registers a function to be called on every state change.
//
// The listener receives a fresh snapshot of all projects in creation
// order. Multiple listeners may be registered by calling WithListener
// multiple times; they execute in registration order, after any views.
//
// IMPORTANT: Listeners must be non-blocking. Long-running operations
// should dispatch work to a separate goroutine, since listeners run
// synchronously on the mutating call.
//
// Panics within listeners are recovered and logged; they do not propagate
// to the caller or prevent delivery to other listeners.
//
// Example:
//
//	board, err := projectboard.New(
//	    projectboard.WithListener(func(snapshot []projectboard.Project) {
//	        log.Printf("board now holds %d projects", len(snapshot))
//	    }),
//	)
//
// Nil listeners are silently ignored.
func WithListener(listener func(snapshot []Project)) Option {
	return func(cfg *boardConfig) error {
		if listener == nil {
			return nil // no-op for nil listener (safe to call)
		}
		cfg.listeners = append(cfg.listeners, listener)
		return nil
	}
}

// WithIDGenerator sets a custom generator for project IDs.
//
// By default projects get UUIDv4 identifiers. A custom generator is mainly
// useful for deterministic IDs in tests. The generator must return a value
// unique within the board's lifetime; the board does not check.
//
// Returns an error if the generator is nil.
func WithIDGenerator(newID func() string) Option {
	return func(cfg *boardConfig) error {
		if newID == nil {
			return errors.New("ID generator cannot be nil")
		}
		cfg.newID = newID
		return nil
	}
}
