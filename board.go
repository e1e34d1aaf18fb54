package projectboard

import (
	"log/slog"

	"github.com/EmirDelicR/projectboard/internal/store"
)

const defaultTitle = "ProjectBoard"

// Board is the main orchestrator for project state and view synchronization.
//
// Board owns the project store, fans state snapshots out to registered
// views and listeners, and is created using [New] with functional options.
// There is no process-wide instance: the caller constructs a Board and
// passes it to whichever components need it, owning its lifetime.
//
// The typical lifecycle is:
//
//	active, _ := projectboard.NewListView("Active", projectboard.StatusActive)
//	finished, _ := projectboard.NewListView("Finished", projectboard.StatusFinished)
//
//	board, err := projectboard.New(
//	    projectboard.WithViews(active, finished),
//	)
//	if err != nil {
//	    slog.Error("failed to create board", "error", err)
//	    os.Exit(1)
//	}
//
//	p := board.Add("Build shed", "Wooden shed construction", 3)
//	board.Move(p.ID, projectboard.StatusFinished)
//
// Every mutation that actually changes state re-renders all views and
// invokes all listeners synchronously before the mutating call returns.
type Board struct {
	title  string
	logger *slog.Logger
	store  *store.MemoryStore
}

// New creates a new [Board] instance with the given options.
//
// A Board is usable with no options at all: it starts empty, with no views
// or listeners, logging through [slog.Default]. Views and listeners
// registered via options are notified in registration order, views first.
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*Board, error) {
	cfg := &boardConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	title := cfg.title
	if title == "" {
		title = defaultTitle
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	b := &Board{
		title:  title,
		logger: logger,
		store:  store.NewMemoryStore(cfg.newID, logger),
	}

	for _, v := range cfg.views {
		view := v
		b.store.Subscribe(func(snapshot []store.Record) {
			if err := view.Render(recordsToProjects(snapshot)); err != nil {
				logger.Error("view render failed", "view", view.Name(), "error", err)
			}
		})
	}
	for _, l := range cfg.listeners {
		listener := l
		b.store.Subscribe(func(snapshot []store.Record) {
			listener(recordsToProjects(snapshot))
		})
	}

	return b, nil
}

// Add creates a project with the given fields and appends it to the board.
//
// The new project starts with [StatusActive] and a fresh unique ID. All
// views and listeners are notified synchronously before Add returns.
//
// Add performs no validation; use [ParseSubmission] to validate raw user
// input first. Always succeeds and returns the created project.
func (b *Board) Add(title, description string, people int) Project {
	rec := b.store.Add(title, description, people)
	b.logger.Debug("project added",
		"id", rec.ID,
		"title", rec.Title,
		"people", rec.People,
	)
	return recordToProject(rec)
}

// Move transitions the project with the given ID to the given status.
//
// If no project with that ID exists, or its status already equals the
// target, Move is a silent no-op and nobody is notified. Otherwise all
// views and listeners are notified synchronously before Move returns.
// A status outside the defined constants is also a no-op, so a record can
// never hold an out-of-domain status.
func (b *Board) Move(id string, status Status) {
	if _, err := ParseStatus(status.String()); err != nil {
		b.logger.Debug("project move ignored", "id", id, "status", status)
		return
	}
	if b.store.Move(id, status.String()) {
		b.logger.Debug("project moved", "id", id, "status", status)
		return
	}
	b.logger.Debug("project move ignored", "id", id, "status", status)
}

// Projects returns a snapshot of all projects in creation order.
//
// The returned slice is a copy; modifying it does not affect the board.
func (b *Board) Projects() []Project {
	return recordsToProjects(b.store.All())
}

// Subscribe registers a listener invoked with a fresh snapshot on every
// future state change. The listener is not invoked with the current state;
// use [Board.Projects] for that.
//
// The returned [Subscription] cancels delivery when no longer needed.
// Nil listeners yield a valid no-op subscription.
func (b *Board) Subscribe(listener func(snapshot []Project)) *Subscription {
	var fn store.Listener
	if listener != nil {
		fn = func(snapshot []store.Record) {
			listener(recordsToProjects(snapshot))
		}
	}
	return &Subscription{inner: b.store.Subscribe(fn)}
}

// Title returns the board's display title.
func (b *Board) Title() string {
	return b.title
}

// Subscription is a cancellable handle to a registered listener.
type Subscription struct {
	inner *store.Subscription
}

// Cancel stops delivery to the listener. Safe to call multiple times.
func (s *Subscription) Cancel() {
	s.inner.Cancel()
}

// recordToProject converts an internal storage record to the public type.
func recordToProject(rec store.Record) Project {
	return Project{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		People:      rec.People,
		Status:      Status(rec.Status),
		CreatedAt:   rec.CreatedAt,
	}
}

// recordsToProjects converts a storage snapshot to public project values.
func recordsToProjects(records []store.Record) []Project {
	projects := make([]Project, len(records))
	for i, rec := range records {
		projects[i] = recordToProject(rec)
	}
	return projects
}
