// Package projectboard provides an observable, in-memory project board
// with status-filtered views.
//
// ProjectBoard is designed as an SDK-first library: the application
// constructs a [Board], attaches views and listeners, and drives it with
// [Board.Add] and [Board.Move]. Every state change synchronously hands a
// fresh snapshot of the full project sequence, in creation order, to every
// registered consumer. There is no global instance and no persistence;
// the board lives exactly as long as the handle the caller holds.
//
// # Quick Start
//
// Create views and a board, then drive it:
//
//	active, _ := projectboard.NewListView("Active", projectboard.StatusActive)
//	finished, _ := projectboard.NewListView("Finished", projectboard.StatusFinished)
//
//	board, _ := projectboard.New(projectboard.WithViews(active, finished))
//
//	p := board.Add("Build shed", "Wooden shed construction", 3)
//	board.Move(p.ID, projectboard.StatusFinished)
//
// # Configuration
//
// Boards use the functional options pattern for configuration:
//
//	board, err := projectboard.New(
//	    projectboard.WithTitle("Team Sprint Board"),
//	    projectboard.WithViews(active, finished),
//	    projectboard.WithListener(func(snapshot []projectboard.Project) {
//	        log.Printf("%d projects", len(snapshot))
//	    }),
//	)
//
// # Input Validation
//
// The board itself never validates: [Board.Add] accepts whatever it is
// given. Raw user input goes through [ParseSubmission], which enforces the
// form rules (title required, description at least 5 characters, people
// between 1 and 5) and produces a typed [ProjectInput] on success.
//
// # Subscriptions
//
// [Board.Subscribe] registers a callback for future state changes and
// returns a [Subscription] handle. Cancelling the handle stops delivery;
// nothing is delivered at registration time. Listener panics are recovered
// and logged so one misbehaving consumer cannot break the others.
//
// # Architecture
//
// The public API wraps an internal package:
//
//   - internal/store: ordered in-memory record storage with listener fan-out
//
// The config package provides YAML configuration for the standalone
// binary, and cmd/projectboard is an interactive terminal front end. The
// internal package is not part of the public API and may change without
// notice.
package projectboard
