package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EmirDelicR/projectboard"
	"github.com/EmirDelicR/projectboard/config"
)

// newLogger creates a JSON logger for CLI use.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// runCmd starts an interactive board session.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive board session",
	Long: `Start an interactive projectboard session.

The session will:
  - Optionally load a YAML config and seed the board with its projects
  - Display an "Active" and a "Finished" list, re-rendered on every change
  - Read commands from stdin until "quit" or end of input

Commands:
  add <title> | <description> | <people>   create a project
  finish <id-prefix>                       move a project to finished
  activate <id-prefix>                     move a project back to active
  list                                     re-render both lists
  quit                                     end the session

Example:
  projectboard run
  projectboard run -c board.yaml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("config", "c", "", "path to config file (optional)")
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	out := cmd.OutOrStdout()

	cfg := &config.Config{}
	if configFile, _ := cmd.Flags().GetString("config"); configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	opts := append(config.BuildOptions(cfg), projectboard.WithLogger(logger))
	board, err := projectboard.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	// seed before attaching views so the startup state renders once, not
	// once per seed mutation
	seeded, err := config.Seed(board, cfg)
	if err != nil {
		return fmt.Errorf("failed to seed board: %w", err)
	}
	logger.Info("board ready", "title", board.Title(), "seeded", seeded)

	views, err := buildViews(out)
	if err != nil {
		return err
	}
	for _, v := range views {
		attachView(board, v, logger)
	}

	fmt.Fprintf(out, "%s\n\n", board.Title())
	renderAll(board, views, logger)

	return commandLoop(cmd.InOrStdin(), out, board, views, logger)
}

// buildViews creates the two status-filtered list views of the session.
func buildViews(out io.Writer) ([]*projectboard.ListView, error) {
	active, err := projectboard.NewListView("Active", projectboard.StatusActive,
		projectboard.WithViewWriter(out),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create active view: %w", err)
	}
	finished, err := projectboard.NewListView("Finished", projectboard.StatusFinished,
		projectboard.WithViewWriter(out),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create finished view: %w", err)
	}
	return []*projectboard.ListView{active, finished}, nil
}

// attachView subscribes a view so it re-renders on every state change.
func attachView(board *projectboard.Board, view *projectboard.ListView, logger *slog.Logger) {
	board.Subscribe(func(snapshot []projectboard.Project) {
		if err := view.Render(snapshot); err != nil {
			logger.Error("view render failed", "view", view.Name(), "error", err)
		}
	})
}

// renderAll renders the current board state into every view.
func renderAll(board *projectboard.Board, views []*projectboard.ListView, logger *slog.Logger) {
	snapshot := board.Projects()
	for _, v := range views {
		if err := v.Render(snapshot); err != nil {
			logger.Error("view render failed", "view", v.Name(), "error", err)
		}
	}
}

// commandLoop reads and executes commands until quit or end of input.
//
// Invalid input never ends the session: the error is logged and the user
// keeps whatever they typed on the next prompt.
func commandLoop(in io.Reader, out io.Writer, board *projectboard.Board, views []*projectboard.ListView, logger *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		switch strings.ToLower(verb) {
		case "add":
			if err := handleAdd(board, rest); err != nil {
				logger.Warn("project not added", "error", err)
			}
		case "finish":
			handleMove(board, rest, projectboard.StatusFinished, logger)
		case "activate":
			handleMove(board, rest, projectboard.StatusActive, logger)
		case "list":
			renderAll(board, views, logger)
		case "help":
			fmt.Fprint(out, commandHelp)
		case "quit", "exit":
			return nil
		default:
			logger.Warn("unknown command", "command", verb)
			fmt.Fprint(out, commandHelp)
		}
	}
}

const commandHelp = `commands:
  add <title> | <description> | <people>
  finish <id-prefix>
  activate <id-prefix>
  list
  quit
`

// handleAdd parses "title | description | people" and submits it through
// the form boundary. The board is only reached on a valid submission.
func handleAdd(board *projectboard.Board, rest string) error {
	parts := strings.SplitN(rest, "|", 3)
	if len(parts) != 3 {
		return fmt.Errorf("expected add <title> | <description> | <people>, got %q", rest)
	}

	input, err := projectboard.ParseSubmission(projectboard.Submission{
		Title:       parts[0],
		Description: parts[1],
		People:      parts[2],
	})
	if err != nil {
		return err
	}

	board.Add(input.Title, input.Description, input.People)
	return nil
}

// handleMove resolves an ID prefix and moves the project. Failures to
// resolve are logged; the move itself is a silent no-op if the project is
// already in the target status.
func handleMove(board *projectboard.Board, rest string, status projectboard.Status, logger *slog.Logger) {
	id, err := resolveID(board, strings.TrimSpace(rest))
	if err != nil {
		logger.Warn("project not moved", "error", err)
		return
	}
	board.Move(id, status)
}

// resolveID matches a unique ID prefix against the board's projects.
func resolveID(board *projectboard.Board, prefix string) (string, error) {
	if prefix == "" {
		return "", errors.New("project id is required")
	}

	var match string
	for _, p := range board.Projects() {
		if strings.HasPrefix(p.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no project with id prefix %q", prefix)
	}
	return match, nil
}
