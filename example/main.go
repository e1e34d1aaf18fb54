package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/EmirDelicR/projectboard"
)

func main() {
	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════════════════╗")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   ProjectBoard Demo                                   ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ║   A scripted walkthrough of the SDK: projects are     ║")
	fmt.Println("  ║   added, moved between lists, and every change        ║")
	fmt.Println("  ║   re-renders both views below.                        ║")
	fmt.Println("  ║                                                       ║")
	fmt.Println("  ╚═══════════════════════════════════════════════════════╝")
	fmt.Println()

	active, err := projectboard.NewListView("Active", projectboard.StatusActive)
	if err != nil {
		slog.Error("failed to create view", "error", err)
		os.Exit(1)
	}
	finished, err := projectboard.NewListView("Finished", projectboard.StatusFinished)
	if err != nil {
		slog.Error("failed to create view", "error", err)
		os.Exit(1)
	}

	board, err := projectboard.New(
		projectboard.WithTitle("Garden Works"),
		projectboard.WithViews(active, finished),
		projectboard.WithListener(func(snapshot []projectboard.Project) {
			fmt.Printf("-- board changed: %d project(s) --\n\n", len(snapshot))
		}),
	)
	if err != nil {
		slog.Error("failed to create board", "error", err)
		os.Exit(1)
	}

	// raw user input goes through the form boundary first
	input, err := projectboard.ParseSubmission(projectboard.Submission{
		Title:       "Build shed",
		Description: "Wooden shed construction",
		People:      "3",
	})
	if err != nil {
		slog.Error("invalid submission", "error", err)
		os.Exit(1)
	}

	shed := board.Add(input.Title, input.Description, input.People)
	board.Add("Paint fence", "White paint everywhere", 2)
	pond := board.Add("Dig pond", "Garden pond with liner", 4)

	// moving a project re-renders both lists
	board.Move(shed.ID, projectboard.StatusFinished)

	// a second move to the same status is a silent no-op: nobody re-renders
	board.Move(shed.ID, projectboard.StatusFinished)

	// ad-hoc subscriptions can be cancelled when no longer needed
	sub := board.Subscribe(func(snapshot []projectboard.Project) {
		fmt.Println("   (temporary subscriber saw the change)")
	})
	board.Move(pond.ID, projectboard.StatusFinished)
	sub.Cancel()
	board.Move(pond.ID, projectboard.StatusActive)

	fmt.Printf("final state: %d project(s) on %q\n", len(board.Projects()), board.Title())
}
