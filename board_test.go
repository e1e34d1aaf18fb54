package projectboard

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	board, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if board.Title() != "ProjectBoard" {
		t.Errorf("Title() = %q, want %q", board.Title(), "ProjectBoard")
	}
	if len(board.Projects()) != 0 {
		t.Errorf("Projects() = %v projects, want 0", len(board.Projects()))
	}
}

func TestNew_WithTitle(t *testing.T) {
	board, err := New(WithTitle("Team Sprint Board"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if board.Title() != "Team Sprint Board" {
		t.Errorf("Title() = %q, want %q", board.Title(), "Team Sprint Board")
	}
}

func TestNew_NilLogger(t *testing.T) {
	_, err := New(WithLogger(nil))
	if err == nil {
		t.Error("New() expected error for nil logger, got nil")
	}
}

func TestNew_NilView(t *testing.T) {
	if _, err := New(WithView(nil)); err == nil {
		t.Error("New() expected error for nil view, got nil")
	}
	if _, err := New(WithViews(nil)); err == nil {
		t.Error("New() expected error for nil view via WithViews, got nil")
	}
}

func TestNew_NilIDGenerator(t *testing.T) {
	_, err := New(WithIDGenerator(nil))
	if err == nil {
		t.Error("New() expected error for nil ID generator, got nil")
	}
}

func TestNew_NilListenerIgnored(t *testing.T) {
	board, err := New(WithListener(nil))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	board.Add("Test", "description", 1) // must not panic
}

func TestBoard_Add(t *testing.T) {
	board, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := board.Add("Build shed", "Wooden shed construction", 3)

	if p.ID == "" {
		t.Error("Add() returned project with empty ID")
	}
	if p.Status != StatusActive {
		t.Errorf("Add() Status = %q, want %q", p.Status, StatusActive)
	}
	if p.Title != "Build shed" || p.Description != "Wooden shed construction" || p.People != 3 {
		t.Errorf("Add() = %+v, want fields as given", p)
	}
	if p.CreatedAt.IsZero() {
		t.Error("Add() CreatedAt should not be zero")
	}
}

func TestBoard_WithIDGenerator(t *testing.T) {
	next := 0
	board, err := New(WithIDGenerator(func() string {
		next++
		return fmt.Sprintf("proj-%d", next)
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if p := board.Add("Test", "description", 1); p.ID != "proj-1" {
		t.Errorf("Add() ID = %q, want %q", p.ID, "proj-1")
	}
	if p := board.Add("Test", "description", 1); p.ID != "proj-2" {
		t.Errorf("Add() ID = %q, want %q", p.ID, "proj-2")
	}
}

func TestBoard_WithListenerReceivesSnapshots(t *testing.T) {
	var got []Project
	board, err := New(WithListener(func(snapshot []Project) {
		got = snapshot
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	board.Add("Build shed", "Wooden shed construction", 3)

	if len(got) != 1 {
		t.Fatalf("listener snapshot = %v projects, want 1", len(got))
	}
	last := got[len(got)-1]
	if last.Title != "Build shed" || last.People != 3 || last.Status != StatusActive {
		t.Errorf("last snapshot project = %+v, want added project with active status", last)
	}
}

func TestBoard_MoveNotifiesOnActualChangeOnly(t *testing.T) {
	calls := 0
	board, err := New(WithListener(func([]Project) { calls++ }))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := board.Add("Test", "description", 1)
	board.Move(p.ID, StatusFinished)
	board.Move(p.ID, StatusFinished) // no-op, already finished
	board.Move("no-such-id", StatusFinished)

	// one add + one real move
	if calls != 2 {
		t.Errorf("listener invoked %v times, want 2", calls)
	}

	if got := board.Projects()[0].Status; got != StatusFinished {
		t.Errorf("Projects()[0].Status = %q, want %q", got, StatusFinished)
	}
}

func TestBoard_MoveInvalidStatusIsNoOp(t *testing.T) {
	calls := 0
	board, err := New(WithListener(func([]Project) { calls++ }))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := board.Add("Test", "description", 1)
	board.Move(p.ID, Status("archived"))

	if calls != 1 { // the add only
		t.Errorf("listener invoked %v times, want 1", calls)
	}
	if got := board.Projects()[0].Status; got != StatusActive {
		t.Errorf("Projects()[0].Status = %q, want %q", got, StatusActive)
	}
}

func TestBoard_MoveBackToActive(t *testing.T) {
	board, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := board.Add("Test", "description", 1)
	board.Move(p.ID, StatusFinished)
	board.Move(p.ID, StatusActive)

	if got := board.Projects()[0].Status; got != StatusActive {
		t.Errorf("Projects()[0].Status = %q, want %q", got, StatusActive)
	}
}

func TestBoard_SubscribeAndCancel(t *testing.T) {
	board, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	calls := 0
	sub := board.Subscribe(func([]Project) { calls++ })

	board.Add("One", "description", 1)
	sub.Cancel()
	sub.Cancel() // idempotent
	board.Add("Two", "description", 1)

	if calls != 1 {
		t.Errorf("listener invoked %v times, want 1", calls)
	}
}

func TestBoard_SubscribeNilListener(t *testing.T) {
	board, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	sub := board.Subscribe(nil)
	board.Add("Test", "description", 1) // must not panic
	sub.Cancel()
}

func TestBoard_ProjectsReturnsCopy(t *testing.T) {
	board, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	board.Add("Test", "description", 1)

	projects := board.Projects()
	projects[0].Title = "mutated"

	if got := board.Projects()[0].Title; got != "Test" {
		t.Errorf("Projects()[0].Title = %q after external mutation, want %q", got, "Test")
	}
}

func TestBoard_PanickingListenerIsLoggedAndIsolated(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))

	after := 0
	board, err := New(
		WithLogger(logger),
		WithListener(func([]Project) { panic("listener failure") }),
		WithListener(func([]Project) { after++ }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	board.Add("Test", "description", 1)

	if after != 1 {
		t.Errorf("listener after panicking one invoked %v times, want 1", after)
	}
	if !strings.Contains(logBuf.String(), "listener panicked") {
		t.Errorf("log output = %q, want it to mention the listener panic", logBuf.String())
	}
}

func TestBoard_ViewsRerenderOnEveryChange(t *testing.T) {
	var activeOut, finishedOut bytes.Buffer
	active, err := NewListView("Active", StatusActive, WithViewWriter(&activeOut))
	if err != nil {
		t.Fatalf("NewListView() error = %v", err)
	}
	finished, err := NewListView("Finished", StatusFinished, WithViewWriter(&finishedOut))
	if err != nil {
		t.Fatalf("NewListView() error = %v", err)
	}

	board, err := New(WithViews(active, finished))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	p := board.Add("Build shed", "Wooden shed construction", 3)

	if !strings.Contains(activeOut.String(), "Build shed") {
		t.Errorf("active view output = %q, want it to contain %q", activeOut.String(), "Build shed")
	}
	if strings.Contains(finishedOut.String(), "Build shed") {
		t.Errorf("finished view output = %q, want no %q yet", finishedOut.String(), "Build shed")
	}

	activeOut.Reset()
	finishedOut.Reset()
	board.Move(p.ID, StatusFinished)

	// full re-render after the move: gone from active, present in finished
	if strings.Contains(activeOut.String(), "Build shed") {
		t.Errorf("active view output = %q, want %q gone after move", activeOut.String(), "Build shed")
	}
	if !strings.Contains(finishedOut.String(), "Build shed") {
		t.Errorf("finished view output = %q, want it to contain %q", finishedOut.String(), "Build shed")
	}
}
