package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/EmirDelicR/projectboard"
)

// executeRunCmd drives the interactive session with scripted input and
// returns the rendered output.
func executeRunCmd(t *testing.T, input string, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	defer rootCmd.SetIn(nil)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs(append([]string{"run"}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("run error = %v", err)
	}
	return out.String()
}

func TestRun_AddRendersLists(t *testing.T) {
	out := executeRunCmd(t, strings.Join([]string{
		"add Build shed | Wooden shed construction | 3",
		"list",
		"quit",
	}, "\n"))

	if !strings.Contains(out, "Build shed [3 people] Wooden shed construction") {
		t.Errorf("output = %q, want rendered project line", out)
	}
	if !strings.Contains(out, "== Active: 1 project(s) ==") {
		t.Errorf("output = %q, want active list with one project", out)
	}
	if !strings.Contains(out, "== Finished: 0 project(s) ==") {
		t.Errorf("output = %q, want empty finished list", out)
	}
}

func TestRun_InvalidSubmissionKeepsSessionAlive(t *testing.T) {
	out := executeRunCmd(t, strings.Join([]string{
		"add Build shed | tiny | 3", // description too short, rejected
		"add Build shed | Wooden shed construction | 3",
		"quit",
	}, "\n"))

	// first add must not have reached the board, second must have
	if got := strings.Count(out, "Build shed [3 people]"); got < 1 {
		t.Errorf("output = %q, want the valid project rendered", out)
	}
	if strings.Contains(out, "tiny") {
		t.Errorf("output = %q, want rejected submission absent", out)
	}
}

func TestRun_EOFEndsSession(t *testing.T) {
	// empty input: loop exits on end of input without error
	executeRunCmd(t, "")
}

func TestRun_SeededFromConfig(t *testing.T) {
	path := writeConfig(t, `
title: Seeded Board
seeds:
  - title: Build shed
    description: Wooden shed construction
    people: 3
  - title: Paint fence
    description: White paint everywhere
    people: 2
    status: finished
`)

	out := executeRunCmd(t, "quit\n", "-c", path)

	if !strings.Contains(out, "Seeded Board") {
		t.Errorf("output = %q, want board title", out)
	}
	if !strings.Contains(out, "== Active: 1 project(s) ==") {
		t.Errorf("output = %q, want one seeded active project", out)
	}
	if !strings.Contains(out, "== Finished: 1 project(s) ==") {
		t.Errorf("output = %q, want one seeded finished project", out)
	}
	if !strings.Contains(out, "Paint fence [2 people] White paint everywhere") {
		t.Errorf("output = %q, want finished seed rendered", out)
	}
}

// newTestBoard builds a board holding one project per given ID.
func newTestBoard(t *testing.T, ids ...string) *projectboard.Board {
	t.Helper()

	next := 0
	board, err := projectboard.New(projectboard.WithIDGenerator(func() string {
		id := ids[next]
		next++
		return id
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for i := range ids {
		board.Add(fmt.Sprintf("Project %d", i), "description", 1)
	}
	return board
}

func TestResolveID(t *testing.T) {
	board := newTestBoard(t, "a1b2", "a1c3", "zz99")

	tests := []struct {
		prefix  string
		want    string
		wantErr bool
	}{
		{"zz", "zz99", false},
		{"a1b", "a1b2", false},
		{"a1", "", true}, // ambiguous
		{"q", "", true},  // no match
		{"", "", true},   // missing
	}

	for _, tt := range tests {
		got, err := resolveID(board, tt.prefix)
		if tt.wantErr {
			if err == nil {
				t.Errorf("resolveID(%q) expected error, got %q", tt.prefix, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("resolveID(%q) error = %v", tt.prefix, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveID(%q) = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}
