package main

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want command
	}{
		{"", command{kind: cmdStartStop}},
		{"   ", command{kind: cmdStartStop}},
		{"s", command{kind: cmdStartStop}},
		{"SPACE", command{kind: cmdStartStop}},
		{"n", command{kind: cmdStep}},
		{"r", command{kind: cmdReset}},
		{"+", command{kind: cmdFaster}},
		{"-", command{kind: cmdSlower}},
		{"rand", command{kind: cmdRandom}},
		{"q", command{kind: cmdQuit}},
		{"t 3 4", command{kind: cmdToggle, x: 3, y: 4}},
		{"toggle -1 0", command{kind: cmdToggle, x: -1, y: 0}},
		{"p glider", command{kind: cmdPlace, name: "glider"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			if err != nil {
				t.Fatalf("parseCommand(%q): %v", tt.line, err)
			}
			if got != tt.want {
				t.Fatalf("parseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	for _, line := range []string{"jump", "t 1", "t a 2", "t 1 b", "p", "p a b"} {
		if _, err := parseCommand(line); err == nil {
			t.Errorf("parseCommand(%q) should fail", line)
		}
	}
	if _, err := parseCommand("jump"); !errors.Is(err, errUnknownCommand) {
		t.Errorf("unknown word: error = %v, want errUnknownCommand", err)
	}
}
