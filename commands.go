package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type commandKind int

const (
	cmdStartStop commandKind = iota
	cmdStep
	cmdReset
	cmdToggle
	cmdFaster
	cmdSlower
	cmdPlace
	cmdRandom
	cmdQuit
)

const helpText = "Enter/s: start/stop | n: step | r: reset | t X Y: toggle | +/-: tick rate | p NAME: pattern | rand | q: quit"

var errUnknownCommand = errors.New("unknown command")

type command struct {
	kind commandKind
	x, y int
	name string
}

// parseCommand turns one line of terminal input into a command
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdStartStop}, nil
	}

	switch strings.ToLower(fields[0]) {
	case "s", "space", "start", "stop":
		return command{kind: cmdStartStop}, nil
	case "n", "next", "step":
		return command{kind: cmdStep}, nil
	case "r", "reset":
		return command{kind: cmdReset}, nil
	case "+", "faster":
		return command{kind: cmdFaster}, nil
	case "-", "slower":
		return command{kind: cmdSlower}, nil
	case "rand", "random":
		return command{kind: cmdRandom}, nil
	case "q", "quit", "exit":
		return command{kind: cmdQuit}, nil
	case "p", "pattern":
		if len(fields) != 2 {
			return command{}, errors.Wrapf(errUnknownCommand, "[parseCommand] usage: p NAME, got %q", line)
		}
		return command{kind: cmdPlace, name: fields[1]}, nil
	case "t", "toggle":
		if len(fields) != 3 {
			return command{}, errors.Wrapf(errUnknownCommand, "[parseCommand] usage: t X Y, got %q", line)
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, errors.Wrapf(err, "[parseCommand] bad x in %q", line)
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return command{}, errors.Wrapf(err, "[parseCommand] bad y in %q", line)
		}
		return command{kind: cmdToggle, x: x, y: y}, nil
	}
	return command{}, errors.Wrapf(errUnknownCommand, "[parseCommand] %q", line)
}
