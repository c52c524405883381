package navigator

import (
	"errors"

	"gtaradio/internal/metrics"
)

// ErrInvalidCommand is returned by Handle for unrecognised input.
var ErrInvalidCommand = errors.New("invalid command")

// Command is a parsed user command.
type Command int

const (
	// CommandInvalid is any unrecognised input.
	CommandInvalid Command = iota
	// CommandNext moves to and plays the next track.
	CommandNext
	// CommandPrevious moves to and plays the previous track.
	CommandPrevious
	// CommandQuit ends the loop.
	CommandQuit
)

// Command keys.
const (
	KeyNext     = 'r'
	KeyPrevious = 'l'
	KeyQuit     = 'q'
)

// ParseCommand maps an input byte to a Command.
func ParseCommand(b byte) Command {
	switch b {
	case KeyNext:
		return CommandNext
	case KeyPrevious:
		return CommandPrevious
	case KeyQuit:
		return CommandQuit
	default:
		return CommandInvalid
	}
}

// String returns the metric label of the command.
func (c Command) String() string {
	switch c {
	case CommandNext:
		return metrics.CommandNext
	case CommandPrevious:
		return metrics.CommandPrevious
	case CommandQuit:
		return metrics.CommandQuit
	default:
		return metrics.CommandInvalid
	}
}

// State is the state of the command loop.
type State int

const (
	// AwaitingCommand is the loop's initial and steady state.
	AwaitingCommand State = iota
	// Terminated is entered on quit and never left.
	Terminated
)

func (s State) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "awaiting_command"
}
