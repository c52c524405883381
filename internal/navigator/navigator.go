package navigator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"gtaradio/internal/logging"
	"gtaradio/internal/metrics"
	"gtaradio/internal/player"
	"gtaradio/internal/playlist"
	"gtaradio/internal/tags"
)

// User-facing text.
const (
	Prompt         = "Press 'r' to play the next song, 'l' to play the previous song, or 'q' to quit: "
	InvalidMessage = "Invalid input. Press 'r' to play the next song, 'l' to play the previous song, or 'q' to quit."
	ExitMessage    = "Exiting..."
)

// DescribeFunc renders a track for the "Now playing" line.
type DescribeFunc func(pl *playlist.Playlist, t playlist.Track) string

// DescribeWithTags shows the track's tag title when it has one, and its
// entry name otherwise.
func DescribeWithTags(pl *playlist.Playlist, t playlist.Track) string {
	return tags.DisplayName(pl.Path(t), t.Name, t.Type)
}

// DescribeByName shows the entry name.
func DescribeByName(_ *playlist.Playlist, t playlist.Track) string {
	return tags.Sanitize(t.Name)
}

// Options tune the presentation of the loop.
type Options struct {
	// Describe renders the now-playing text. Nil uses DescribeWithTags.
	Describe DescribeFunc
	// Echo writes each command key back, for terminals in raw mode where
	// the terminal itself no longer echoes.
	Echo bool
}

// Navigator binds a playlist, a player and an output stream.
type Navigator struct {
	playlist *playlist.Playlist
	player   player.Player
	out      io.Writer
	opts     Options
	state    State
}

// New creates a Navigator in the AwaitingCommand state.
func New(pl *playlist.Playlist, p player.Player, out io.Writer, opts Options) *Navigator {
	if opts.Describe == nil {
		opts.Describe = DescribeWithTags
	}
	metrics.CursorPosition.Set(float64(pl.Position()))

	return &Navigator{
		playlist: pl,
		player:   p,
		out:      out,
		opts:     opts,
		state:    AwaitingCommand,
	}
}

// State returns the loop state.
func (n *Navigator) State() State {
	return n.state
}

// Handle applies a single command. It returns ErrInvalidCommand for
// unrecognised input and does nothing once the loop has terminated.
func (n *Navigator) Handle(key byte) error {
	if n.state == Terminated {
		return nil
	}

	cmd := ParseCommand(key)
	metrics.CommandsTotal.WithLabelValues(cmd.String()).Inc()

	switch cmd {
	case CommandNext:
		n.play(n.playlist.Next())
	case CommandPrevious:
		n.play(n.playlist.Previous())
	case CommandQuit:
		n.state = Terminated
		n.println(ExitMessage)
	default:
		logging.Debug("Invalid command %q", key)
		n.println(InvalidMessage)
		return ErrInvalidCommand
	}

	return nil
}

func (n *Navigator) play(track playlist.Track) {
	metrics.CursorPosition.Set(float64(n.playlist.Position()))

	req := player.NewRequest(n.playlist.Dir(), track.Name)
	if err := n.player.Play(req); err != nil {
		metrics.PlaybackRequestsTotal.WithLabelValues(metrics.PlaybackSpawnFailed).Inc()
		logging.Error("Playback %s: %v", req.ID, err)
		n.println(fmt.Sprintf("Could not start player for %s: %v", tags.Sanitize(track.Name), err))
		return
	}
	metrics.PlaybackRequestsTotal.WithLabelValues(metrics.PlaybackStarted).Inc()

	n.println(fmt.Sprintf("Now playing [%d/%d]: %s",
		n.playlist.Position()+1, n.playlist.Len(), n.opts.Describe(n.playlist, track)))
}

// Run reads commands from in until quit, end of input, or ctx is done. It
// returns an error only when reading fails.
func (n *Navigator) Run(ctx context.Context, in io.Reader) error {
	keys := make(chan keyResult)
	done := make(chan struct{})
	defer close(done)

	// A read on a terminal cannot be interrupted, so keys are read in their
	// own goroutine and the loop stays free to notice ctx.
	go readKeys(bufio.NewReader(in), keys, done)

	for n.state != Terminated {
		n.print(Prompt)

		var res keyResult
		select {
		case <-ctx.Done():
			logging.Debug("Interrupted, quitting")
			n.println("")
			_ = n.Handle(KeyQuit)
			return nil
		case res = <-keys:
		}

		if errors.Is(res.err, io.EOF) {
			logging.Debug("End of input, quitting")
			if n.opts.Echo {
				n.println("")
			}
			_ = n.Handle(KeyQuit)
			return nil
		}
		if res.err != nil {
			return fmt.Errorf("reading command: %w", res.err)
		}

		if n.opts.Echo {
			n.println(tags.Sanitize(string(rune(res.key))))
		}

		// Invalid input was already reported to the user.
		_ = n.Handle(res.key)
	}

	return nil
}

type keyResult struct {
	key byte
	err error
}

// readKeys sends keys from r until a read fails or done is closed.
func readKeys(r *bufio.Reader, keys chan<- keyResult, done <-chan struct{}) {
	for {
		key, err := nextKey(r)
		select {
		case keys <- keyResult{key: key, err: err}:
		case <-done:
			return
		}
		if err != nil {
			return
		}
	}
}

// nextKey returns the next non-whitespace byte.
func nextKey(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return b, nil
	}
}

func (n *Navigator) print(s string) {
	if _, err := io.WriteString(n.out, s); err != nil {
		logging.Warn("Failed to write to console: %v", err)
	}
}

func (n *Navigator) println(s string) {
	n.print(s + "\n")
}
