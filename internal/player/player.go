package player

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gtaradio/internal/logging"
	"gtaradio/internal/mediatypes"
)

// ErrSpawnFailed is returned by Play when the player process cannot be started.
var ErrSpawnFailed = errors.New("failed to start player")

const (
	// DefaultBinary is the player used when none is configured.
	DefaultBinary = "cvlc"
)

// DefaultArgs are passed before the track name. cvlc exits once the track ends
// instead of idling with an empty playlist.
var DefaultArgs = []string{"--play-and-exit"}

// endOfOptions separates the track from the options for players whose
// option parser honours it, so an entry named "-x.mp3" is still a file.
const endOfOptions = "--"

var endOfOptionsPlayers = map[string]bool{
	"cvlc": true,
	"vlc":  true,
	"mpv":  true,
}

// Request describes one playback.
type Request struct {
	// ID correlates the log lines of a single spawn.
	ID uuid.UUID
	// Track is the entry name passed verbatim to the player.
	Track string
	// Dir is the working directory of the player process.
	Dir string
}

// NewRequest creates a Request with a fresh ID.
func NewRequest(dir, track string) Request {
	return Request{
		ID:    uuid.New(),
		Track: track,
		Dir:   dir,
	}
}

// Player starts playback of a track.
type Player interface {
	// Play starts playback and returns without waiting for it to finish.
	Play(req Request) error
}

// External runs a media player binary once per request.
type External struct {
	binary string
	args   []string

	// onExit is called by the reaper goroutine; used by tests.
	onExit func(Request, error)
}

// NewExternal creates an External player. An empty binary selects
// DefaultBinary with DefaultArgs.
func NewExternal(binary string, args []string) *External {
	if binary == "" {
		binary = DefaultBinary
		args = DefaultArgs
	}

	owned := make([]string, len(args))
	copy(owned, args)

	return &External{binary: binary, args: owned}
}

// Binary returns the configured player binary.
func (e *External) Binary() string {
	return e.binary
}

// Command builds the process for req without starting it.
func (e *External) Command(req Request) *exec.Cmd {
	argv := make([]string, 0, len(e.args)+2)
	argv = append(argv, e.args...)
	if endOfOptionsPlayers[filepath.Base(e.binary)] {
		argv = append(argv, endOfOptions)
	}
	argv = append(argv, req.Track)

	cmd := exec.Command(e.binary, argv...) //nolint:gosec // G204 - track name is a discrete argv entry, never parsed by a shell
	// Stdout and Stderr stay nil so player chatter does not corrupt the prompt.
	cmd.Dir = req.Dir

	return cmd
}

// Play starts the player for req. The returned error wraps ErrSpawnFailed
// and the OS cause when the process could not be started.
func (e *External) Play(req Request) error {
	cmd := e.Command(req)

	logging.Debug("Playback %s: starting %s %q (%s) in %s",
		req.ID, e.binary, req.Track, mediatypes.GetMimeType(req.Track), req.Dir)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSpawnFailed, e.binary, err)
	}

	logging.Info("Playback %s: started %s (pid %d)", req.ID, req.Track, cmd.Process.Pid)

	start := time.Now()
	go func() {
		err := cmd.Wait()
		if err != nil {
			logging.Debug("Playback %s: player exited after %v: %v", req.ID, time.Since(start), err)
		} else {
			logging.Debug("Playback %s: player finished after %v", req.ID, time.Since(start))
		}
		if e.onExit != nil {
			e.onExit(req, err)
		}
	}()

	return nil
}

// CheckAvailable reports whether the player binary can be found.
func (e *External) CheckAvailable() (string, error) {
	path, err := exec.LookPath(e.binary)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", e.binary, err)
	}
	return path, nil
}
