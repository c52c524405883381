package playlist

import (
	"errors"
	"fmt"
	"path/filepath"

	"gtaradio/internal/filesystem"
	"gtaradio/internal/logging"
	"gtaradio/internal/mediatypes"
)

var (
	// ErrDirectoryUnavailable is returned by Load when the music directory
	// cannot be opened or read.
	ErrDirectoryUnavailable = errors.New("music directory unavailable")

	// ErrEmptyPlaylist is returned when the directory holds no tracks.
	ErrEmptyPlaylist = errors.New("no tracks found")
)

// Track is a single entry of the music directory.
type Track struct {
	// Name is the directory entry name, used verbatim as the player argument.
	Name string
	// Type is informational only; it never excludes a track.
	Type mediatypes.FileType
}

// Playlist is a fixed track list with a cursor that wraps at both ends.
type Playlist struct {
	dir    string
	tracks []Track
	cursor int
}

// Load scans dir once and returns a Playlist positioned at the first track.
func Load(dir string) (*Playlist, error) {
	entries, err := filesystem.ReadDirWithRetry(dir, filesystem.DefaultRetryConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDirectoryUnavailable, err)
	}

	tracks := make([]Track, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if isPseudoEntry(name) {
			continue
		}
		tracks = append(tracks, Track{
			Name: name,
			Type: mediatypes.Classify(name, entry.IsDir()),
		})
	}

	logging.Info("Loaded %d tracks from %s", len(tracks), dir)

	return New(dir, tracks)
}

// New builds a Playlist over tracks located in dir. It returns
// ErrEmptyPlaylist when tracks is empty.
func New(dir string, tracks []Track) (*Playlist, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyPlaylist, dir)
	}

	owned := make([]Track, len(tracks))
	copy(owned, tracks)

	return &Playlist{dir: dir, tracks: owned}, nil
}

func isPseudoEntry(name string) bool {
	return name == "." || name == ".."
}

// Dir returns the directory the tracks were read from.
func (p *Playlist) Dir() string {
	return p.dir
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Position returns the cursor, always in [0, Len()).
func (p *Playlist) Position() int {
	return p.cursor
}

// Current returns the track under the cursor.
func (p *Playlist) Current() Track {
	return p.tracks[p.cursor]
}

// Tracks returns a copy of the track list in playlist order.
func (p *Playlist) Tracks() []Track {
	out := make([]Track, len(p.tracks))
	copy(out, p.tracks)
	return out
}

// Next advances the cursor by one, wrapping to the first track, and returns
// the track now under it.
func (p *Playlist) Next() Track {
	p.cursor = (p.cursor + 1) % len(p.tracks)
	return p.Current()
}

// Previous moves the cursor back by one, wrapping to the last track, and
// returns the track now under it.
func (p *Playlist) Previous() Track {
	n := len(p.tracks)
	p.cursor = (p.cursor - 1 + n) % n
	return p.Current()
}

// Path returns the full path of a track.
func (p *Playlist) Path(t Track) string {
	return filepath.Join(p.dir, t.Name)
}
