package tags

import (
	"fmt"
	"strings"

	"github.com/dhowden/tag"

	"gtaradio/internal/filesystem"
	"gtaradio/internal/logging"
	"gtaradio/internal/mediatypes"
)

// Info holds the subset of metadata gtaradio displays.
type Info struct {
	Title  string
	Artist string
	Album  string
}

// Read extracts metadata from the file at path.
func Read(path string) (Info, error) {
	file, err := filesystem.OpenWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return Info{}, err
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return Info{}, fmt.Errorf("reading tags from %s: %w", path, err)
	}

	return Info{
		Title:  clean(meta.Title()),
		Artist: clean(meta.Artist()),
		Album:  clean(meta.Album()),
	}, nil
}

// clean trims the NUL padding fixed-width tag formats leave behind.
func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\x00"))
}

// String renders Info as "Artist - Title", or just the title when the
// artist is unknown. It returns "" when there is no title.
func (i Info) String() string {
	switch {
	case i.Title == "":
		return ""
	case i.Artist == "":
		return i.Title
	default:
		return i.Artist + " - " + i.Title
	}
}

// DisplayName returns the text to show for the entry name at path.
func DisplayName(path, name string, fileType mediatypes.FileType) string {
	if fileType != mediatypes.FileTypeAudio {
		return Sanitize(name)
	}

	info, err := Read(path)
	if err != nil {
		logging.Debug("No metadata for %s: %v", path, err)
		return Sanitize(name)
	}

	if text := info.String(); text != "" {
		return Sanitize(text)
	}
	return Sanitize(name)
}

// Sanitize removes control characters that could be used for terminal
// escape injection. Newlines become spaces.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			b.WriteRune(' ')
		case r == '\x1b', r == '\x00', r == '\x7f':
			continue
		case r < 0x20 && r != '\t':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
