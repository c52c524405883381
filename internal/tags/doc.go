// Package tags turns a track into the text shown on the "Now playing" line.
//
// Audio files are read with github.com/dhowden/tag (ID3v1/v2, FLAC, Ogg,
// MP4 atoms, DSF). When an entry is not a recognised audio file, has no
// tags, or cannot be read, the entry name is shown instead. Metadata is
// purely cosmetic and never affects navigation or playback.
//
// All returned text is stripped of control characters so a crafted file
// name or tag cannot send escape sequences to the terminal.
package tags
