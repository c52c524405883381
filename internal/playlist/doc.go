// Package playlist holds the track list and the cyclic cursor that the
// navigator moves over.
//
// A Playlist is built once, from a single scan of the music directory, and
// never re-scanned. Every directory entry except the "." and ".."
// pseudo-entries becomes a track, in the order the directory yields them.
// No extension filtering is applied and no size limit exists.
//
// The cursor starts at 0 and moves with modular arithmetic, so Next past
// the last track returns to the first and Previous before the first
// returns to the last:
//
//	pl, err := playlist.Load("/music")
//	switch {
//	case errors.Is(err, playlist.ErrEmptyPlaylist):
//	    // nothing to play
//	case err != nil:
//	    // playlist.ErrDirectoryUnavailable
//	}
//	track := pl.Next()
//
// Playlist is not safe for concurrent use; the navigator drives it from a
// single goroutine.
package playlist
