// Command gtaradio plays the entries of a music directory one at a time
// through an external media player.
//
// The directory is scanned once at startup. Every entry except "." and ".."
// becomes a track, in the order the filesystem returns them. The player is
// launched for a track and left to run on its own; the next command does
// not wait for it.
//
// # Commands
//
//	r  play the next track (wraps from the last to the first)
//	l  play the previous track (wraps from the first to the last)
//	q  quit
//
// Whitespace between commands is ignored. End of input quits. On a
// terminal each key acts immediately, without Enter, unless RAW_INPUT is
// false.
//
// # Exit Status
//
//   - 0: quit, end of input, or no tracks in the directory
//   - 1: the directory could not be opened or the configuration is invalid
//
// # Environment Variables
//
//   - MUSIC_DIR: Track directory (default: /home/viktor/GTARadio/GTA5/GTA3)
//   - PLAYER: Player binary (default: cvlc)
//   - PLAYER_ARGS: Arguments before the track name (default: --play-and-exit).
//     vlc, cvlc and mpv also get "--" before the name; other players may
//     read an entry starting with "-" as an option.
//   - RAW_INPUT: Single-key input on a terminal (default: true)
//   - METRICS_ENABLED: Serve /metrics, /health and /version (default: false)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - LOG_LEVEL: debug, info, warn or error (default: warn)
//
// # Related Packages
//
//   - [gtaradio/internal/playlist]: Track list and cyclic cursor
//   - [gtaradio/internal/navigator]: Command loop
//   - [gtaradio/internal/player]: External player launch
//   - [gtaradio/internal/console]: Terminal raw mode
//   - [gtaradio/internal/startup]: Configuration
package main
