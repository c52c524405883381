// Package navigator runs the interactive command loop over a playlist.
//
// Commands are single characters:
//
//	r  play the next track
//	l  play the previous track
//	q  quit
//
// Whitespace between commands is skipped, so "rr" followed by Enter issues
// two next commands. End of input behaves like q. Any other character is
// reported as invalid and leaves the playlist untouched.
//
// The loop has two states. It starts in AwaitingCommand and stays there
// after every next, previous or invalid command; only quit moves it to
// Terminated, which is final:
//
//	AwaitingCommand --r/l/invalid--> AwaitingCommand
//	AwaitingCommand --q/EOF--------> Terminated
//
// Each next or previous moves the cursor first and then hands the track to
// the player. A player that fails to start is reported and logged; the loop
// keeps running.
package navigator
