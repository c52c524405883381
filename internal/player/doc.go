// Package player delegates playback to an external media player process.
//
// Each Play call starts one player process with the track name as its last,
// discrete argument; no shell is involved, so names containing quotes,
// spaces or shell metacharacters reach the player unchanged. The process
// runs with the music directory as its working directory, which is how a
// bare entry name resolves to a file.
//
// Playback is fire-and-forget. Play returns as soon as the process has
// started; it never waits for the track to finish, never queues requests,
// and never stops a player that is still running. A background goroutine
// reaps each child and logs its exit status at debug level.
package player
