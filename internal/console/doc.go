// Package console adapts the process's standard streams for the navigator.
//
// When standard input is a terminal, Open switches it to raw mode with
// golang.org/x/term so every key press is delivered immediately, without
// waiting for Enter. In raw mode the terminal no longer translates "\n"
// into a carriage return plus line feed, so the writers returned by the
// Console do it themselves, and Ctrl-C / Ctrl-D (which raw mode delivers
// as plain bytes instead of signals) are mapped to the quit command.
//
// When standard input is a pipe or a file, or raw input is disabled, the
// streams are passed through unchanged and commands are line-buffered as
// usual.
//
// Restore must be called before the process exits, otherwise the user's
// shell is left in raw mode.
package console
