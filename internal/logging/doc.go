// Package logging provides a simple leveled logging interface for gtaradio.
//
// It supports the following log levels:
//   - DEBUG: Verbose debugging information
//   - INFO: General operational messages
//   - WARN: Warning conditions
//   - ERROR: Error conditions
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable, or
// forced to debug with DEBUG=true. The default is WARN so that log lines do
// not interleave with the interactive prompt.
//
// Log lines are written to standard error. User-facing text belongs on
// standard output and does not go through this package.
package logging
