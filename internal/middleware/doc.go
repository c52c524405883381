// Package middleware provides HTTP middleware for the metrics server.
//
// [Logger] writes one W3C Extended Log Format line per request through the
// debug logger, so scrapes stay silent at the default level and never
// interleave with the interactive prompt.
package middleware
