// Package metrics provides Prometheus instrumentation for gtaradio.
//
// All metrics are prefixed with "gtaradio_" and registered with the default
// Prometheus registry using promauto, so they are always recorded. Serving
// them is optional: [StartServer] exposes /metrics and /health on a separate
// port when METRICS_ENABLED is set.
//
// # Metric Categories
//
// ## Navigator
//   - CommandsTotal: Counter of commands by kind (next/previous/quit/invalid)
//   - CursorPosition: Gauge of the current cursor
//   - TracksTotal: Gauge of loaded tracks by type (audio/folder/other)
//
// ## Playback
//   - PlaybackRequestsTotal: Counter of player spawns by status (started/spawn_failed)
//
// ## Filesystem
//   - FilesystemOperationDuration: Histogram of open/readdir duration
//   - FilesystemOperationErrors: Counter of failed operations
//   - FilesystemRetryAttempts, FilesystemRetrySuccess, FilesystemRetryFailures,
//     FilesystemStaleErrors: NFS stale handle retry counters
//
// ## Application Info
//   - AppInfo: Gauge with version, commit, and Go version labels
//
// # Usage
//
//	metrics.InitializeMetrics()
//	filesystem.SetObserver(metrics.NewFilesystemObserver())
//
//	metrics.CommandsTotal.WithLabelValues(metrics.CommandNext).Inc()
//
// # Prometheus Queries
//
// Spawn failure ratio:
//
//	rate(gtaradio_playback_requests_total{status="spawn_failed"}[1h]) /
//	rate(gtaradio_playback_requests_total[1h])
package metrics
