package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command labels for CommandsTotal.
const (
	CommandNext     = "next"
	CommandPrevious = "previous"
	CommandQuit     = "quit"
	CommandInvalid  = "invalid"
)

// Status labels for PlaybackRequestsTotal.
const (
	PlaybackStarted     = "started"
	PlaybackSpawnFailed = "spawn_failed"
)

// Navigator metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_commands_total",
			Help: "Total number of commands read by the navigator",
		},
		[]string{"command"},
	)

	CursorPosition = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gtaradio_cursor_position",
			Help: "Current index into the track list",
		},
	)

	TracksTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gtaradio_tracks",
			Help: "Number of tracks loaded from the music directory",
		},
		[]string{"type"},
	)
)

// Playback metrics
var (
	PlaybackRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_playback_requests_total",
			Help: "Total number of player processes requested",
		},
		[]string{"status"},
	)
)

// Filesystem metrics
var (
	FilesystemOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gtaradio_filesystem_operation_duration_seconds",
			Help:    "Duration of filesystem operations including retries",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"operation"},
	)

	FilesystemOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_filesystem_operation_errors_total",
			Help: "Total number of failed filesystem operations",
		},
		[]string{"operation"},
	)

	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_filesystem_retry_attempts_total",
			Help: "Total number of retries after a stale file handle",
		},
		[]string{"operation"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_filesystem_retry_success_total",
			Help: "Total number of operations that succeeded after retrying",
		},
		[]string{"operation"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_filesystem_retry_failures_total",
			Help: "Total number of operations that failed after exhausting retries",
		},
		[]string{"operation"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gtaradio_filesystem_stale_errors_total",
			Help: "Total number of ESTALE errors seen",
		},
		[]string{"operation"},
	)
)

// Application info
var (
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gtaradio_app_info",
			Help: "Build information, value is always 1",
		},
		[]string{"version", "commit", "go_version"},
	)
)
