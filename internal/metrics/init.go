package metrics

import "gtaradio/internal/mediatypes"

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup.
func InitializeMetrics() {
	for _, cmd := range []string{CommandNext, CommandPrevious, CommandQuit, CommandInvalid} {
		CommandsTotal.WithLabelValues(cmd)
	}

	for _, status := range []string{PlaybackStarted, PlaybackSpawnFailed} {
		PlaybackRequestsTotal.WithLabelValues(status)
	}

	for _, ft := range mediatypes.AllFileTypes {
		TracksTotal.WithLabelValues(string(ft))
	}

	for _, op := range []string{"open", "readdir"} {
		FilesystemOperationDuration.WithLabelValues(op)
		FilesystemOperationErrors.WithLabelValues(op)
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetrySuccess.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
	}
}

// SetBuildInfo publishes the AppInfo gauge.
func SetBuildInfo(version, commit, goVersion string) {
	AppInfo.WithLabelValues(version, commit, goVersion).Set(1)
}

// SetTrackCounts replaces the TracksTotal gauges with counts per type.
func SetTrackCounts(counts map[mediatypes.FileType]int) {
	for _, ft := range mediatypes.AllFileTypes {
		TracksTotal.WithLabelValues(string(ft)).Set(float64(counts[ft]))
	}
}
