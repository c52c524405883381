/*
Package filesystem provides resilient filesystem operations with automatic retry logic
for NFS stale file handle errors.

# Purpose

The music directory is often an NFS or SMB mount on a small board. This package wraps
the few filesystem operations gtaradio performs (opening a file, reading a directory)
with retry logic for ESTALE (stale file handle) errors, which appear when a mount is
accessed while the server side changes.

# Usage

	entries, err := filesystem.ReadDirWithRetry("/music", filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}

	file, err := filesystem.OpenWithRetry("/music/CHAT.mp3", filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}
	defer file.Close()

ReadDirWithRetry returns entries in directory order, not sorted. The directory handle
is always closed before it returns.

# Retry Behavior

Defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only ESTALE triggers a retry. All other errors are returned immediately.

# Metrics

Operations report to an [Observer] installed with [SetObserver]. The metrics package
provides the Prometheus-backed implementation. With no observer installed, nothing is
recorded.
*/
package filesystem
