package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gtaradio/internal/console"
	"gtaradio/internal/filesystem"
	"gtaradio/internal/logging"
	"gtaradio/internal/mediatypes"
	"gtaradio/internal/metrics"
	"gtaradio/internal/navigator"
	"gtaradio/internal/player"
	"gtaradio/internal/playlist"
	"gtaradio/internal/startup"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// SIGINT and SIGTERM end the command loop like 'q', so the terminal is
	// restored and the metrics server shut down on the way out.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, config, os.Stdin, os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}

// run executes the radio with the given streams and returns the exit status.
func run(ctx context.Context, config *startup.Config, stdin *os.File, stdout, stderr io.Writer) int {
	metrics.InitializeMetrics()
	filesystem.SetObserver(metrics.NewFilesystemObserver())
	metrics.SetBuildInfo(startup.Version, startup.Commit, startup.GoVersion)

	if config.MetricsEnabled {
		srv, err := metrics.StartServer(config.MetricsAddr(),
			metrics.Route{Path: "/version", Handler: startup.VersionHandler})
		if err != nil {
			logging.Warn("Metrics server not started: %v", err)
		} else {
			startup.LogMetricsServer(srv.Router(), srv.Addr())
			defer shutdownMetrics(srv)
		}
	}

	pl, err := playlist.Load(config.MusicDir)
	switch {
	case errors.Is(err, playlist.ErrEmptyPlaylist):
		fmt.Fprintf(stdout, "No songs found in %s.\n", config.MusicDir)
		return exitOK
	case err != nil:
		fmt.Fprintf(stderr, "Error opening directory: %v\n", err)
		return exitError
	}
	metrics.SetTrackCounts(countTypes(pl.Tracks()))

	p := player.NewExternal(config.PlayerBinary, config.PlayerArgs)
	startup.LogPlayerCheck(p)

	cons, err := console.Open(stdin, stdout, config.RawInput)
	if err != nil {
		logging.Warn("Raw input unavailable, falling back to line input: %v", err)
		cons, _ = console.Open(stdin, stdout, false)
	}
	defer restoreConsole(cons)

	nav := navigator.New(pl, p, cons.Writer(), navigator.Options{Echo: cons.Raw()})
	if err := nav.Run(ctx, cons.Reader()); err != nil {
		restoreConsole(cons)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	return exitOK
}

func countTypes(tracks []playlist.Track) map[mediatypes.FileType]int {
	counts := make(map[mediatypes.FileType]int, len(mediatypes.AllFileTypes))
	for _, t := range tracks {
		counts[t.Type]++
	}
	return counts
}

func restoreConsole(cons *console.Console) {
	if err := cons.Restore(); err != nil {
		logging.Warn("Failed to restore terminal: %v", err)
	}
}

func shutdownMetrics(srv *metrics.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Metrics server shutdown error: %v", err)
	}
}
