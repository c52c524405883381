// Package startup handles configuration loading and startup logging for
// gtaradio.
//
// # Configuration
//
// All configuration is loaded from environment variables via [LoadConfig]:
//
//   - MUSIC_DIR: Directory whose entries form the track list
//     (default: /home/viktor/GTARadio/GTA5/GTA3)
//   - PLAYER: Player binary (default: cvlc)
//   - PLAYER_ARGS: Space-separated arguments placed before the track name
//     (default: --play-and-exit for cvlc, none for other players). For vlc,
//     cvlc and mpv a "--" is placed before the track name. Other players get
//     the name directly, so an entry starting with "-" may be read as an
//     option.
//   - RAW_INPUT: Read single keys without Enter when stdin is a terminal (default: true)
//   - METRICS_ENABLED: Serve Prometheus metrics (default: false)
//   - METRICS_PORT: Metrics server port (default: 9090)
//   - LOG_LEVEL: Logging level - debug, info, warn, error (default: warn)
//
// # Build Information
//
// Build-time variables are injected via ldflags and exposed via [GetBuildInfo]:
//
//	go build -ldflags "-X gtaradio/internal/startup.Version=v1.0.0" ./cmd/gtaradio
//
// # Example Usage
//
//	config, err := startup.LoadConfig()
//	if err != nil {
//	    startup.LogFatal("Configuration error: %v", err)
//	}
//	startup.LogPlayerCheck(player.NewExternal(config.PlayerBinary, config.PlayerArgs))
package startup
