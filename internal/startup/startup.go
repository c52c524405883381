package startup

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"gtaradio/internal/logging"
	"gtaradio/internal/player"

	"github.com/gorilla/mux"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// DefaultMusicDir is the directory the radio has always played from.
const DefaultMusicDir = "/home/viktor/GTARadio/GTA5/GTA3"

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// VersionHandler serves GetBuildInfo as JSON.
func VersionHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	if err := json.NewEncoder(w).Encode(GetBuildInfo()); err != nil {
		logging.Warn("Failed to encode build info: %v", err)
	}
}

// Config holds all application configuration
type Config struct {
	MusicDir       string
	PlayerBinary   string
	PlayerArgs     []string
	RawInput       bool
	MetricsEnabled bool
	MetricsPort    string
}

// MetricsAddr returns the listen address of the metrics server.
func (c *Config) MetricsAddr() string {
	return ":" + c.MetricsPort
}

// LoadConfig loads and validates configuration from environment variables
func LoadConfig() (*Config, error) {
	logBanner()

	musicDir := getEnv("MUSIC_DIR", DefaultMusicDir)
	playerBinary := getEnv("PLAYER", player.DefaultBinary)
	playerArgs := getEnvList("PLAYER_ARGS", defaultPlayerArgs(playerBinary))
	rawInput := getEnvBool("RAW_INPUT", true)
	metricsEnabled := getEnvBool("METRICS_ENABLED", false)
	metricsPort := getEnv("METRICS_PORT", "9090")

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  MUSIC_DIR:        %s", musicDir)
	logging.Info("  PLAYER:           %s", playerBinary)
	logging.Info("  PLAYER_ARGS:      %q", playerArgs)
	logging.Info("  RAW_INPUT:        %v", rawInput)
	logging.Info("  METRICS_ENABLED:  %v", metricsEnabled)
	logging.Info("  METRICS_PORT:     %s", metricsPort)
	logging.Info("  LOG_LEVEL:        %s", logging.GetLevel())

	absDir, err := filepath.Abs(musicDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve music directory path: %w", err)
	}

	if metricsEnabled {
		port, err := strconv.Atoi(metricsPort)
		if err != nil || port < 0 || port > 65535 {
			return nil, fmt.Errorf("invalid METRICS_PORT %q", metricsPort)
		}
	}

	return &Config{
		MusicDir:       absDir,
		PlayerBinary:   playerBinary,
		PlayerArgs:     playerArgs,
		RawInput:       rawInput,
		MetricsEnabled: metricsEnabled,
		MetricsPort:    metricsPort,
	}, nil
}

// defaultPlayerArgs keeps cvlc's exit-after-track flag away from players
// that would reject it.
func defaultPlayerArgs(binary string) []string {
	if filepath.Base(binary) == player.DefaultBinary {
		return player.DefaultArgs
	}
	return nil
}

// LogPlayerCheck logs whether the player binary can be found. A missing
// player is only a warning; each playback attempt reports its own failure.
func LogPlayerCheck(p *player.External) {
	path, err := p.CheckAvailable()
	if err != nil {
		logging.Warn("Player %q not found in PATH, playback will fail", p.Binary())
		return
	}
	logging.Info("  [OK] Player: %s", path)
}

// RouteInfo contains information about a registered route
type RouteInfo struct {
	Method string
	Path   string
}

// GetRoutes extracts all registered routes from a mux.Router
func GetRoutes(router *mux.Router) ([]RouteInfo, error) {
	var routes []RouteInfo

	err := router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return err
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}

		for _, method := range methods {
			routes = append(routes, RouteInfo{Method: method, Path: pathTemplate})
		}
		return nil
	})

	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	return routes, err
}

// LogMetricsServer logs the metrics endpoints at info level and the full
// route table at debug level.
func LogMetricsServer(router *mux.Router, addr string) {
	logging.Info("  Metrics:  http://%s/metrics", addr)

	if !logging.IsDebugEnabled() {
		return
	}

	routes, err := GetRoutes(router)
	if err != nil {
		logging.Warn("error walking routes: %v", err)
	}
	for _, route := range routes {
		logging.Debug("    %-6s %s", route.Method, route.Path)
	}
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

func logBanner() {
	logging.Info("------------------------------------------------------------")
	logging.Info("GTA RADIO")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Go version: %s (%s/%s)", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// getEnvList splits a space-separated variable. An explicitly empty value
// yields an empty list rather than the default.
func getEnvList(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		out := make([]string, len(defaultValue))
		copy(out, defaultValue)
		return out
	}
	return strings.Fields(value)
}
