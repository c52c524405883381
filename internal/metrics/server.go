package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gtaradio/internal/logging"
	"gtaradio/internal/middleware"
)

// Route is an extra GET endpoint served next to /metrics and /health.
type Route struct {
	Path    string
	Handler http.HandlerFunc
}

// NewRouter returns the router served on the metrics port.
func NewRouter(routes ...Route) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/health", healthHandler).Methods("GET")
	for _, route := range routes {
		r.HandleFunc(route.Path, route.Handler).Methods("GET")
	}
	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Server serves the metrics router in the background.
type Server struct {
	srv      *http.Server
	router   *mux.Router
	listener net.Listener
}

// StartServer listens on addr and serves the metrics router, plus routes,
// until Shutdown.
func StartServer(addr string, routes ...Route) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	router := NewRouter(routes...)
	s := &Server{
		router: router,
		srv: &http.Server{
			Handler:           middleware.Logger(middleware.DefaultLoggingConfig())(router),
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		listener: ln,
	}

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Metrics server error: %v", err)
		}
	}()

	logging.Info("Metrics server listening on %s", ln.Addr())
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Router returns the routes being served.
func (s *Server) Router() *mux.Router {
	return s.router
}

// Shutdown stops the server, waiting for in-flight scrapes until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
