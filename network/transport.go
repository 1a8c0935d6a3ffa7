// Package network serves the live arena to websocket spectators and exposes
// status over HTTP
package network

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/status"
)

// Server is the HTTP front of the hub
type Server struct {
	cfg    Config
	hub    *Hub
	status *status.Registry
	logger *log.Logger

	httpServer *http.Server
	listener   net.Listener
}

// NewServer wires the routes for hub and the status registry
func NewServer(cfg Config, hub *Hub, reg *status.Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Server{cfg: cfg, hub: hub, status: reg, logger: logger}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route multiplexer
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.hub.ServeWS)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.status.Export())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"spectators": s.hub.Count(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// Start binds the address and serves in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return err
	}
	s.listener = ln
	s.logger.Info("spectator server listening", "addr", ln.Addr().String())

	core.Go(func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("spectator server stopped", "err", err)
		}
	})
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown disconnects spectators and stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.httpServer.Shutdown(ctx)
}
