package network

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
	"github.com/lixenwraith/crab-arena/status"
)

// ForceSink applies a force to an input-controlled side
// *arena.Match satisfies it
type ForceSink interface {
	SetForce(side core.Side, f core.Force) error
}

// Hub fans snapshots out to spectators and routes their force commands
type Hub struct {
	cfg    Config
	sink   ForceSink
	logger *log.Logger

	upgrader websocket.Upgrader

	mu         sync.RWMutex
	spectators map[SpectatorID]*spectator
	last       []byte
	closed     bool
	nextID     atomic.Uint32

	// Metrics
	statCount    *atomic.Int64
	statFrames   *atomic.Int64
	statDropped  *atomic.Int64
	statCommands *atomic.Int64
	statRejected *atomic.Int64
}

// NewHub creates a hub; sink may be nil to make the feed read-only
func NewHub(cfg Config, sink ForceSink, reg *status.Registry, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	h := &Hub{
		cfg:          cfg,
		sink:         sink,
		logger:       logger,
		spectators:   make(map[SpectatorID]*spectator),
		statCount:    reg.Ints.Get("net.spectators"),
		statFrames:   reg.Ints.Get("net.frames"),
		statDropped:  reg.Ints.Get("net.dropped"),
		statCommands: reg.Ints.Get("net.commands"),
		statRejected: reg.Ints.Get("net.rejected"),
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin:       h.checkOrigin,
		EnableCompression: true,
	}
	return h
}

// checkOrigin accepts non-browser clients, same-host, localhost and configured origins
func (h *Hub) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}

	u, err := url.Parse(origin)
	if err != nil {
		h.logger.Warn("invalid origin", "origin", origin)
		return false
	}
	if u.Host == r.Host {
		return true
	}
	host := u.Hostname()
	if host == "localhost" || host == "127.0.0.1" || strings.HasPrefix(host, "[::1") || host == "::1" {
		return true
	}

	h.logger.Warn("rejected spectator origin", "origin", origin)
	return false
}

// ServeWS upgrades the request and registers a spectator
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Debug("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	s := &spectator{
		id:   SpectatorID(h.nextID.Add(1)),
		addr: r.RemoteAddr,
		hub:  h,
		conn: conn,
		send: make(chan frame, h.cfg.SendQueueSize),
	}
	if !h.register(s) {
		conn.Close()
		return
	}

	core.Go(s.writePump)
	core.Go(s.readPump)
}

func (h *Hub) register(s *spectator) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.spectators[s.id] = s
	h.statCount.Store(int64(len(h.spectators)))
	// Late joiners get the current arena immediately
	if h.last != nil {
		s.queue(frame{messageType: websocket.BinaryMessage, data: h.last})
	}
	h.logger.Info("spectator connected", "id", s.id, "remote", s.addr)
	return true
}

func (h *Hub) unregister(s *spectator) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.spectators[s.id]; !ok {
		return
	}
	delete(h.spectators, s.id)
	s.closeSend()
	h.statCount.Store(int64(len(h.spectators)))
	h.logger.Info("spectator disconnected", "id", s.id)
}

// Broadcast encodes the snapshot once and queues it for every spectator
// Spectators with a full buffer skip the frame
func (h *Hub) Broadcast(snap *engine.Snapshot) error {
	if snap == nil {
		return nil
	}
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.last = data
	for _, s := range h.spectators {
		if s.queue(frame{messageType: websocket.BinaryMessage, data: data}) {
			h.statFrames.Add(1)
		} else {
			h.statDropped.Add(1)
		}
	}
	return nil
}

// reply queues a frame for one spectator if it is still registered
func (h *Hub) reply(s *spectator, f frame) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.spectators[s.id]; ok {
		s.queue(f)
	}
}

// handleCommand validates a text frame and forwards it to the sink
func (h *Hub) handleCommand(s *spectator, data []byte) error {
	cmd, err := ParseClientMessage(data)
	if err == nil {
		if h.sink == nil {
			err = errReadOnly
		} else {
			err = h.sink.SetForce(cmd.Side, cmd.Force)
		}
	}
	if err != nil {
		h.statRejected.Add(1)
		h.logger.Debug("spectator command rejected", "id", s.id, "err", err)
		return err
	}
	h.statCommands.Add(1)
	return nil
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.spectators)
}

// Close disconnects every spectator and rejects new ones
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, s := range h.spectators {
		s.closeSend()
		delete(h.spectators, id)
	}
	h.statCount.Store(0)
}
