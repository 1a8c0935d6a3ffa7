package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// SpectatorID uniquely identifies a connected spectator
type SpectatorID uint32

// frame is one queued outbound websocket message
type frame struct {
	messageType int
	data        []byte
}

// spectator is one websocket client
// Only writePump writes to conn; frames are queued under the hub lock so a
// queue never races closeSend
type spectator struct {
	id   SpectatorID
	addr string
	hub  *Hub
	conn *websocket.Conn

	send      chan frame
	closeOnce sync.Once
}

// queue adds a frame without blocking
// Returns false when the buffer is full
func (s *spectator) queue(f frame) bool {
	select {
	case s.send <- f:
		return true
	default:
		return false
	}
}

// closeSend ends writePump; caller holds the hub write lock
func (s *spectator) closeSend() {
	s.closeOnce.Do(func() { close(s.send) })
}

// readPump applies client commands until the connection fails
func (s *spectator) readPump() {
	defer func() {
		s.hub.unregister(s)
		s.conn.Close()
	}()

	cfg := s.hub.cfg
	s.conn.SetReadLimit(cfg.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
		return nil
	})

	for {
		messageType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.hub.logger.Debug("spectator read failed", "id", s.id, "err", err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if err := s.hub.handleCommand(s, data); err != nil {
			s.hub.reply(s, frame{messageType: websocket.TextMessage, data: encodeError(err)})
		}
	}
}

// writePump drains queued frames and keeps the connection alive with pings
func (s *spectator) writePump() {
	cfg := s.hub.cfg
	ticker := time.NewTicker(cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case f, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := s.conn.WriteMessage(f.messageType, f.data); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
