package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
)

// Client message types
const (
	MsgTypeForce = "force"
)

// Server text message types
const (
	MsgTypeError = "error"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrBadForce       = errors.New("force must be -1, 0 or 1")
	errReadOnly       = errors.New("feed is read-only")
)

// ClientMessage is a text frame sent by a spectator
type ClientMessage struct {
	Type  string `json:"type"`
	Side  string `json:"side"`
	Force int    `json:"force"`
}

// ServerMessage is a text frame sent to a spectator
// Snapshots travel as binary msgpack frames instead
type ServerMessage struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// ForceCommand is a validated force request
type ForceCommand struct {
	Side  core.Side
	Force core.Force
}

// ParseClientMessage decodes and validates a text frame
func ParseClientMessage(data []byte) (ForceCommand, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ForceCommand{}, fmt.Errorf("decode message: %w", err)
	}

	switch msg.Type {
	case MsgTypeForce:
		side, err := core.ParseSide(msg.Side)
		if err != nil {
			return ForceCommand{}, err
		}
		if msg.Force < -1 || msg.Force > 1 {
			return ForceCommand{}, fmt.Errorf("%w, got %d", ErrBadForce, msg.Force)
		}
		return ForceCommand{Side: side, Force: core.ForceFromInt(msg.Force)}, nil
	default:
		return ForceCommand{}, fmt.Errorf("%w %q", ErrUnknownMessage, msg.Type)
	}
}

// EncodeSnapshot serializes a snapshot as a binary frame payload
func EncodeSnapshot(s *engine.Snapshot) ([]byte, error) {
	return msgpack.Marshal(s)
}

// DecodeSnapshot parses a binary frame payload
func DecodeSnapshot(data []byte) (*engine.Snapshot, error) {
	var s engine.Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func encodeError(err error) []byte {
	data, _ := json.Marshal(ServerMessage{Type: MsgTypeError, Error: err.Error()})
	return data
}
