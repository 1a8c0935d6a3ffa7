package network

import (
	"time"

	"github.com/lixenwraith/crab-arena/config"
	"github.com/lixenwraith/crab-arena/parameter"
)

// Config holds spectator server configuration
type Config struct {
	// Address to bind
	Address string

	// Browser origins accepted besides same-host and localhost
	// Requests without an Origin header are always accepted
	AllowedOrigins []string

	// Timing
	WriteWait  time.Duration
	PongWait   time.Duration
	PingPeriod time.Duration

	// Limits
	SendQueueSize  int
	MaxMessageSize int64
}

// DefaultConfig returns the spectator defaults
func DefaultConfig() Config {
	return Config{
		Address:        ":8089",
		WriteWait:      parameter.SpectatorWriteWait,
		PongWait:       parameter.SpectatorPongWait,
		PingPeriod:     parameter.SpectatorPingPeriod,
		SendQueueSize:  parameter.SpectatorSendBuffer,
		MaxMessageSize: 512,
	}
}

// FromServerConfig applies the [server] section over the defaults
func FromServerConfig(sc config.ServerConfig) Config {
	cfg := DefaultConfig()
	if sc.Addr != "" {
		cfg.Address = sc.Addr
	}
	cfg.AllowedOrigins = append([]string(nil), sc.AllowedOrigins...)
	return cfg
}
