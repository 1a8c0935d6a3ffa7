package parameter

import "time"

// EventQueueInitialCap is the initial capacity of the per-tick event queue
const EventQueueInitialCap = 64

// FrameInterval is the target render/update interval of the terminal binary
const FrameInterval = 16 * time.Millisecond

// MaxFrameDelta caps a single frame's delta when the process stalls (debugger, suspend)
const MaxFrameDelta = 100 * time.Millisecond

// InputHoldWindow is how long a key press keeps its force active
// Terminals report key repeats but not key releases
const InputHoldWindow = 120 * time.Millisecond

// SpectatorSendBuffer is the per-client outgoing frame buffer
const SpectatorSendBuffer = 64

// SpectatorWriteWait is the websocket write deadline
const SpectatorWriteWait = 10 * time.Second

// SpectatorPongWait is the websocket read deadline refreshed by pongs
const SpectatorPongWait = 60 * time.Second

// SpectatorPingPeriod must be shorter than SpectatorPongWait
const SpectatorPingPeriod = 54 * time.Second

// MaxDispatchPasses bounds handler-to-handler event cascades within one dispatch
// Exceeding it means two handlers keep re-emitting each other's events
const MaxDispatchPasses = 32
