package server

import (
	"encoding/json"

	"floormaker/components"
	"floormaker/generation"
)

// MessageType defines the type of message being sent
type MessageType string

const (
	MessageTypeGenerate MessageType = "generate"
	MessageTypeMap      MessageType = "map"
	MessageTypeError    MessageType = "error"
)

// Error codes carried by ErrorMessage
const (
	ErrorCodeBadRequest         = "BAD_REQUEST"
	ErrorCodeUnknownMessageType = "UNKNOWN_MESSAGE_TYPE"
	ErrorCodeUnknownPreset      = "UNKNOWN_PRESET"
	ErrorCodeInvalidConfig      = "INVALID_CONFIG"
	ErrorCodeGridTooLarge       = "GRID_TOO_LARGE"
	ErrorCodeFloorCountTooLarge = "FLOOR_COUNT_TOO_LARGE"
	ErrorCodeTooManyFloorMakers = "TOO_MANY_FLOOR_MAKERS"
)

// BaseMessage is the envelope for all messages
type BaseMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// OutgoingMessage is the envelope for messages sent to clients
type OutgoingMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// GenerateMessage requests a map. Config takes precedence over Preset; with
// neither the server's default configuration is used.
type GenerateMessage struct {
	Seed   int64                        `json:"seed"`
	Preset string                       `json:"preset,omitempty"`
	Config *generation.PresetDefinition `json:"config,omitempty"`
}

// PointMessage is a grid coordinate
type PointMessage struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// MapMessage carries a generated map. Rows hold one glyph per cell.
type MapMessage struct {
	Seed          int64        `json:"seed"`
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Rows          []string     `json:"rows"`
	Spawn         PointMessage `json:"spawn"`
	Exit          PointMessage `json:"exit"`
	FloorCount    int          `json:"floor_count"`
	MaxFloorCount int          `json:"max_floor_count"`
	Rooms         int          `json:"rooms"`
	Status        string       `json:"status"`
}

// ErrorMessage represents an error response
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newPointMessage(p components.Point) PointMessage {
	return PointMessage{X: p.X, Y: p.Y}
}

// NewMapMessage converts a generated map for the wire
func NewMapMessage(seed int64, m *generation.Map) MapMessage {
	return MapMessage{
		Seed:          seed,
		Width:         m.Width(),
		Height:        m.Height(),
		Rows:          m.Rows(),
		Spawn:         newPointMessage(m.SpawnPoint()),
		Exit:          newPointMessage(m.ExitPoint()),
		FloorCount:    m.FloorCount(),
		MaxFloorCount: m.MaxFloorCount(),
		Rooms:         len(m.Rooms()),
		Status:        m.Status().String(),
	}
}
