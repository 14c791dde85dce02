package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"floormaker/generation"
)

// Request limits. A run makes at most MaxFloorMakers steps per pass, so
// together these bound the work a single generate request can cause.
const (
	MaxGridCells   = 1 << 16
	MaxFloorMakers = 64
)

// MapServer generates maps on request over WebSocket connections
type MapServer struct {
	presets       *generation.PresetManager
	defaultConfig generation.Configuration
	upgrader      websocket.Upgrader
}

// NewMapServer creates a map server. presets may be nil.
func NewMapServer(presets *generation.PresetManager, defaultConfig generation.Configuration) *MapServer {
	if presets == nil {
		presets = generation.NewPresetManager()
	}
	return &MapServer{
		presets:       presets,
		defaultConfig: defaultConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Maps are public; allow any origin
				return true
			},
		},
	}
}

// ServeHTTP upgrades the request and serves generate requests until the client disconnects
func (s *MapServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("New connection from %s", ws.RemoteAddr())

	conn := NewConnection(ws)
	go conn.WritePump()
	conn.ReadPump(s)

	log.Printf("Connection from %s closed", ws.RemoteAddr())
}

// HandleMessage handles incoming messages from the client
func (s *MapServer) HandleMessage(conn *Connection, message []byte) {
	var baseMsg BaseMessage
	if err := json.Unmarshal(message, &baseMsg); err != nil {
		s.sendError(conn, ErrorCodeBadRequest, fmt.Sprintf("malformed message: %v", err))
		return
	}

	switch baseMsg.Type {
	case MessageTypeGenerate:
		s.handleGenerate(conn, baseMsg.Payload)
	default:
		log.Printf("Unknown message type: %s", baseMsg.Type)
		s.sendError(conn, ErrorCodeUnknownMessageType, "Unknown message type received")
	}
}

func (s *MapServer) handleGenerate(conn *Connection, payload json.RawMessage) {
	var req GenerateMessage
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			s.sendError(conn, ErrorCodeBadRequest, fmt.Sprintf("malformed generate payload: %v", err))
			return
		}
	}

	cfg, err := s.resolveConfiguration(req)
	if errors.Is(err, generation.ErrUnknownPreset) {
		s.sendError(conn, ErrorCodeUnknownPreset, err.Error())
		return
	}
	if cfg.GridSize.Width > 0 && cfg.GridSize.Height > 0 && cfg.GridSize.Width > MaxGridCells/cfg.GridSize.Height {
		s.sendError(conn, ErrorCodeGridTooLarge,
			fmt.Sprintf("grid %dx%d exceeds %d cells", cfg.GridSize.Width, cfg.GridSize.Height, MaxGridCells))
		return
	}
	if err := cfg.Validate(); err != nil {
		s.sendError(conn, ErrorCodeInvalidConfig, err.Error())
		return
	}
	if cells := cfg.GridSize.Cells(); cfg.MaxFloorCount > cells {
		s.sendError(conn, ErrorCodeFloorCountTooLarge,
			fmt.Sprintf("max floor count %d exceeds the %d cells of the grid", cfg.MaxFloorCount, cells))
		return
	}
	if cfg.MaxFloorMakerCount > MaxFloorMakers {
		s.sendError(conn, ErrorCodeTooManyFloorMakers,
			fmt.Sprintf("max floor maker count %d exceeds %d", cfg.MaxFloorMakerCount, MaxFloorMakers))
		return
	}

	m, err := generation.Generate(cfg, req.Seed)
	if err != nil {
		s.sendError(conn, ErrorCodeInvalidConfig, err.Error())
		return
	}

	if err := conn.SendMessage(OutgoingMessage{Type: MessageTypeMap, Payload: NewMapMessage(req.Seed, m)}); err != nil {
		log.Printf("Error sending map: %v", err)
	}
}

// resolveConfiguration picks an explicit config, then a named preset, then the default
func (s *MapServer) resolveConfiguration(req GenerateMessage) (generation.Configuration, error) {
	if req.Config != nil {
		return req.Config.Configuration(), nil
	}
	if req.Preset != "" {
		preset, err := s.presets.GetPreset(req.Preset)
		if err != nil {
			return generation.Configuration{}, err
		}
		return preset.Configuration(), nil
	}
	return s.defaultConfig, nil
}

func (s *MapServer) sendError(conn *Connection, code, message string) {
	errMsg := OutgoingMessage{
		Type: MessageTypeError,
		Payload: ErrorMessage{
			Code:    code,
			Message: message,
		},
	}
	if err := conn.SendMessage(errMsg); err != nil {
		log.Printf("Error sending error message: %v", err)
	}
}
