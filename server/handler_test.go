package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"floormaker/components"
	"floormaker/generation"
)

type testResponse struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func newTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	presets := generation.NewPresetManager()
	err := presets.AddPreset(&generation.PresetDefinition{
		ID:                 "tiny",
		GridWidth:          12,
		GridHeight:         9,
		MaxFloorCount:      30,
		TurnProbability:    30,
		MaxFloorMakerCount: 2,
		RoomMinWidth:       1,
		RoomMinHeight:      1,
		RoomMaxWidth:       2,
		RoomMaxHeight:      2,
	})
	if err != nil {
		t.Fatalf("failed to add preset: %v", err)
	}

	srv := httptest.NewServer(NewMapServer(presets, generation.DefaultConfiguration(20, 15)))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	t.Cleanup(func() { ws.Close() })
	return ws
}

func roundTrip(t *testing.T, ws *websocket.Conn, request string) testResponse {
	t.Helper()
	if err := ws.WriteMessage(websocket.TextMessage, []byte(request)); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	var resp testResponse
	if err := ws.ReadJSON(&resp); err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return resp
}

func decodeMap(t *testing.T, resp testResponse) MapMessage {
	t.Helper()
	if resp.Type != MessageTypeMap {
		t.Fatalf("expected map response, got %s: %s", resp.Type, resp.Payload)
	}
	var msg MapMessage
	if err := json.Unmarshal(resp.Payload, &msg); err != nil {
		t.Fatalf("failed to decode map: %v", err)
	}
	return msg
}

func decodeError(t *testing.T, resp testResponse) ErrorMessage {
	t.Helper()
	if resp.Type != MessageTypeError {
		t.Fatalf("expected error response, got %s", resp.Type)
	}
	var msg ErrorMessage
	if err := json.Unmarshal(resp.Payload, &msg); err != nil {
		t.Fatalf("failed to decode error: %v", err)
	}
	return msg
}

func TestGenerateDefaultMatchesLocalGeneration(t *testing.T) {
	ws := newTestServer(t)

	msg := decodeMap(t, roundTrip(t, ws, `{"type":"generate","payload":{"seed":42}}`))

	local, err := generation.Generate(generation.DefaultConfiguration(20, 15), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Width != 20 || msg.Height != 15 {
		t.Fatalf("expected 20x15 map, got %dx%d", msg.Width, msg.Height)
	}
	if strings.Join(msg.Rows, "\n") != strings.Join(local.Rows(), "\n") {
		t.Fatalf("expected served map to match local generation")
	}
	if msg.Spawn != newPointMessage(local.SpawnPoint()) || msg.Exit != newPointMessage(local.ExitPoint()) {
		t.Fatalf("expected spawn/exit %v/%v, got %v/%v", local.SpawnPoint(), local.ExitPoint(), msg.Spawn, msg.Exit)
	}
	if msg.Status != local.Status().String() {
		t.Fatalf("expected status %s, got %s", local.Status(), msg.Status)
	}

	walkable := 0
	for y, row := range msg.Rows {
		for x, glyph := range row {
			tile, ok := components.ParseTile(glyph)
			if !ok {
				t.Fatalf("unexpected glyph %q at (%d,%d)", glyph, x, y)
			}
			if want, _ := local.TileAt(x, y); tile != want {
				t.Fatalf("expected %v at (%d,%d), got %v", want, x, y, tile)
			}
			if tile.Walkable() {
				walkable++
			}
		}
	}
	if walkable != msg.FloorCount {
		t.Fatalf("expected %d walkable glyphs, got %d", msg.FloorCount, walkable)
	}
}

func TestGenerateFromPresetAndConfig(t *testing.T) {
	ws := newTestServer(t)

	preset := decodeMap(t, roundTrip(t, ws, `{"type":"generate","payload":{"seed":3,"preset":"tiny"}}`))
	if preset.Width != 12 || preset.Height != 9 || preset.MaxFloorCount != 30 {
		t.Fatalf("expected tiny preset dimensions, got %+v", preset)
	}

	explicit := decodeMap(t, roundTrip(t, ws, `{"type":"generate","payload":{"seed":3,"config":{
		"grid_width":5,"grid_height":5,"max_floor_count":1,"max_floor_maker_count":1,
		"room_min_width":1,"room_min_height":1,"room_max_width":1,"room_max_height":1}}}`))
	if explicit.Status != generation.MapDegenerate.String() {
		t.Fatalf("expected degenerate status, got %s", explicit.Status)
	}
	if explicit.Spawn != explicit.Exit {
		t.Fatalf("expected spawn and exit to coincide, got %v and %v", explicit.Spawn, explicit.Exit)
	}
}

func TestGenerateErrors(t *testing.T) {
	ws := newTestServer(t)

	tests := []struct {
		name     string
		request  string
		wantCode string
	}{
		{"malformed", `{"type":`, ErrorCodeBadRequest},
		{"unknown type", `{"type":"teleport"}`, ErrorCodeUnknownMessageType},
		{"unknown preset", `{"type":"generate","payload":{"preset":"nope"}}`, ErrorCodeUnknownPreset},
		{"invalid config", `{"type":"generate","payload":{"config":{"grid_width":10,"grid_height":10,
			"max_floor_count":5,"max_floor_maker_count":1,"room_min_width":5,"room_min_height":5,
			"room_max_width":3,"room_max_height":3}}}`, ErrorCodeInvalidConfig},
		{"too large", `{"type":"generate","payload":{"config":{"grid_width":100000,"grid_height":100000}}}`, ErrorCodeGridTooLarge},
		{"grid too large for limit", `{"type":"generate","payload":{"config":{"grid_width":257,"grid_height":256}}}`, ErrorCodeGridTooLarge},
		{"floor count above cells", `{"type":"generate","payload":{"config":{"grid_width":5,"grid_height":5,
			"max_floor_count":26,"max_floor_maker_count":1,"room_min_width":1,"room_min_height":1,
			"room_max_width":1,"room_max_height":1}}}`, ErrorCodeFloorCountTooLarge},
		{"too many floor makers", `{"type":"generate","payload":{"config":{"grid_width":10,"grid_height":10,
			"max_floor_count":10,"max_floor_maker_count":65,"room_min_width":1,"room_min_height":1,
			"room_max_width":1,"room_max_height":1}}}`, ErrorCodeTooManyFloorMakers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := decodeError(t, roundTrip(t, ws, tt.request))
			if msg.Code != tt.wantCode {
				t.Fatalf("expected code %s, got %s (%s)", tt.wantCode, msg.Code, msg.Message)
			}
		})
	}

	// The connection survives errors
	decodeMap(t, roundTrip(t, ws, `{"type":"generate","payload":{"seed":1}}`))
}

func TestClientCloseEndsWithNormalClosure(t *testing.T) {
	ws := newTestServer(t)
	decodeMap(t, roundTrip(t, ws, `{"type":"generate","payload":{"seed":2}}`))

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := ws.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
		t.Fatalf("failed to write close: %v", err)
	}
	ws.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, _, err := ws.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected normal closure, got %v", err)
	}
}
