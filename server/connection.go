package server

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Connection wraps the WebSocket connection with an outgoing queue
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// MessageHandler handles messages read from a connection
type MessageHandler interface {
	HandleMessage(conn *Connection, message []byte)
}

// NewConnection creates a new connection wrapper
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 16), // Buffered channel for outgoing messages
	}
}

// ReadPump reads messages until the connection fails, then closes the
// outgoing queue so WritePump exits. Only ReadPump's goroutine may send.
func (c *Connection) ReadPump(h MessageHandler) {
	defer close(c.send)

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			return
		}

		h.HandleMessage(c, message)
	}
}

// WritePump writes queued messages to the WebSocket connection
func (c *Connection) WritePump() {
	defer c.ws.Close()

	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
	if err := c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")); err != nil {
		log.Printf("Error writing close message: %v", err)
	}
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg interface{}) error {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	select {
	case c.send <- messageBytes:
	default:
		// If the send channel is full, close the connection
		c.ws.Close()
	}
	return nil
}
