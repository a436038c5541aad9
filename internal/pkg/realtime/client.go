package realtime

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	readWait       = 5 * time.Minute
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Client wraps one websocket connection. Outbound messages flow
// through the buffered Send channel; a full buffer drops the message
// rather than blocking the emitter.
type Client struct {
	ID   string
	Send chan []byte
	Done chan struct{}

	conn      *websocket.Conn
	hub       *Hub
	closeOnce sync.Once
}

// NewClient creates a client for an upgraded connection.
func NewClient(conn *websocket.Conn, h *Hub) *Client {
	return &Client{
		ID:   uuid.NewString(),
		Send: make(chan []byte, sendBuffer),
		Done: make(chan struct{}),
		conn: conn,
		hub:  h,
	}
}

// Serve registers the client and runs the read loop until the
// connection drops. Must be called from the websocket handler
// goroutine, which owns the connection.
func (c *Client) Serve() {
	c.hub.Register(c)
	go c.writePump()
	c.readPump()
	c.hub.Unregister(c)
}

func (c *Client) readPump() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(readWait))

	for {
		messageType, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(readWait))
		c.hub.HandleMessage(c, raw)
	}
}

func (c *Client) writePump() {
	for {
		select {
		case <-c.Done:
			return
		case raw := <-c.Send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				return
			}
		}
	}
}

// enqueue hands a message to the write pump without blocking; slow
// consumers lose messages instead of stalling the hub.
func (c *Client) enqueue(raw []byte) {
	select {
	case <-c.Done:
	case c.Send <- raw:
	default:
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.Done)
		if c.conn != nil {
			_ = c.conn.Close()
		}
	})
}
