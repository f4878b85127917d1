package websocket

import (
	"context"
	"time"

	ws "github.com/coder/websocket"
)

const (
	// Mutations are small and bursty (a title edit, a check toggle), so
	// a subscriber that cannot drain this many frames is stalled and
	// loses the overflow rather than blocking the mutating request.
	sendBufferSize = 32

	pingInterval = 25 * time.Second
)

// Client is one connected change-feed subscriber. The feed is one-way:
// inbound frames are read only to notice the peer going away.
type Client struct {
	hub  *Hub
	conn *ws.Conn
	send chan []byte
}

// serve registers the connection as a subscriber and blocks until it
// drops, then unregisters it.
func serve(ctx context.Context, hub *Hub, conn *ws.Conn) {
	c := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	hub.Register(c)
	defer hub.Unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.writeLoop(ctx)
	c.discardReads(ctx)
}

// discardReads consumes inbound frames until the first read error,
// which is how a client disconnect surfaces.
func (c *Client) discardReads(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

// writeLoop forwards hub broadcasts to the connection and pings
// periodically so half-open connections get torn down.
func (c *Client) writeLoop(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				// Hub unregistered us.
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
