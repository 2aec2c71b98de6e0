package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ChicagoDave/citysim/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Command is a request sent by a client over the socket.
type Command struct {
	Action string `json:"action"` // "scene" re-sends the full scene
}

// Client relays broadcaster messages to one websocket connection.
type Client struct {
	ID     string
	Conn   *websocket.Conn
	Send   chan Message
	server *Server
}

func newClient(s *Server, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	return &Client{
		ID:     id,
		Conn:   conn,
		Send:   s.hub.Register(id),
		server: s,
	}
}

// readPump handles commands until the connection fails or closes.
func (c *Client) readPump() {
	defer func() {
		c.server.hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
		logger.Log.WithField("client", c.ID).Info("client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd Command
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Warn("websocket read failed")
			}
			return
		}
		switch cmd.Action {
		case "scene":
			c.server.hub.SendTo(c.ID, c.server.sceneMessage())
		default:
			logger.Log.WithField("action", cmd.Action).Debug("ignoring unknown command")
		}
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
