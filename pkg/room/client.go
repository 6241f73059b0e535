package room

import (
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a player connected to a room via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	// PlayerID is the seated player this connection belongs to
	PlayerID int64

	room *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID int64) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		PlayerID: playerID,
	}
}

// Send sends a message to the web client. A client whose buffer is full
// misses the message rather than blocking the sender.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player and room
func (c *Client) String() string {
	if c.room == nil {
		return fmt.Sprintf("%d:unattached", c.PlayerID)
	}

	return fmt.Sprintf("%d:%s", c.PlayerID, c.room.ID)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *Payload) {
	if c.room == nil {
		logrus.WithField("msg", msg).Warn("received message, but client is not in a room")
		return
	}

	c.room.receivedMessage(c, msg)
}
