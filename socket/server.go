package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// Events pushed to clients so they re-fetch their live queries.
const (
	EventBadgeEarned   = "badge:earned"
	EventFriendRequest = "friend:request"
	EventFriendsChange = "friend:listChanged"
)

// NewSocketServer initializes the Socket.IO server. Clients join a room named
// after their user id and receive change notifications for their own data.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			log.Println("❌ Invalid userId in join request")
			return
		}
		log.Printf("👥 Socket %s joined room %s\n", c.ID(), userID)
		c.Join(userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		log.Println("❌ Socket error:", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

// Notifier pushes per-user change events. Nil-safe so controllers can run
// without a socket server in tests.
type Notifier struct {
	Server *socketio.Server
}

// NotifyUser broadcasts an event to one user's room.
func (n *Notifier) NotifyUser(userID, event string, payload interface{}) {
	if n == nil || n.Server == nil || userID == "" {
		return
	}
	n.Server.BroadcastToRoom("/", userID, event, payload)
}
