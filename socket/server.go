package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// dashboardRoom is the room every operator dashboard client joins
const dashboardRoom = "dashboard"

// NewSocketServer initializes the Socket.IO server for dashboard live push
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("✅ Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, room string) {
		if room != dashboardRoom {
			log.Printf("❌ Invalid room in join request: %s", room)
			return
		}
		log.Printf("👥 Client %s joined %s\n", c.ID(), room)
		c.Join(room)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("❌ Socket disconnected:", c.ID(), reason)
	})

	return server
}

// DashboardBroadcaster pushes projection updates into the dashboard room
type DashboardBroadcaster struct {
	Server *socketio.Server
}

// BroadcastToDashboard emits an event to every joined dashboard client
func (b *DashboardBroadcaster) BroadcastToDashboard(event string, payload interface{}) {
	b.Server.BroadcastToRoom("/", dashboardRoom, event, payload)
}
