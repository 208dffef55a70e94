package server

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// WebsocketHandler streams notifications to the connected user. Auth has
// already run in the surrounding middleware, so the user ID is in Locals.
func (s *Server) WebsocketHandler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		if s.hub == nil {
			if werr := conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"notifications unavailable"}`)); werr != nil {
				log.Printf("websocket write error: %v", werr)
			}
			if cerr := conn.Close(); cerr != nil {
				log.Printf("websocket close error: %v", cerr)
			}
			return
		}

		userID, ok := conn.Locals("userID").(uint)
		if !ok || userID == 0 {
			if cerr := conn.Close(); cerr != nil {
				log.Printf("websocket close error: %v", cerr)
			}
			return
		}

		// The stream can be disabled or rolled out gradually per user.
		if s.featureFlags != nil && !s.featureFlags.Enabled("notifications_stream", userID) {
			if werr := conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"notifications unavailable"}`)); werr != nil {
				log.Printf("websocket write error: %v", werr)
			}
			if cerr := conn.Close(); cerr != nil {
				log.Printf("websocket close error: %v", cerr)
			}
			return
		}

		client, err := s.hub.Register(userID, conn)
		if err != nil {
			if werr := conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"connection limit reached"}`)); werr != nil {
				log.Printf("websocket write error: %v", werr)
			}
			if cerr := conn.Close(); cerr != nil {
				log.Printf("websocket close error: %v", cerr)
			}
			return
		}

		log.Printf("WebSocket: User %d connected to notification stream", userID)

		go client.WritePump()
		client.ReadPump()
	})
}
