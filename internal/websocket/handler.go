package websocket

import (
	"net/http"

	ws "github.com/coder/websocket"
)

// HandleWebSocket upgrades the request and serves it as a change-feed
// subscriber until the connection drops.
func HandleWebSocket(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true, // any origin; the service is LAN-local
		})
		if err != nil {
			hub.logger.Warn("websocket accept failed", "error", err)
			return
		}
		serve(r.Context(), hub, conn)
	}
}
