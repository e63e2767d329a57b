package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"invoice-backend/internal/events"
	"invoice-backend/internal/middleware"
	"invoice-backend/pkg/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type EventsHandler struct {
	Hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) *EventsHandler {
	return &EventsHandler{Hub: hub}
}

// Subscribe upgrades the request to a websocket and attaches it to the
// owner's event feed. The socket requires an authenticated identity even
// though the HTTP method is GET.
func (h *EventsHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetOwnerIDFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Events] Upgrade failed: %v", err)
		return
	}
	h.Hub.Register(ownerID, conn)
}
