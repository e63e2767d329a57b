// Package events pushes invoice lifecycle events to connected UI sessions
// over websockets, so an open invoice list refreshes when a status changes
// in another tab.
package events

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"invoice-backend/internal/models"
)

// Event is one message on the feed.
type Event struct {
	Type           string               `json:"type"` // "status_changed", "invoice_deleted", ...
	InvoiceID      int64                `json:"invoice_id"`
	InvoiceNumber  string               `json:"invoice_number,omitempty"`
	PreviousStatus models.InvoiceStatus `json:"previous_status,omitempty"`
	NewStatus      models.InvoiceStatus `json:"new_status,omitempty"`
	At             int64                `json:"at"` // Unix millis
}

// Hub fans events out to each owner's open connections. Slow consumers are
// dropped rather than blocking publishers.
type Hub struct {
	mu    sync.Mutex
	conns map[int64]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[int64]map[*websocket.Conn]bool)}
}

// Register adds a connection to an owner's set and starts discarding
// inbound frames (the feed is one-way).
func (h *Hub) Register(ownerID int64, conn *websocket.Conn) {
	h.mu.Lock()
	if h.conns[ownerID] == nil {
		h.conns[ownerID] = make(map[*websocket.Conn]bool)
	}
	h.conns[ownerID][conn] = true
	h.mu.Unlock()

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister(ownerID, conn)
				return
			}
		}
	}()
}

func (h *Hub) unregister(ownerID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.conns[ownerID]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(h.conns, ownerID)
		}
	}
	conn.Close()
}

// Publish sends an event to every open connection of the owner.
func (h *Hub) Publish(ownerID int64, event Event) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns[ownerID]))
	for conn := range h.conns[ownerID] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(event); err != nil {
			log.Printf("[Events] Dropping slow connection: %v", err)
			h.unregister(ownerID, conn)
		}
	}
}
