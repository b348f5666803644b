package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// The actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active user connections and broadcasts events to them.
// It is constructed once in main and injected where needed.
type Hub struct {
	mu              sync.RWMutex
	userIDToClients map[string]map[Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		userIDToClients: make(map[string]map[Client]struct{}),
	}
}

// Register adds a client under a user ID.
func (h *Hub) Register(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.userIDToClients[userID]; !ok {
		h.userIDToClients[userID] = make(map[Client]struct{})
	}
	h.userIDToClients[userID][client] = struct{}{}
}

// Unregister removes a client; the user entry is dropped when empty.
func (h *Hub) Unregister(userID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.userIDToClients[userID]
	if !ok {
		return
	}
	delete(clients, client)
	if len(clients) == 0 {
		delete(h.userIDToClients, userID)
	}
}

// Broadcast sends the message to every connection of the given user. Clients
// whose send fails are dropped.
func (h *Hub) Broadcast(userID string, message []byte) {
	h.mu.RLock()
	clients := make([]Client, 0, len(h.userIDToClients[userID]))
	for c := range h.userIDToClients[userID] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.Send(message) {
			h.Unregister(userID, c)
			c.Close()
		}
	}
}

// taskEvent is the wire shape of a task change notification.
type taskEvent struct {
	Type    string `json:"type"`
	TaskID  string `json:"taskId"`
	Version int    `json:"version"`
}

// PublishTaskEvent marshals a task event and delivers it to each recipient
// once, even when a user appears multiple times (e.g. creator who is also an
// assignee). It satisfies the task service's publisher interface.
func (h *Hub) PublishTaskEvent(event, taskID string, userIDs []string) {
	payload, err := json.Marshal(taskEvent{Type: event, TaskID: taskID, Version: 1})
	if err != nil {
		return
	}

	sent := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := sent[userID]; ok {
			continue
		}
		sent[userID] = struct{}{}
		h.Broadcast(userID, payload)
	}
}
