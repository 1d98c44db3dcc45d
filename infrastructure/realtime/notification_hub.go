package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"vidtube/domain/model"

	"github.com/gin-gonic/gin"
)

// Hub keeps per-user SSE subscribers and forwards domain events addressed to
// them. It doubles as an event sink.
type Hub struct {
	mu        sync.RWMutex
	users     map[string]map[chan model.Event]struct{}
	keepAlive time.Duration
}

func NewNotificationHub() *Hub {
	return &Hub{
		users:     make(map[string]map[chan model.Event]struct{}),
		keepAlive: 25 * time.Second,
	}
}

// Serve registers an SSE stream for the authenticated user (user_id set by
// middleware) until the client goes away.
func (h *Hub) Serve(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	ch := h.subscribe(userID)
	defer h.unsubscribe(userID, ch)

	_, _ = c.Writer.Write([]byte(":ok\n\n"))
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()
	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			_, _ = c.Writer.Write([]byte(":ping\n\n"))
			c.Writer.Flush()
		case evt := <-ch:
			data, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			_, _ = c.Writer.Write([]byte("event: " + evt.Type + "\n"))
			_, _ = c.Writer.Write([]byte("data: "))
			_, _ = c.Writer.Write(data)
			_, _ = c.Writer.Write([]byte("\n\n"))
			c.Writer.Flush()
		}
	}
}

func (h *Hub) subscribe(userID string) chan model.Event {
	ch := make(chan model.Event, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.users[userID] == nil {
		h.users[userID] = make(map[chan model.Event]struct{})
	}
	h.users[userID][ch] = struct{}{}
	return ch
}

func (h *Hub) unsubscribe(userID string, ch chan model.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs := h.users[userID]; subs != nil {
		delete(subs, ch)
		close(ch)
		if len(subs) == 0 {
			delete(h.users, userID)
		}
	}
}

// Subscribers reports how many streams userID has open.
func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}

// Publish delivers event to the target user's streams without blocking.
// Users never get notified of their own actions.
func (h *Hub) Publish(_ context.Context, event model.Event) error {
	if event.TargetUserID == "" || event.TargetUserID == event.ActorID {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.users[event.TargetUserID] {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}
