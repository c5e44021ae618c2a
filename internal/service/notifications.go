package service

import (
	"sync"
)

const DefaultSubscriberBuffer = 16

type Message struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// NotificationHub fans registration events out to live subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the message.
type NotificationHub struct {
	subscribers map[uint64]chan Message
	nextID      uint64
	buffer      int
	mu          sync.RWMutex
}

func NewNotificationHub(buffer int) *NotificationHub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &NotificationHub{
		subscribers: make(map[uint64]chan Message),
		buffer:      buffer,
	}
}

// Subscribe registers a new listener. The returned func removes it and
// closes the channel; calling it more than once is safe.
func (h *NotificationHub) Subscribe() (<-chan Message, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	ch := make(chan Message, h.buffer)
	h.subscribers[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if c, ok := h.subscribers[id]; ok {
			delete(h.subscribers, id)
			close(c)
		}
	}
}

func (h *NotificationHub) Publish(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (h *NotificationHub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}
