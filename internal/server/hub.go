package server

import "sync"

// Broadcaster fans simulation messages out to connected clients. A slow
// client misses messages rather than stalling the simulation.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan Message
}

// NewBroadcaster returns a hub with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan Message),
	}
}

// Register creates the channel for a client, replacing any previous one.
func (b *Broadcaster) Register(id string) chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan Message, 64)
	b.subscribers[id] = ch
	return ch
}

// Unregister closes and removes a client's channel.
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo delivers msg to one client if its buffer has room.
func (b *Broadcaster) SendTo(id string, msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[id]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Broadcast delivers msg to every client with buffer room.
func (b *Broadcaster) Broadcast(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount returns the number of registered clients.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
