package agent

import "sync"

// CartFeedback is published after an agent-triggered add succeeds, so the
// per-item UI can show a confirmation state for a fixed duration.
type CartFeedback struct {
	ArtworkID int
}

// Bus is a small in-process event bus for cart feedback. Publishing never
// blocks; a subscriber that falls behind misses events.
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan CartFeedback
	next int
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan CartFeedback)}
}

// Subscribe registers a buffered subscription channel. The returned cancel
// function removes the subscription and closes the channel.
func (b *Bus) Subscribe() (<-chan CartFeedback, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.next
	b.next++
	ch := make(chan CartFeedback, 16)
	b.subs[id] = ch
	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking.
func (b *Bus) Publish(ev CartFeedback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
