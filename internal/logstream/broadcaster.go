package logstream

import (
	"fmt"
	"log"
	"sync"
	"time"

	"viralengine-backend/internal/models"
)

const subscriberBuffer = 64

// Broadcaster fans log events out to any number of subscribers. Slow
// subscribers lose their oldest events rather than blocking publishers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan models.LogEvent]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan models.LogEvent]struct{}),
	}
}

func (b *Broadcaster) Subscribe() chan models.LogEvent {
	ch := make(chan models.LogEvent, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan models.LogEvent) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers an event to every subscriber, dropping the oldest
// buffered event on a full channel.
func (b *Broadcaster) Publish(level, message string) {
	event := models.LogEvent{
		Type:      "log",
		Level:     level,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}

	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- event:
			default:
			}
		}
	}
	b.mu.Unlock()
}

// Logf mirrors an event to the standard logger and to subscribers.
func (b *Broadcaster) Logf(level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", level, msg)
	b.Publish(level, msg)
}
