package events

import (
	"log"
	"sync"
)

// Row operations carried on the bus.
const (
	OpInsert = "insert"
	OpUpdate = "update"
)

// RowChanged announces that a row in a table was written. Consumers are
// expected to re-query whatever they project from that table; the event
// carries identity, not data, so readers never merge partial state.
type RowChanged struct {
	Table string `json:"table"`
	Key   string `json:"key"`
	Op    string `json:"op"`
}

// Subscriber receives every published event. Dispatch is synchronous and
// in-order per publisher; subscribers must not block.
type Subscriber func(RowChanged)

// Bus is a minimal in-process fan-out for RowChanged events. It decouples
// the workflow writes from projection refreshes and external forwarders.
type Bus struct {
	mu   sync.RWMutex
	subs []Subscriber
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *Bus) Publish(evt RowChanged) {
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	log.Printf("[events][bus] publish table=%s key=%s op=%s subscribers=%d", evt.Table, evt.Key, evt.Op, len(subs))
	for _, fn := range subs {
		fn(evt)
	}
}
