package server

import (
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

// Broker is an in-process pub/sub for occupancy events, keyed by hotel ID.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded events for the given hotel.
func (b *Broker) Subscribe(hotelID string) chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	if b.subs[hotelID] == nil {
		b.subs[hotelID] = make(map[chan []byte]struct{})
	}
	b.subs[hotelID][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel from the hotel's subscribers.
func (b *Broker) Unsubscribe(hotelID string, ch chan []byte) {
	b.mu.Lock()
	delete(b.subs[hotelID], ch)
	if len(b.subs[hotelID]) == 0 {
		delete(b.subs, hotelID)
	}
	b.mu.Unlock()
}

// SubscriberCount reports how many streams are open for a hotel.
func (b *Broker) SubscriberCount(hotelID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[hotelID])
}

// Publish sends an event to all subscribers of the event's hotel.
func (b *Broker) Publish(event booking.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	b.mu.RLock()
	for ch := range b.subs[event.HotelID] {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow.
		}
	}
	b.mu.RUnlock()
}
