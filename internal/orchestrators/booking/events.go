package booking

import "time"

// EventType names an occupancy change
type EventType string

// Event types
const (
	EventRoomsBooked         EventType = "rooms_booked"
	EventBookingsReset       EventType = "bookings_reset"
	EventOccupancyRandomized EventType = "occupancy_randomized"
)

// Event describes an occupancy change pushed to live subscribers
type Event struct {
	Type          EventType `json:"type"`
	HotelID       string    `json:"hotel_id"`
	BookingID     string    `json:"booking_id,omitempty"`
	GuestName     string    `json:"guest_name,omitempty"`
	RoomIDs       []int     `json:"room_ids,omitempty"`
	OccupiedCount int       `json:"occupied_count"`
	TotalRooms    int       `json:"total_rooms"`
	At            time.Time `json:"at"`
}

// Publisher delivers events to whoever is listening. Publish must not block.
type Publisher interface {
	Publish(event Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(Event) {}
