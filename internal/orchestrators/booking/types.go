package booking

import (
	"time"

	"github.com/KirkDiggler/hotel-api/internal/engine"
	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// GetHotelInput defines the request for loading a hotel
type GetHotelInput struct {
	HotelID string
}

// GetHotelOutput defines the response for loading a hotel
type GetHotelOutput struct {
	Hotel     *entities.Hotel
	UpdatedAt time.Time
}

// BookRoomsInput defines the request for booking rooms
type BookRoomsInput struct {
	HotelID   string
	NumRooms  int
	GuestName string
}

// Booking is a confirmed allocation
type Booking struct {
	ID       string
	HotelID  string
	Outcome  *entities.BookingOutcome
	Strategy engine.Strategy
	BookedAt time.Time
}

// BookRoomsOutput defines the response for booking rooms
type BookRoomsOutput struct {
	Booking *Booking
	Hotel   *entities.Hotel
}

// ResetBookingsInput defines the request for freeing every room
type ResetBookingsInput struct {
	HotelID string
}

// ResetBookingsOutput defines the response for freeing every room
type ResetBookingsOutput struct {
	Hotel *entities.Hotel
}

// RandomizeOccupancyInput defines the request for simulating occupancy
type RandomizeOccupancyInput struct {
	HotelID string
}

// RandomizeOccupancyOutput defines the response for simulating occupancy
type RandomizeOccupancyOutput struct {
	Hotel         *entities.Hotel
	OccupiedCount int
}
