package engine

import (
	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// Strategy names the search that produced a selection
type Strategy string

const (
	// StrategySameFloor means every room came from one floor
	StrategySameFloor Strategy = "same_floor"
	// StrategyCrossFloor means no floor had enough free rooms
	StrategyCrossFloor Strategy = "cross_floor"
)

// AllocateRoomsInput contains the snapshot and request to allocate against
type AllocateRoomsInput struct {
	Hotel   *entities.Hotel
	Request entities.BookingRequest
}

// AllocateRoomsOutput contains the allocation result
type AllocateRoomsOutput struct {
	Outcome  *entities.BookingOutcome
	Strategy Strategy
	Legs     []Leg
}
