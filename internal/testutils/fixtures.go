package testutils

import (
	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// TestGuestName is the default guest name for test fixtures
const TestGuestName = "Ada Lovelace"

// CreateTestBookingRequest creates a booking request for the default guest
func CreateTestBookingRequest(numRooms int) entities.BookingRequest {
	return entities.BookingRequest{
		NumRooms:  numRooms,
		GuestName: TestGuestName,
	}
}

// CreateTestOutcome creates the outcome of booking 101, 102 and 103 on an
// empty first floor
func CreateTestOutcome() *entities.BookingOutcome {
	return &entities.BookingOutcome{
		Rooms: []entities.Room{
			entities.NewRoom(1, 1),
			entities.NewRoom(1, 2),
			entities.NewRoom(1, 3),
		},
		TotalTravelTime: 2,
		TravelTimeBreakdown: []string{
			"From Room 101 to Room 102: 1 min (1 rooms) = 1 min",
			"From Room 102 to Room 103: 1 min (1 rooms) = 1 min",
		},
		GuestName: TestGuestName,
	}
}
