// Package entities provides core data structures for hotel-api.
package entities

// roomIDFloorFactor spaces room IDs so the floor is readable: room 3 on floor 7 is 703
const roomIDFloorFactor = 100

// Room is a single bookable room
type Room struct {
	ID         int  `json:"id"`
	Floor      int  `json:"floor"`
	Number     int  `json:"number"` // 1-based position in the floor, distance from the stairs/lift
	IsOccupied bool `json:"is_occupied"`
	IsSelected bool `json:"is_selected"` // highlighted as part of the latest booking
}

// RoomID derives the stable room identity from its floor and position
func RoomID(floor, number int) int {
	return floor*roomIDFloorFactor + number
}

// NewRoom creates a free room at the given floor and position
func NewRoom(floor, number int) Room {
	return Room{
		ID:     RoomID(floor, number),
		Floor:  floor,
		Number: number,
	}
}
