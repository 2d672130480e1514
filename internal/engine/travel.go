package engine

import (
	"github.com/KirkDiggler/hotel-api/internal/entities"
)

const (
	// MinutesPerFloor is the vertical cost of changing one floor
	MinutesPerFloor = 2
	// MinutesPerRoom is the horizontal cost of passing one room position
	MinutesPerRoom = 1
)

// Leg is the walk between two consecutive rooms of a booking
type Leg struct {
	From           entities.Room
	To             entities.Room
	Floors         int // floors crossed
	Rooms          int // positions crossed
	VerticalTime   int
	HorizontalTime int
}

// NewLeg measures the walk from one room to another
func NewLeg(from, to entities.Room) Leg {
	floors := abs(from.Floor - to.Floor)
	rooms := abs(from.Number - to.Number)
	return Leg{
		From:           from,
		To:             to,
		Floors:         floors,
		Rooms:          rooms,
		VerticalTime:   floors * MinutesPerFloor,
		HorizontalTime: rooms * MinutesPerRoom,
	}
}

// Total is the full travel time of the leg
func (l Leg) Total() int {
	return l.VerticalTime + l.HorizontalTime
}

// TravelTime is the cost of walking between two rooms. It is symmetric.
func TravelTime(a, b entities.Room) int {
	return NewLeg(a, b).Total()
}

// PathTravelTime sums the travel time of consecutive rooms in the given order
func PathTravelTime(rooms []entities.Room) int {
	total := 0
	for i := 0; i+1 < len(rooms); i++ {
		total += TravelTime(rooms[i], rooms[i+1])
	}
	return total
}

// Legs splits an ordered selection into its consecutive walks
func Legs(rooms []entities.Room) []Leg {
	if len(rooms) < 2 {
		return []Leg{}
	}

	legs := make([]Leg, 0, len(rooms)-1)
	for i := 0; i+1 < len(rooms); i++ {
		legs = append(legs, NewLeg(rooms[i], rooms[i+1]))
	}
	return legs
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
