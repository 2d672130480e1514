package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// Describe renders the leg for the travel time breakdown, for example
// "From Room 101 to Room 203: 2 min (1 floors) + 2 min (2 rooms) = 4 min".
// A component that costs nothing is left out along with its separator.
func (l Leg) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "From Room %d to Room %d: ", l.From.ID, l.To.ID)

	if l.VerticalTime > 0 {
		fmt.Fprintf(&b, "%d min (%d floors)", l.VerticalTime, l.Floors)
	}
	if l.VerticalTime > 0 && l.HorizontalTime > 0 {
		b.WriteString(" + ")
	}
	if l.HorizontalTime > 0 {
		fmt.Fprintf(&b, "%d min (%d rooms)", l.HorizontalTime, l.Rooms)
	}

	fmt.Fprintf(&b, " = %d min", l.Total())
	return b.String()
}

// BuildOutcome prices the selection in the order given and assembles the
// booking outcome. The rooms are copied, not marked occupied.
func BuildOutcome(rooms []entities.Room, guestName string) *entities.BookingOutcome {
	legs := Legs(rooms)

	breakdown := make([]string, 0, len(legs))
	total := 0
	for _, leg := range legs {
		total += leg.Total()
		breakdown = append(breakdown, leg.Describe())
	}

	return &entities.BookingOutcome{
		Rooms:               append([]entities.Room{}, rooms...),
		TotalTravelTime:     total,
		TravelTimeBreakdown: breakdown,
		GuestName:           guestName,
	}
}
