package entities

// BookingRequest asks for a number of rooms on behalf of a guest
type BookingRequest struct {
	NumRooms  int    `json:"num_rooms"`
	GuestName string `json:"guest_name"` // opaque to the allocation engine
}

// BookingOutcome is the result of allocating rooms for a request.
// Rooms are in travel order, which is not necessarily ID order.
type BookingOutcome struct {
	Rooms               []Room   `json:"rooms"`
	TotalTravelTime     int      `json:"total_travel_time"`
	TravelTimeBreakdown []string `json:"travel_time_breakdown"`
	GuestName           string   `json:"guest_name"`
}

// RoomIDs returns the IDs of the booked rooms in travel order
func (o *BookingOutcome) RoomIDs() []int {
	ids := make([]int, len(o.Rooms))
	for i, r := range o.Rooms {
		ids[i] = r.ID
	}
	return ids
}
