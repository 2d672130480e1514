package entities

import "sort"

// Standard layout: floors 1-9 hold ten rooms, the top floor holds seven
const (
	StandardFloorCount    = 10
	StandardRoomsPerFloor = 10
	StandardTopFloorRooms = 7
)

// Floor is an ordered collection of rooms sharing a floor number
type Floor struct {
	FloorNumber int    `json:"floor_number"`
	Rooms       []Room `json:"rooms"`
}

// Hotel is a building snapshot
type Hotel struct {
	ID     string  `json:"id"`
	Floors []Floor `json:"floors"`
}

// NewFloor creates a floor with roomCount free rooms numbered from 1
func NewFloor(floorNumber, roomCount int) Floor {
	rooms := make([]Room, 0, roomCount)
	for number := 1; number <= roomCount; number++ {
		rooms = append(rooms, NewRoom(floorNumber, number))
	}
	return Floor{FloorNumber: floorNumber, Rooms: rooms}
}

// NewStandardHotel builds the default building with every room free
func NewStandardHotel(id string) *Hotel {
	floors := make([]Floor, 0, StandardFloorCount)
	for floorNumber := 1; floorNumber < StandardFloorCount; floorNumber++ {
		floors = append(floors, NewFloor(floorNumber, StandardRoomsPerFloor))
	}
	floors = append(floors, NewFloor(StandardFloorCount, StandardTopFloorRooms))

	return &Hotel{ID: id, Floors: floors}
}

// Clone returns a deep copy of the hotel
func (h *Hotel) Clone() *Hotel {
	if h == nil {
		return nil
	}

	floors := make([]Floor, len(h.Floors))
	for i, f := range h.Floors {
		floors[i] = Floor{
			FloorNumber: f.FloorNumber,
			Rooms:       append([]Room(nil), f.Rooms...),
		}
	}
	return &Hotel{ID: h.ID, Floors: floors}
}

// FindRoom returns a pointer into the hotel for the room with the given ID
func (h *Hotel) FindRoom(id int) (*Room, bool) {
	for fi := range h.Floors {
		for ri := range h.Floors[fi].Rooms {
			if h.Floors[fi].Rooms[ri].ID == id {
				return &h.Floors[fi].Rooms[ri], true
			}
		}
	}
	return nil, false
}

// RoomCount returns the number of rooms in the building
func (h *Hotel) RoomCount() int {
	total := 0
	for _, f := range h.Floors {
		total += len(f.Rooms)
	}
	return total
}

// OccupiedCount returns the number of occupied rooms
func (h *Hotel) OccupiedCount() int {
	occupied := 0
	h.EachRoom(func(r *Room) {
		if r.IsOccupied {
			occupied++
		}
	})
	return occupied
}

// EachRoom calls fn for every room in storage order, allowing in-place updates
func (h *Hotel) EachRoom(fn func(r *Room)) {
	for fi := range h.Floors {
		for ri := range h.Floors[fi].Rooms {
			fn(&h.Floors[fi].Rooms[ri])
		}
	}
}

// SortedFloors returns the floors ordered by floor number without touching h
func (h *Hotel) SortedFloors() []Floor {
	floors := append([]Floor(nil), h.Floors...)
	sort.SliceStable(floors, func(i, j int) bool {
		return floors[i].FloorNumber < floors[j].FloorNumber
	})
	return floors
}
