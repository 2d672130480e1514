package engine

import (
	"sort"

	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// floorRooms pairs a floor number with its free rooms in position order
type floorRooms struct {
	floor int
	rooms []entities.Room
}

// AvailableRooms returns every unoccupied room, lower floors first and by
// position within a floor. Both optimizers rely on this order.
func AvailableRooms(hotel *entities.Hotel) []entities.Room {
	var available []entities.Room
	for _, floor := range hotel.SortedFloors() {
		start := len(available)
		for _, room := range floor.Rooms {
			if !room.IsOccupied {
				available = append(available, room)
			}
		}

		free := available[start:]
		sort.SliceStable(free, func(i, j int) bool {
			return free[i].Number < free[j].Number
		})
	}
	return available
}

// groupByFloor splits the floor-ordered availability list into per-floor runs,
// keeping the order floors were encountered in.
func groupByFloor(available []entities.Room) []floorRooms {
	var groups []floorRooms
	for _, room := range available {
		last := len(groups) - 1
		if last < 0 || groups[last].floor != room.Floor {
			groups = append(groups, floorRooms{floor: room.Floor})
			last++
		}
		groups[last].rooms = append(groups[last].rooms, room)
	}
	return groups
}
