package engine

import (
	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// bestWindow finds the run of count consecutive free rooms with the smallest
// spread (last position minus first). The leftmost window wins ties.
func bestWindow(rooms []entities.Room, count int) ([]entities.Room, bool) {
	if count <= 0 || len(rooms) < count {
		return nil, false
	}

	bestStart := -1
	minSpread := 0
	for start := 0; start+count <= len(rooms); start++ {
		spread := rooms[start+count-1].Number - rooms[start].Number
		if bestStart < 0 || spread < minSpread {
			bestStart = start
			minSpread = spread
		}
	}

	return append([]entities.Room(nil), rooms[bestStart:bestStart+count]...), true
}

// bestSameFloor compares the best window of every floor that can hold the
// booking and keeps the cheapest. Floors are visited lowest first and only a
// strictly cheaper window replaces the current best.
func bestSameFloor(groups []floorRooms, count int) ([]entities.Room, bool) {
	var best []entities.Room
	bestCost := 0

	for _, group := range groups {
		window, ok := bestWindow(group.rooms, count)
		if !ok {
			continue
		}

		cost := PathTravelTime(window)
		if best == nil || cost < bestCost {
			best = window
			bestCost = cost
		}
	}

	return best, best != nil
}
