package engine

import (
	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
)

// bestCombination tries every order-preserving choice of count rooms from
// the floor-ordered availability list and returns the cheapest path.
//
// Combinations are generated in lexicographic index order, so the first one
// reaching the minimum cost is kept. The work is C(n, count), which stays
// small because count is capped and this only runs when no floor holds the
// whole booking.
func bestCombination(rooms []entities.Room, count int) ([]entities.Room, error) {
	if count <= 0 || len(rooms) < count {
		return nil, errors.Internalf("cannot choose %d rooms from %d available", count, len(rooms)).
			WithMeta("requested", count).
			WithMeta("available", len(rooms))
	}

	var (
		best     []entities.Room
		bestCost int
		current  = make([]entities.Room, 0, count)
	)

	var search func(start int)
	search = func(start int) {
		if len(current) == count {
			cost := PathTravelTime(current)
			if best == nil || cost < bestCost {
				best = append([]entities.Room(nil), current...)
				bestCost = cost
			}
			return
		}

		// Stop once too few rooms remain to complete the combination.
		remaining := count - len(current)
		for i := start; i <= len(rooms)-remaining; i++ {
			current = append(current, rooms[i])
			search(i + 1)
			current = current[:len(current)-1]
		}
	}
	search(0)

	return best, nil
}
