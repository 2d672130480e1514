// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/hotel-api/internal/entities"
)

// TestHotelID is the hotel ID used by builders unless overridden
const TestHotelID = "hotel-test-001"

// HotelBuilder provides a fluent interface for building test Hotel snapshots
type HotelBuilder struct {
	hotel *entities.Hotel
}

// NewHotelBuilder creates a builder for a hotel without floors
func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		hotel: &entities.Hotel{ID: TestHotelID},
	}
}

// NewStandardHotelBuilder starts from the standard ten floor layout, all rooms free
func NewStandardHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		hotel: entities.NewStandardHotel(TestHotelID),
	}
}

// WithID sets the hotel ID
func (b *HotelBuilder) WithID(id string) *HotelBuilder {
	b.hotel.ID = id
	return b
}

// WithFloor appends a floor of free rooms numbered 1..roomCount
func (b *HotelBuilder) WithFloor(floorNumber, roomCount int) *HotelBuilder {
	b.hotel.Floors = append(b.hotel.Floors, entities.NewFloor(floorNumber, roomCount))
	return b
}

// WithOccupied marks the given rooms occupied
func (b *HotelBuilder) WithOccupied(roomIDs ...int) *HotelBuilder {
	occupied := toSet(roomIDs)
	b.hotel.EachRoom(func(r *entities.Room) {
		if occupied[r.ID] {
			r.IsOccupied = true
		}
	})
	return b
}

// WithSelected marks the given rooms occupied and highlighted, as a previous booking would
func (b *HotelBuilder) WithSelected(roomIDs ...int) *HotelBuilder {
	selected := toSet(roomIDs)
	b.hotel.EachRoom(func(r *entities.Room) {
		if selected[r.ID] {
			r.IsOccupied = true
			r.IsSelected = true
		}
	})
	return b
}

// WithFloorOccupied marks every room on the floor occupied
func (b *HotelBuilder) WithFloorOccupied(floorNumber int) *HotelBuilder {
	b.hotel.EachRoom(func(r *entities.Room) {
		if r.Floor == floorNumber {
			r.IsOccupied = true
		}
	})
	return b
}

// WithOnlyFree marks every room occupied except the given ones
func (b *HotelBuilder) WithOnlyFree(roomIDs ...int) *HotelBuilder {
	free := toSet(roomIDs)
	b.hotel.EachRoom(func(r *entities.Room) {
		r.IsOccupied = !free[r.ID]
	})
	return b
}

// Build returns a copy of the built hotel so the builder can be reused
func (b *HotelBuilder) Build() *entities.Hotel {
	return b.hotel.Clone()
}

func toSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
