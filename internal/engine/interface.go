// Package engine selects rooms for a booking request so that the guest walks
// as little as possible between them.
//
// The engine is pure: it reads a hotel snapshot and returns a new outcome.
// Marking the chosen rooms occupied is the caller's job, and callers that
// share a hotel must serialize allocate-then-apply themselves.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/hotel-api/internal/engine Engine

import (
	"context"
)

// Engine allocates rooms for booking requests
type Engine interface {
	// AllocateRooms picks rooms for the request from the hotel snapshot
	AllocateRooms(ctx context.Context, input *AllocateRoomsInput) (*AllocateRoomsOutput, error)

	// MaxRoomsPerBooking is the largest room count a single request may ask for
	MaxRoomsPerBooking() int
}
