// Package hotel provides storage for hotel occupancy snapshots
package hotel

import (
	"context"
	"time"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=hotelmock github.com/KirkDiggler/hotel-api/internal/repositories/hotel Repository

const (
	// Error messages
	errHotelNil     = "hotel cannot be nil"
	errHotelIDEmpty = "hotel ID cannot be empty"
)

// GetInput contains parameters for loading a hotel
type GetInput struct {
	HotelID string
}

// GetOutput contains the stored snapshot
type GetOutput struct {
	Hotel     *entities.Hotel
	UpdatedAt time.Time
}

// SaveInput contains the snapshot to store
type SaveInput struct {
	Hotel *entities.Hotel
}

// SaveOutput contains the result of saving a snapshot
type SaveOutput struct {
	UpdatedAt time.Time
}

// DeleteInput contains parameters for removing a hotel
type DeleteInput struct {
	HotelID string
}

// DeleteOutput contains the result of removing a hotel
type DeleteOutput struct {
	Deleted bool
}

// Repository stores whole-building snapshots: room layout, occupancy and
// the selection highlight of the latest booking. Implementations never
// share memory with callers.
type Repository interface {
	// Get loads a snapshot; NotFound when the hotel was never saved
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save replaces the snapshot for input.Hotel.ID
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes the snapshot. Deleting a missing hotel is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

func validateHotel(h *entities.Hotel) error {
	if h == nil {
		return errors.InvalidArgument(errHotelNil)
	}
	if h.ID == "" {
		return errors.InvalidArgument(errHotelIDEmpty)
	}
	return nil
}
