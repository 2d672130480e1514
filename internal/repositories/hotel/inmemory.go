package hotel

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
)

type snapshot struct {
	hotel     *entities.Hotel
	updatedAt time.Time
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]snapshot
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return NewInMemoryWithClock(clock.New())
}

// NewInMemoryWithClock creates an in-memory repository stamping saves with c
func NewInMemoryWithClock(c clock.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]snapshot),
		clock: c,
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a hotel by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.HotelID == "" {
		return nil, errors.InvalidArgument(errHotelIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.HotelID]
	if !exists {
		return nil, errors.NotFoundf("hotel %s not found", input.HotelID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{
		Hotel:     data.hotel.Clone(),
		UpdatedAt: data.updatedAt,
	}, nil
}

// Save stores a copy of the hotel
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateHotel(input.Hotel); err != nil {
		return nil, err
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Hotel.ID] = snapshot{
		hotel:     input.Hotel.Clone(),
		updatedAt: now,
	}

	return &SaveOutput{UpdatedAt: now}, nil
}

// Delete removes a hotel
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.HotelID == "" {
		return nil, errors.InvalidArgument(errHotelIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.store[input.HotelID]
	delete(r.store, input.HotelID)

	return &DeleteOutput{Deleted: exists}, nil
}
