package engine

import (
	"context"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
)

// DefaultMaxRoomsPerBooking bounds the cross-floor search, which is
// combinatorial in the requested room count.
const DefaultMaxRoomsPerBooking = 5

// Config holds the engine settings
type Config struct {
	// MaxRoomsPerBooking defaults to DefaultMaxRoomsPerBooking when zero
	MaxRoomsPerBooking int
}

// Validate ensures the settings are usable
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	if cfg.MaxRoomsPerBooking < 0 {
		return errors.InvalidArgumentf("max rooms per booking cannot be negative: %d", cfg.MaxRoomsPerBooking)
	}
	return nil
}

type engine struct {
	maxRooms int
}

// New creates an allocation engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxRooms := cfg.MaxRoomsPerBooking
	if maxRooms == 0 {
		maxRooms = DefaultMaxRoomsPerBooking
	}

	return &engine{maxRooms: maxRooms}, nil
}

// Ensure engine implements Engine
var _ Engine = (*engine)(nil)

func (e *engine) MaxRoomsPerBooking() int {
	return e.maxRooms
}

func (e *engine) AllocateRooms(_ context.Context, input *AllocateRoomsInput) (*AllocateRoomsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Hotel == nil {
		return nil, errors.InvalidArgument("hotel is required")
	}

	rooms, strategy, err := selectRooms(input.Hotel, input.Request.NumRooms, e.maxRooms)
	if err != nil {
		return nil, err
	}

	return &AllocateRoomsOutput{
		Outcome:  BuildOutcome(rooms, input.Request.GuestName),
		Strategy: strategy,
		Legs:     Legs(rooms),
	}, nil
}

// Allocate runs the allocation with an explicit room limit and no engine value
func Allocate(hotel *entities.Hotel, request entities.BookingRequest, maxRooms int) (*entities.BookingOutcome, error) {
	rooms, _, err := selectRooms(hotel, request.NumRooms, maxRooms)
	if err != nil {
		return nil, err
	}
	return BuildOutcome(rooms, request.GuestName), nil
}

// selectRooms validates the count, then prefers a single floor and only
// searches across floors when no floor can hold the whole booking.
func selectRooms(hotel *entities.Hotel, numRooms, maxRooms int) ([]entities.Room, Strategy, error) {
	if numRooms <= 0 || numRooms > maxRooms {
		return nil, "", invalidRequest(numRooms, maxRooms)
	}

	available := AvailableRooms(hotel)
	if len(available) < numRooms {
		return nil, "", insufficientAvailability(numRooms, len(available))
	}

	// A same-floor selection wins even when a cheaper cross-floor one exists.
	if rooms, ok := bestSameFloor(groupByFloor(available), numRooms); ok {
		return rooms, StrategySameFloor, nil
	}

	rooms, err := bestCombination(available, numRooms)
	if err != nil {
		return nil, "", err
	}
	return rooms, StrategyCrossFloor, nil
}

func invalidRequest(requested, maxRooms int) *errors.Error {
	return errors.InvalidArgumentf("number of rooms must be between 1 and %d", maxRooms).
		WithMeta("requested", requested).
		WithMeta("min", 1).
		WithMeta("max", maxRooms)
}

func insufficientAvailability(requested, available int) *errors.Error {
	return errors.ResourceExhaustedf("not enough available rooms: only %d rooms available", available).
		WithMeta("requested", requested).
		WithMeta("available", available)
}

// IsInvalidRequest reports whether err rejects the requested room count or input
func IsInvalidRequest(err error) bool {
	return errors.IsInvalidArgument(err)
}

// IsInsufficientAvailability reports whether err means the hotel is too full
func IsInsufficientAvailability(err error) bool {
	return errors.IsResourceExhausted(err)
}
