// Package booking implements the booking orchestrator: it loads a hotel,
// asks the allocation engine for rooms and records the result.
package booking

//go:generate mockgen -destination=mock/mock_service.go -package=bookingmock github.com/KirkDiggler/hotel-api/internal/orchestrators/booking Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/hotel-api/internal/engine"
	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	"github.com/KirkDiggler/hotel-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hotel-api/internal/repositories/hotel"
)

const (
	// occupancyDie is rolled once per room when simulating occupancy
	occupancyDie = 10
	// occupiedFrom is the lowest roll that marks a room occupied (four in ten)
	occupiedFrom = 7
)

// Service defines the interface for booking operations
type Service interface {
	// GetHotel returns the current snapshot, creating the standard building on first use
	GetHotel(ctx context.Context, input *GetHotelInput) (*GetHotelOutput, error)

	// BookRooms allocates rooms for a guest and marks them occupied
	BookRooms(ctx context.Context, input *BookRoomsInput) (*BookRoomsOutput, error)

	// ResetBookings frees every room
	ResetBookings(ctx context.Context, input *ResetBookingsInput) (*ResetBookingsOutput, error)

	// RandomizeOccupancy replaces occupancy with a random pattern
	RandomizeOccupancy(ctx context.Context, input *RandomizeOccupancyInput) (*RandomizeOccupancyOutput, error)
}

// Config holds the dependencies for the booking orchestrator
type Config struct {
	HotelRepo   hotel.Repository
	Engine      engine.Engine
	IDGenerator idgen.Generator
	DiceRoller  dice.Roller
	Publisher   Publisher
	Clock       clock.Clock

	// SeedHotelIDs lists the hotels created with the standard layout on
	// first use. Any other unknown hotel is NotFound.
	SeedHotelIDs []string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.HotelRepo == nil {
		vb.RequiredField("HotelRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	hotelRepo  hotel.Repository
	engine     engine.Engine
	idGen      idgen.Generator
	diceRoller dice.Roller
	publisher  Publisher
	clock      clock.Clock
	seedable   map[string]bool

	// One lock per hotel: computing an allocation and recording it must not
	// interleave with another change to the same building. Entries live only
	// while someone holds or waits for them.
	mu    sync.Mutex
	locks map[string]*hotelLock
}

type hotelLock struct {
	mu   sync.Mutex
	refs int
}

// NewOrchestrator creates a new booking orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		hotelRepo:  cfg.HotelRepo,
		engine:     cfg.Engine,
		idGen:      cfg.IDGenerator,
		diceRoller: cfg.DiceRoller,
		publisher:  cfg.Publisher,
		clock:      cfg.Clock,
		seedable:   make(map[string]bool, len(cfg.SeedHotelIDs)),
		locks:      make(map[string]*hotelLock),
	}
	for _, id := range cfg.SeedHotelIDs {
		o.seedable[id] = true
	}

	if o.diceRoller == nil {
		o.diceRoller = dice.DefaultRoller
	}
	if o.publisher == nil {
		o.publisher = nopPublisher{}
	}
	if o.clock == nil {
		o.clock = clock.New()
	}

	return o, nil
}

func (o *orchestrator) lock(hotelID string) func() {
	o.mu.Lock()
	l, ok := o.locks[hotelID]
	if !ok {
		l = &hotelLock{}
		o.locks[hotelID] = l
	}
	l.refs++
	o.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		o.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(o.locks, hotelID)
		}
		o.mu.Unlock()
	}
}

// load returns the stored hotel or seeds the standard building for a
// seedable ID
func (o *orchestrator) load(ctx context.Context, hotelID string) (*hotel.GetOutput, error) {
	output, err := o.hotelRepo.Get(ctx, hotel.GetInput{HotelID: hotelID})
	if err == nil {
		return output, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrapf(err, "failed to load hotel %s", hotelID)
	}
	if !o.seedable[hotelID] {
		return nil, errors.NotFoundf("hotel %s not found", hotelID)
	}

	seeded := entities.NewStandardHotel(hotelID)
	saved, err := o.hotelRepo.Save(ctx, hotel.SaveInput{Hotel: seeded})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to seed hotel %s", hotelID)
	}

	slog.Info("Seeded standard hotel",
		"hotel_id", hotelID,
		"rooms", seeded.RoomCount(),
	)

	return &hotel.GetOutput{Hotel: seeded, UpdatedAt: saved.UpdatedAt}, nil
}

func (o *orchestrator) save(ctx context.Context, h *entities.Hotel) error {
	if _, err := o.hotelRepo.Save(ctx, hotel.SaveInput{Hotel: h}); err != nil {
		return errors.Wrapf(err, "failed to save hotel %s", h.ID)
	}
	return nil
}

func (o *orchestrator) publish(event Event, h *entities.Hotel) {
	event.HotelID = h.ID
	event.OccupiedCount = h.OccupiedCount()
	event.TotalRooms = h.RoomCount()
	event.At = o.clock.Now()
	o.publisher.Publish(event)
}

// GetHotel returns the current snapshot
func (o *orchestrator) GetHotel(ctx context.Context, input *GetHotelInput) (*GetHotelOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HotelID == "" {
		return nil, errors.InvalidArgument("hotel ID is required")
	}

	unlock := o.lock(input.HotelID)
	defer unlock()

	output, err := o.load(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}

	return &GetHotelOutput{
		Hotel:     output.Hotel,
		UpdatedAt: output.UpdatedAt,
	}, nil
}

// BookRooms allocates rooms, marks them occupied and highlights them as the
// latest booking. Rooms highlighted by an earlier booking stay occupied.
func (o *orchestrator) BookRooms(ctx context.Context, input *BookRoomsInput) (*BookRoomsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("hotel_id", input.HotelID, vb)
	errors.ValidateRequired("guest_name", input.GuestName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}
	guestName := strings.TrimSpace(input.GuestName)

	unlock := o.lock(input.HotelID)
	defer unlock()

	current, err := o.load(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}
	h := current.Hotel

	allocated, err := o.engine.AllocateRooms(ctx, &engine.AllocateRoomsInput{
		Hotel: h,
		Request: entities.BookingRequest{
			NumRooms:  input.NumRooms,
			GuestName: guestName,
		},
	})
	if err != nil {
		slog.Info("Booking rejected",
			"hotel_id", input.HotelID,
			"num_rooms", input.NumRooms,
			"reason", errors.GetMessage(err),
		)
		return nil, err
	}

	h.EachRoom(func(r *entities.Room) {
		r.IsSelected = false
	})
	// The outcome carries copies taken before the rooms were marked, so the
	// booking gets its own slice with the updated flags.
	outcome := *allocated.Outcome
	outcome.Rooms = make([]entities.Room, len(allocated.Outcome.Rooms))
	for i, booked := range allocated.Outcome.Rooms {
		room, ok := h.FindRoom(booked.ID)
		if !ok {
			return nil, errors.Internalf("allocated room %d does not exist in hotel %s", booked.ID, h.ID)
		}
		room.IsOccupied = true
		room.IsSelected = true
		outcome.Rooms[i] = *room
	}

	if err := o.save(ctx, h); err != nil {
		return nil, err
	}

	booking := &Booking{
		ID:       o.idGen.Generate(),
		HotelID:  h.ID,
		Outcome:  &outcome,
		Strategy: allocated.Strategy,
		BookedAt: o.clock.Now(),
	}

	slog.Info("Rooms booked",
		"hotel_id", h.ID,
		"booking_id", booking.ID,
		"rooms", outcome.RoomIDs(),
		"strategy", allocated.Strategy,
		"total_travel_time", outcome.TotalTravelTime,
	)

	o.publish(Event{
		Type:      EventRoomsBooked,
		BookingID: booking.ID,
		GuestName: guestName,
		RoomIDs:   outcome.RoomIDs(),
	}, h)

	return &BookRoomsOutput{
		Booking: booking,
		Hotel:   h,
	}, nil
}

// ResetBookings frees and unhighlights every room
func (o *orchestrator) ResetBookings(ctx context.Context, input *ResetBookingsInput) (*ResetBookingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HotelID == "" {
		return nil, errors.InvalidArgument("hotel ID is required")
	}

	unlock := o.lock(input.HotelID)
	defer unlock()

	current, err := o.load(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}
	h := current.Hotel

	h.EachRoom(func(r *entities.Room) {
		r.IsOccupied = false
		r.IsSelected = false
	})

	if err := o.save(ctx, h); err != nil {
		return nil, err
	}

	slog.Info("Bookings reset", "hotel_id", h.ID)
	o.publish(Event{Type: EventBookingsReset}, h)

	return &ResetBookingsOutput{Hotel: h}, nil
}

// RandomizeOccupancy rolls a d10 per room; 7 or more means occupied
func (o *orchestrator) RandomizeOccupancy(ctx context.Context, input *RandomizeOccupancyInput) (*RandomizeOccupancyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.HotelID == "" {
		return nil, errors.InvalidArgument("hotel ID is required")
	}

	unlock := o.lock(input.HotelID)
	defer unlock()

	current, err := o.load(ctx, input.HotelID)
	if err != nil {
		return nil, err
	}
	h := current.Hotel

	rolls, err := o.diceRoller.RollN(h.RoomCount(), occupancyDie)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll occupancy")
	}
	if len(rolls) != h.RoomCount() {
		return nil, errors.Internalf("expected %d occupancy rolls, got %d", h.RoomCount(), len(rolls))
	}

	i := 0
	h.EachRoom(func(r *entities.Room) {
		r.IsOccupied = rolls[i] >= occupiedFrom
		r.IsSelected = false
		i++
	})

	if err := o.save(ctx, h); err != nil {
		return nil, err
	}

	occupied := h.OccupiedCount()
	slog.Info("Occupancy randomized",
		"hotel_id", h.ID,
		"occupied", occupied,
		"total", h.RoomCount(),
	)
	o.publish(Event{Type: EventOccupancyRandomized}, h)

	return &RandomizeOccupancyOutput{
		Hotel:         h,
		OccupiedCount: occupied,
	}, nil
}
