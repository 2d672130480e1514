package booking_test

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hotel-api/internal/engine"
	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	"github.com/KirkDiggler/hotel-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hotel-api/internal/repositories/hotel"
)

type OrchestratorIntegrationTestSuite struct {
	suite.Suite
	repo      *hotel.InMemoryRepository
	publisher *recordingPublisher
	service   booking.Service
	ctx       context.Context
}

func TestOrchestratorIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorIntegrationTestSuite))
}

func (s *OrchestratorIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = hotel.NewInMemoryWithClock(clock.NewFixed(testNow))
	s.publisher = &recordingPublisher{}

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	service, err := booking.NewOrchestrator(&booking.Config{
		HotelRepo:    s.repo,
		Engine:       eng,
		IDGenerator:  idgen.NewUUID("booking"),
		DiceRoller:   dice.DefaultRoller,
		Publisher:    s.publisher,
		SeedHotelIDs: []string{"default", "lobby"},
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *OrchestratorIntegrationTestSuite) book(numRooms int) (*booking.BookRoomsOutput, error) {
	return s.service.BookRooms(s.ctx, &booking.BookRoomsInput{
		HotelID:   "default",
		NumRooms:  numRooms,
		GuestName: "Guest",
	})
}

func (s *OrchestratorIntegrationTestSuite) TestSuccessiveBookings() {
	first, err := s.book(3)
	s.Require().NoError(err)
	s.Equal([]int{101, 102, 103}, first.Booking.Outcome.RoomIDs())

	for _, room := range first.Booking.Outcome.Rooms {
		s.True(room.IsOccupied, "room %d", room.ID)
		s.True(room.IsSelected, "room %d", room.ID)
	}

	second, err := s.book(2)
	s.Require().NoError(err)
	s.Equal([]int{104, 105}, second.Booking.Outcome.RoomIDs())
	for _, room := range second.Booking.Outcome.Rooms {
		s.True(room.IsOccupied, "room %d", room.ID)
		s.True(room.IsSelected, "room %d", room.ID)
	}
	s.NotEqual(first.Booking.ID, second.Booking.ID)

	stored, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: "default"})
	s.Require().NoError(err)
	s.Equal(5, stored.Hotel.OccupiedCount())

	// Only the latest booking stays highlighted.
	for _, id := range []int{101, 102, 103} {
		room, _ := stored.Hotel.FindRoom(id)
		s.False(room.IsSelected)
	}
	for _, id := range []int{104, 105} {
		room, _ := stored.Hotel.FindRoom(id)
		s.True(room.IsSelected)
	}
}

func (s *OrchestratorIntegrationTestSuite) TestFillAndReset() {
	booked := 0
	for {
		_, err := s.book(5)
		if err != nil {
			s.Contains(err.Error(), "not enough available rooms")
			break
		}
		booked += 5
	}
	s.Equal(95, booked)

	// Two rooms are left on the top floor.
	output, err := s.book(2)
	s.Require().NoError(err)
	s.Equal([]int{1006, 1007}, output.Booking.Outcome.RoomIDs())

	_, err = s.book(1)
	s.Contains(err.Error(), "only 0 rooms available")

	reset, err := s.service.ResetBookings(s.ctx, &booking.ResetBookingsInput{HotelID: "default"})
	s.Require().NoError(err)
	s.Equal(0, reset.Hotel.OccupiedCount())

	again, err := s.book(1)
	s.Require().NoError(err)
	s.Equal([]int{101}, again.Booking.Outcome.RoomIDs())
}

func (s *OrchestratorIntegrationTestSuite) TestRandomizeThenBook() {
	randomized, err := s.service.RandomizeOccupancy(s.ctx, &booking.RandomizeOccupancyInput{HotelID: "default"})
	s.Require().NoError(err)
	s.Equal(randomized.Hotel.OccupiedCount(), randomized.OccupiedCount)
	s.Equal(97, randomized.Hotel.RoomCount())

	free := randomized.Hotel.RoomCount() - randomized.OccupiedCount
	if free == 0 {
		s.T().Skip("every room was rolled occupied")
	}

	output, err := s.book(1)
	s.Require().NoError(err)
	room, ok := randomized.Hotel.FindRoom(output.Booking.Outcome.Rooms[0].ID)
	s.Require().True(ok)
	s.False(room.IsOccupied)
}

func (s *OrchestratorIntegrationTestSuite) TestConcurrentBookingsNeverOverlap() {
	const workers = 19

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []*booking.BookRoomsOutput
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			output, err := s.book(5)
			if err != nil {
				return
			}
			mu.Lock()
			results = append(results, output)
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.Len(results, workers)

	seen := make(map[int]bool)
	for _, result := range results {
		for _, room := range result.Booking.Outcome.Rooms {
			s.False(seen[room.ID], "room %d booked twice", room.ID)
			seen[room.ID] = true
		}
	}
	s.Len(seen, workers*5)

	events := len(s.publisher.events)
	s.Equal(workers, events)
}

func (s *OrchestratorIntegrationTestSuite) TestGetHotelSeedsOnce() {
	first, err := s.service.GetHotel(s.ctx, &booking.GetHotelInput{HotelID: "lobby"})
	s.Require().NoError(err)
	s.Equal(entities.NewStandardHotel("lobby"), first.Hotel)

	first.Hotel.Floors[0].Rooms[0].IsOccupied = true

	second, err := s.service.GetHotel(s.ctx, &booking.GetHotelInput{HotelID: "lobby"})
	s.Require().NoError(err)
	s.Equal(0, second.Hotel.OccupiedCount())
}

func (s *OrchestratorIntegrationTestSuite) TestUnknownHotelIsNotStored() {
	_, err := s.service.GetHotel(s.ctx, &booking.GetHotelInput{HotelID: "elsewhere"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.service.BookRooms(s.ctx, &booking.BookRoomsInput{HotelID: "elsewhere", NumRooms: 1, GuestName: "Guest"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, hotel.GetInput{HotelID: "elsewhere"})
	s.True(errors.IsNotFound(err))
	s.Empty(s.publisher.events)
}
