package hotel_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	"github.com/KirkDiggler/hotel-api/internal/repositories/hotel"
	"github.com/KirkDiggler/hotel-api/internal/testutils"
	"github.com/KirkDiggler/hotel-api/internal/testutils/builders"
)

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(c clock.Clock) (hotel.Repository, func())

	repo    hotel.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(testNow)
	s.repo, s.cleanup = s.newRepo(s.clock)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(c clock.Clock) (hotel.Repository, func()) {
			return hotel.NewInMemoryWithClock(c), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(c clock.Clock) (hotel.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := hotel.NewRedis(&hotel.RedisConfig{Client: client, Clock: c})
			if err != nil {
				t.Fatalf("creating redis repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(c clock.Clock) (hotel.Repository, func()) {
			db, cleanup := testutils.CreateTestDB(t)
			repo, err := hotel.NewSQLite(context.Background(), &hotel.SQLiteConfig{DB: db, Clock: c})
			if err != nil {
				t.Fatalf("creating sqlite repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryTestSuite) TestGet_NotFound() {
	output, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: "missing"})
	s.Require().Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	h := builders.NewStandardHotelBuilder().
		WithOccupied(101, 305, 1007).
		WithSelected(502, 503).
		Build()

	saved, err := s.repo.Save(s.ctx, hotel.SaveInput{Hotel: h})
	s.Require().NoError(err)
	s.True(testNow.Equal(saved.UpdatedAt))

	output, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: h.ID})
	s.Require().NoError(err)
	s.Equal(h, output.Hotel)
	s.True(testNow.Equal(output.UpdatedAt))
	s.Equal(entities.StandardFloorCount*entities.StandardRoomsPerFloor-3, output.Hotel.RoomCount())
	s.Equal(5, output.Hotel.OccupiedCount())

	selected, ok := output.Hotel.FindRoom(502)
	s.Require().True(ok)
	s.True(selected.IsSelected)
}

func (s *RepositoryTestSuite) TestSave_ReplacesSnapshot() {
	h := builders.NewStandardHotelBuilder().WithOccupied(101, 102).Build()
	_, err := s.repo.Save(s.ctx, hotel.SaveInput{Hotel: h})
	s.Require().NoError(err)

	s.clock.Advance(time.Minute)
	replacement := builders.NewHotelBuilder().WithFloor(1, 3).WithSelected(103).Build()
	_, err = s.repo.Save(s.ctx, hotel.SaveInput{Hotel: replacement})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: h.ID})
	s.Require().NoError(err)
	s.Equal(replacement, output.Hotel)
	s.True(testNow.Add(time.Minute).Equal(output.UpdatedAt))
}

func (s *RepositoryTestSuite) TestSnapshotsAreCopies() {
	h := builders.NewStandardHotelBuilder().Build()
	_, err := s.repo.Save(s.ctx, hotel.SaveInput{Hotel: h})
	s.Require().NoError(err)

	// Changing the saved value or a loaded one must not reach the store.
	h.Floors[0].Rooms[0].IsOccupied = true

	first, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: h.ID})
	s.Require().NoError(err)
	s.False(first.Hotel.Floors[0].Rooms[0].IsOccupied)
	first.Hotel.Floors[0].Rooms[1].IsOccupied = true

	second, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: h.ID})
	s.Require().NoError(err)
	s.Equal(0, second.Hotel.OccupiedCount())
}

func (s *RepositoryTestSuite) TestHotelsAreIndependent() {
	first := builders.NewStandardHotelBuilder().WithID("first").WithFloorOccupied(1).Build()
	second := builders.NewStandardHotelBuilder().WithID("second").Build()

	_, err := s.repo.Save(s.ctx, hotel.SaveInput{Hotel: first})
	s.Require().NoError(err)
	_, err = s.repo.Save(s.ctx, hotel.SaveInput{Hotel: second})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, hotel.GetInput{HotelID: "first"})
	s.Require().NoError(err)
	s.Equal(10, output.Hotel.OccupiedCount())

	output, err = s.repo.Get(s.ctx, hotel.GetInput{HotelID: "second"})
	s.Require().NoError(err)
	s.Equal(0, output.Hotel.OccupiedCount())
}

func (s *RepositoryTestSuite) TestDelete() {
	h := builders.NewStandardHotelBuilder().Build()
	_, err := s.repo.Save(s.ctx, hotel.SaveInput{Hotel: h})
	s.Require().NoError(err)

	output, err := s.repo.Delete(s.ctx, hotel.DeleteInput{HotelID: h.ID})
	s.Require().NoError(err)
	s.True(output.Deleted)

	_, err = s.repo.Get(s.ctx, hotel.GetInput{HotelID: h.ID})
	s.True(errors.IsNotFound(err))

	output, err = s.repo.Delete(s.ctx, hotel.DeleteInput{HotelID: h.ID})
	s.Require().NoError(err)
	s.False(output.Deleted)
}

func (s *RepositoryTestSuite) TestValidation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{
			name: "get without id",
			call: func() error {
				_, err := s.repo.Get(s.ctx, hotel.GetInput{})
				return err
			},
		},
		{
			name: "save nil hotel",
			call: func() error {
				_, err := s.repo.Save(s.ctx, hotel.SaveInput{})
				return err
			},
		},
		{
			name: "save hotel without id",
			call: func() error {
				_, err := s.repo.Save(s.ctx, hotel.SaveInput{Hotel: &entities.Hotel{}})
				return err
			},
		},
		{
			name: "delete without id",
			call: func() error {
				_, err := s.repo.Delete(s.ctx, hotel.DeleteInput{})
				return err
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.call()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
