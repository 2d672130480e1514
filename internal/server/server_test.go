package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hotel-api/internal/engine"
	apperrors "github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/handlers/health"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
	bookingmock "github.com/KirkDiggler/hotel-api/internal/orchestrators/booking/mock"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	"github.com/KirkDiggler/hotel-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hotel-api/internal/repositories/hotel"
)

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

type ServerTestSuite struct {
	suite.Suite
	logger  *slog.Logger
	broker  *Broker
	handler http.Handler
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	s.broker = NewBroker()

	eng, err := engine.New(&engine.Config{})
	s.Require().NoError(err)

	service, err := booking.NewOrchestrator(&booking.Config{
		HotelRepo:    hotel.NewInMemoryWithClock(clock.NewFixed(testNow)),
		Engine:       eng,
		IDGenerator:  idgen.NewSequential("booking"),
		DiceRoller:   dice.DefaultRoller,
		Publisher:    s.broker,
		Clock:        clock.NewFixed(testNow),
		SeedHotelIDs: []string{"default"},
	})
	s.Require().NoError(err)

	srv, err := New(&Config{
		Addr:           ":0",
		Logger:         s.logger,
		BookingService: service,
		Broker:         s.broker,
		Mount: func(r chi.Router) {
			r.Mount("/healthz", health.NewHandler(s.logger, map[string]health.Checker{
				"store": health.CheckerFunc(func(context.Context) error { return nil }),
			}).Routes())
		},
	})
	s.Require().NoError(err)
	s.handler = srv.Handler()
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](s *ServerTestSuite, rec *httptest.ResponseRecorder) T {
	var v T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *ServerTestSuite) TestNewRequiresDependencies() {
	_, err := New(&Config{Addr: ":0"})
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))

	_, err = New(nil)
	s.Error(err)
}

func (s *ServerTestSuite) TestGetHotelSeedsStandardLayout() {
	rec := s.do(http.MethodGet, "/api/hotels/default", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "application/json")

	resp := decode[HotelResponse](s, rec)
	s.Equal("default", resp.ID)
	s.Len(resp.Floors, 10)
	s.Equal(97, resp.TotalRooms)
	s.Equal(0, resp.OccupiedCount)
	s.Require().NotNil(resp.UpdatedAt)
	s.True(testNow.Equal(*resp.UpdatedAt))

	top := resp.Floors[9]
	s.Equal(10, top.FloorNumber)
	s.Len(top.Rooms, 7)
	s.Equal(1007, top.Rooms[6].ID)
}

func (s *ServerTestSuite) TestBookRooms() {
	rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":3,"guestName":"Ada"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	resp := decode[BookRoomsResponse](s, rec)
	s.Equal("booking_1", resp.Booking.BookingID)
	s.Equal("default", resp.Booking.HotelID)
	s.Equal("Ada", resp.Booking.GuestName)
	s.Equal(string(engine.StrategySameFloor), resp.Booking.Strategy)
	s.Equal(2, resp.Booking.TotalTravelTime)
	s.Equal([]string{
		"From Room 101 to Room 102: 1 min (1 rooms) = 1 min",
		"From Room 102 to Room 103: 1 min (1 rooms) = 1 min",
	}, resp.Booking.TravelTimeBreakdown)
	s.True(testNow.Equal(resp.Booking.BookedAt))

	ids := make([]int, 0, len(resp.Booking.Rooms))
	for _, r := range resp.Booking.Rooms {
		ids = append(ids, r.ID)
		s.True(r.IsOccupied)
		s.True(r.IsSelected)
	}
	s.Equal([]int{101, 102, 103}, ids)
	s.Equal(3, resp.Hotel.OccupiedCount)
}

func (s *ServerTestSuite) TestUnknownHotelIsNotFound() {
	rec := s.do(http.MethodGet, "/api/hotels/elsewhere", "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("hotel elsewhere not found", decode[ErrorResponse](s, rec).Error)

	rec = s.do(http.MethodPost, "/api/hotels/elsewhere/bookings", `{"numRooms":1,"guestName":"Ada"}`)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestBookRoomsSingleRoomHasEmptyBreakdown() {
	rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":1,"guestName":"Ada"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"travelTimeBreakdown":[]`)
}

func (s *ServerTestSuite) TestBookRoomsRejectsBadBody() {
	for name, body := range map[string]string{
		"malformed":     `{"numRooms":`,
		"unknown field": `{"numRooms":2,"guestName":"Ada","vip":true}`,
		"wrong type":    `{"numRooms":"two","guestName":"Ada"}`,
	} {
		s.Run(name, func() {
			rec := s.do(http.MethodPost, "/api/hotels/default/bookings", body)
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("invalid request body", decode[ErrorResponse](s, rec).Error)
		})
	}
}

func (s *ServerTestSuite) TestBookRoomsInvalidCount() {
	rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":6,"guestName":"Ada"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("number of rooms must be between 1 and 5", decode[ErrorResponse](s, rec).Error)
}

func (s *ServerTestSuite) TestBookRoomsMissingGuestName() {
	rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":2,"guestName":"  "}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestBookRoomsWhenFull() {
	for i := 0; i < 19; i++ {
		rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":5,"guestName":"Ada"}`)
		s.Require().Equal(http.StatusCreated, rec.Code)
	}
	rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":2,"guestName":"Ada"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":1,"guestName":"Ada"}`)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("not enough available rooms: only 0 rooms available", decode[ErrorResponse](s, rec).Error)
}

func (s *ServerTestSuite) TestResetBookings() {
	rec := s.do(http.MethodPost, "/api/hotels/default/bookings", `{"numRooms":4,"guestName":"Ada"}`)
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/hotels/default/reset", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[HotelResponse](s, rec)
	s.Equal(0, resp.OccupiedCount)
	for _, f := range resp.Floors {
		for _, r := range f.Rooms {
			s.False(r.IsSelected)
		}
	}
}

func (s *ServerTestSuite) TestRandomizeOccupancy() {
	rec := s.do(http.MethodPost, "/api/hotels/default/randomize", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	resp := decode[RandomizeResponse](s, rec)
	s.Equal(resp.OccupiedCount, resp.Hotel.OccupiedCount)
	s.Equal(97, resp.Hotel.TotalRooms)

	occupied := 0
	for _, f := range resp.Hotel.Floors {
		for _, r := range f.Rooms {
			if r.IsOccupied {
				occupied++
			}
		}
	}
	s.Equal(resp.OccupiedCount, occupied)
}

func (s *ServerTestSuite) TestHealthz() {
	rec := s.do(http.MethodGet, "/healthz", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"store":{"status":"ok"}}`, rec.Body.String())
}

func (s *ServerTestSuite) TestDocs() {
	rec := s.do(http.MethodGet, "/docs/", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Type"), "text/html")
	s.Contains(rec.Body.String(), "/openapi.json")
}

func (s *ServerTestSuite) TestEventsStream() {
	ts := httptest.NewServer(s.handler)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/hotels/default/events", nil)
	s.Require().NoError(err)
	resp, err := ts.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("text/event-stream", resp.Header.Get("Content-Type"))
	s.Equal(1, s.broker.SubscriberCount("default"))

	post, err := http.Post(ts.URL+"/api/hotels/default/bookings", "application/json",
		bytes.NewBufferString(`{"numRooms":2,"guestName":"Grace"}`))
	s.Require().NoError(err)
	post.Body.Close()
	s.Require().Equal(http.StatusCreated, post.StatusCode)

	reader := bufio.NewReader(resp.Body)
	var eventLine, dataLine string
	for dataLine == "" {
		line, err := reader.ReadString('\n')
		s.Require().NoError(err)
		switch {
		case strings.HasPrefix(line, "event: "):
			eventLine = strings.TrimSpace(line)
		case strings.HasPrefix(line, "data: "):
			dataLine = strings.TrimSpace(strings.TrimPrefix(line, "data: "))
		}
	}
	s.Equal("event: occupancy", eventLine)

	var event booking.Event
	s.Require().NoError(json.Unmarshal([]byte(dataLine), &event))
	s.Equal(booking.EventRoomsBooked, event.Type)
	s.Equal("default", event.HotelID)
	s.Equal("Grace", event.GuestName)
	s.Equal([]int{101, 102}, event.RoomIDs)
	s.Equal(2, event.OccupiedCount)
	s.Equal(97, event.TotalRooms)
}

func TestWriteServiceErrorHidesInternalDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := bookingmock.NewMockService(ctrl)
	service.EXPECT().
		GetHotel(gomock.Any(), &booking.GetHotelInput{HotelID: "default"}).
		Return(nil, apperrors.Internal("redis: connection refused"))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := New(&Config{
		Addr:           ":0",
		Logger:         logger,
		BookingService: service,
		Broker:         NewBroker(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotels/default", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if got := rec.Body.String(); strings.Contains(got, "redis") {
		t.Fatalf("body leaks internal error: %s", got)
	}
}

func TestWriteServiceErrorNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := bookingmock.NewMockService(ctrl)
	service.EXPECT().
		ResetBookings(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NotFound("hotel missing not found"))

	srv, err := New(&Config{
		Addr:           ":0",
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		BookingService: service,
		Broker:         NewBroker(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/hotels/missing/reset", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "hotel missing not found") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
