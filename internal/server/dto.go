package server

import (
	"time"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

type RoomResponse struct {
	ID         int  `json:"id"`
	Floor      int  `json:"floor"`
	Number     int  `json:"number"`
	IsOccupied bool `json:"isOccupied"`
	IsSelected bool `json:"isSelected"`
}

type FloorResponse struct {
	FloorNumber int            `json:"floorNumber"`
	Rooms       []RoomResponse `json:"rooms"`
}

type HotelResponse struct {
	ID            string          `json:"id"`
	Floors        []FloorResponse `json:"floors"`
	OccupiedCount int             `json:"occupiedCount"`
	TotalRooms    int             `json:"totalRooms"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

type BookRoomsRequest struct {
	NumRooms  int    `json:"numRooms" minimum:"1" required:"true"`
	GuestName string `json:"guestName" minLength:"1" required:"true"`
}

type BookingResponse struct {
	BookingID           string         `json:"bookingId"`
	HotelID             string         `json:"hotelId"`
	GuestName           string         `json:"guestName"`
	Rooms               []RoomResponse `json:"rooms"`
	TotalTravelTime     int            `json:"totalTravelTime"`
	TravelTimeBreakdown []string       `json:"travelTimeBreakdown"`
	Strategy            string         `json:"strategy"`
	BookedAt            time.Time      `json:"bookedAt"`
}

type BookRoomsResponse struct {
	Booking BookingResponse `json:"booking"`
	Hotel   HotelResponse   `json:"hotel"`
}

type RandomizeResponse struct {
	Hotel         HotelResponse `json:"hotel"`
	OccupiedCount int           `json:"occupiedCount"`
}

func newRoomResponse(r entities.Room) RoomResponse {
	return RoomResponse{
		ID:         r.ID,
		Floor:      r.Floor,
		Number:     r.Number,
		IsOccupied: r.IsOccupied,
		IsSelected: r.IsSelected,
	}
}

func newRoomResponses(rooms []entities.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, newRoomResponse(r))
	}
	return out
}

func newHotelResponse(h *entities.Hotel) HotelResponse {
	floors := make([]FloorResponse, 0, len(h.Floors))
	for _, f := range h.Floors {
		floors = append(floors, FloorResponse{
			FloorNumber: f.FloorNumber,
			Rooms:       newRoomResponses(f.Rooms),
		})
	}

	return HotelResponse{
		ID:            h.ID,
		Floors:        floors,
		OccupiedCount: h.OccupiedCount(),
		TotalRooms:    h.RoomCount(),
	}
}

func newBookingResponse(b *booking.Booking) BookingResponse {
	breakdown := b.Outcome.TravelTimeBreakdown
	if breakdown == nil {
		breakdown = []string{}
	}

	return BookingResponse{
		BookingID:           b.ID,
		HotelID:             b.HotelID,
		GuestName:           b.Outcome.GuestName,
		Rooms:               newRoomResponses(b.Outcome.Rooms),
		TotalTravelTime:     b.Outcome.TotalTravelTime,
		TravelTimeBreakdown: breakdown,
		Strategy:            string(b.Strategy),
		BookedAt:            b.BookedAt,
	}
}
