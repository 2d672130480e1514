package v1alpha1

import (
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

// Request and response field names
const (
	FieldHotelID             = "hotel_id"
	FieldNumRooms            = "num_rooms"
	FieldGuestName           = "guest_name"
	FieldHotel               = "hotel"
	FieldBooking             = "booking"
	FieldBookingID           = "booking_id"
	FieldRooms               = "rooms"
	FieldTotalTravelTime     = "total_travel_time"
	FieldTravelTimeBreakdown = "travel_time_breakdown"
	FieldStrategy            = "strategy"
	FieldBookedAt            = "booked_at"
	FieldOccupiedCount       = "occupied_count"
	FieldTotalRooms          = "total_rooms"
	FieldUpdatedAt           = "updated_at"
)

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// intField reads a whole number. A missing field reads as zero.
func intField(req *structpb.Struct, name string) (int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, nil
	}
	if _, isNumber := v.GetKind().(*structpb.Value_NumberValue); !isNumber {
		return 0, errors.InvalidArgumentf("%s must be a number", name)
	}

	n := v.GetNumberValue()
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", name)
	}
	return int(n), nil
}

func roomToMap(r entities.Room) map[string]interface{} {
	return map[string]interface{}{
		"id":          r.ID,
		"floor":       r.Floor,
		"number":      r.Number,
		"is_occupied": r.IsOccupied,
		"is_selected": r.IsSelected,
	}
}

func hotelToMap(h *entities.Hotel) map[string]interface{} {
	floors := make([]interface{}, 0, len(h.Floors))
	for _, f := range h.Floors {
		rooms := make([]interface{}, 0, len(f.Rooms))
		for _, r := range f.Rooms {
			rooms = append(rooms, roomToMap(r))
		}
		floors = append(floors, map[string]interface{}{
			"floor_number": f.FloorNumber,
			"rooms":        rooms,
		})
	}

	return map[string]interface{}{
		"id":               h.ID,
		"floors":           floors,
		FieldOccupiedCount: h.OccupiedCount(),
		FieldTotalRooms:    h.RoomCount(),
	}
}

func bookingToMap(b *booking.Booking) map[string]interface{} {
	rooms := make([]interface{}, 0, len(b.Outcome.Rooms))
	for _, r := range b.Outcome.Rooms {
		rooms = append(rooms, roomToMap(r))
	}
	breakdown := make([]interface{}, 0, len(b.Outcome.TravelTimeBreakdown))
	for _, line := range b.Outcome.TravelTimeBreakdown {
		breakdown = append(breakdown, line)
	}

	return map[string]interface{}{
		FieldBookingID:           b.ID,
		FieldHotelID:             b.HotelID,
		FieldGuestName:           b.Outcome.GuestName,
		FieldRooms:               rooms,
		FieldTotalTravelTime:     b.Outcome.TotalTravelTime,
		FieldTravelTimeBreakdown: breakdown,
		FieldStrategy:            string(b.Strategy),
		FieldBookedAt:            b.BookedAt.UTC().Format(time.RFC3339),
	}
}

func toStruct(fields map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return s, nil
}
