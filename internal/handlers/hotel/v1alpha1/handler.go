// Package v1alpha1 handles the hotel booking gRPC service
package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hotel-api/internal/errors"
	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

// HandlerConfig holds dependencies for the booking handler
type HandlerConfig struct {
	BookingService booking.Service
	// DefaultHotelID is used when a request names no hotel
	DefaultHotelID string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.BookingService == nil {
		return errors.InvalidArgument("booking service is required")
	}
	if c.DefaultHotelID == "" {
		return errors.InvalidArgument("default hotel ID is required")
	}
	return nil
}

// Handler implements the booking gRPC service
type Handler struct {
	bookingService booking.Service
	defaultHotelID string
}

// NewHandler creates a new booking handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		bookingService: cfg.BookingService,
		defaultHotelID: cfg.DefaultHotelID,
	}, nil
}

// Ensure Handler implements BookingServiceServer
var _ BookingServiceServer = (*Handler)(nil)

func (h *Handler) hotelID(req *structpb.Struct) string {
	if id := stringField(req, FieldHotelID); id != "" {
		return id
	}
	return h.defaultHotelID
}

// GetHotel returns the hotel snapshot
func (h *Handler) GetHotel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.bookingService.GetHotel(ctx, &booking.GetHotelInput{HotelID: h.hotelID(req)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	fields := hotelToMap(output.Hotel)
	if !output.UpdatedAt.IsZero() {
		fields[FieldUpdatedAt] = output.UpdatedAt.UTC().Format(time.RFC3339)
	}

	resp, err := toStruct(map[string]interface{}{FieldHotel: fields})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// BookRooms allocates rooms for a guest
func (h *Handler) BookRooms(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	numRooms, err := intField(req, FieldNumRooms)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.bookingService.BookRooms(ctx, &booking.BookRoomsInput{
		HotelID:   h.hotelID(req),
		NumRooms:  numRooms,
		GuestName: stringField(req, FieldGuestName),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]interface{}{
		FieldBooking: bookingToMap(output.Booking),
		FieldHotel:   hotelToMap(output.Hotel),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// ResetBookings frees every room
func (h *Handler) ResetBookings(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.bookingService.ResetBookings(ctx, &booking.ResetBookingsInput{HotelID: h.hotelID(req)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]interface{}{FieldHotel: hotelToMap(output.Hotel)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}

// RandomizeOccupancy simulates a partly booked hotel
func (h *Handler) RandomizeOccupancy(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	output, err := h.bookingService.RandomizeOccupancy(ctx, &booking.RandomizeOccupancyInput{HotelID: h.hotelID(req)})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := toStruct(map[string]interface{}{
		FieldHotel:         hotelToMap(output.Hotel),
		FieldOccupiedCount: output.OccupiedCount,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return resp, nil
}
