package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

func handleBookRooms(logger *slog.Logger, service booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRoomsRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		output, err := service.BookRooms(r.Context(), &booking.BookRoomsInput{
			HotelID:   chi.URLParam(r, "hotelID"),
			NumRooms:  req.NumRooms,
			GuestName: req.GuestName,
		})
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusCreated, BookRoomsResponse{
			Booking: newBookingResponse(output.Booking),
			Hotel:   newHotelResponse(output.Hotel),
		})
	}
}
