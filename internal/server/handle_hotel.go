package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

func handleGetHotel(logger *slog.Logger, service booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := service.GetHotel(r.Context(), &booking.GetHotelInput{
			HotelID: chi.URLParam(r, "hotelID"),
		})
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		resp := newHotelResponse(output.Hotel)
		if !output.UpdatedAt.IsZero() {
			updatedAt := output.UpdatedAt
			resp.UpdatedAt = &updatedAt
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleResetBookings(logger *slog.Logger, service booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := service.ResetBookings(r.Context(), &booking.ResetBookingsInput{
			HotelID: chi.URLParam(r, "hotelID"),
		})
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, newHotelResponse(output.Hotel))
	}
}

func handleRandomizeOccupancy(logger *slog.Logger, service booking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		output, err := service.RandomizeOccupancy(r.Context(), &booking.RandomizeOccupancyInput{
			HotelID: chi.URLParam(r, "hotelID"),
		})
		if err != nil {
			writeServiceError(w, r, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, RandomizeResponse{
			Hotel:         newHotelResponse(output.Hotel),
			OccupiedCount: output.OccupiedCount,
		})
	}
}
