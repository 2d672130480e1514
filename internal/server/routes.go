package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/KirkDiggler/hotel-api/internal/orchestrators/booking"
)

func addRoutes(r chi.Router, logger *slog.Logger, service booking.Service, broker *Broker) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Hotel Booking API", "/openapi.json", "/docs"))

	r.Route("/api/hotels/{hotelID}", func(r chi.Router) {
		r.Get("/", handleGetHotel(logger, service))
		r.Post("/bookings", handleBookRooms(logger, service))
		r.Post("/reset", handleResetBookings(logger, service))
		r.Post("/randomize", handleRandomizeOccupancy(logger, service))
		r.Get("/events", handleEvents(broker))
	})
}
