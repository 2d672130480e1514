package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/KirkDiggler/hotel-api/internal/handlers/health"
)

type hotelPath struct {
	HotelID string `path:"hotelID" description:"Hotel identifier"`
}

type bookRoomsOperation struct {
	HotelID   string `path:"hotelID" description:"Hotel identifier"`
	NumRooms  int    `json:"numRooms" minimum:"1" required:"true"`
	GuestName string `json:"guestName" minLength:"1" required:"true"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Hotel Booking API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Books groups of hotel rooms with minimal travel time between them.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(health.Response{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(health.Response{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/hotels/{hotelID}
	getHotel, _ := r.NewOperationContext(http.MethodGet, "/api/hotels/{hotelID}")
	getHotel.SetSummary("Get hotel")
	getHotel.SetDescription("Returns every floor and room with occupancy and selection flags.")
	getHotel.AddReqStructure(hotelPath{})
	getHotel.AddRespStructure(HotelResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHotel.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getHotel)

	// POST /api/hotels/{hotelID}/bookings
	postBooking, _ := r.NewOperationContext(http.MethodPost, "/api/hotels/{hotelID}/bookings")
	postBooking.SetSummary("Book rooms")
	postBooking.SetDescription("Allocates the requested number of rooms, preferring a single floor, and marks them occupied.")
	postBooking.AddReqStructure(bookRoomsOperation{})
	postBooking.AddRespStructure(BookRoomsResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postBooking.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postBooking.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postBooking)

	// POST /api/hotels/{hotelID}/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/hotels/{hotelID}/reset")
	postReset.SetSummary("Reset bookings")
	postReset.SetDescription("Frees every room and clears the last selection.")
	postReset.AddReqStructure(hotelPath{})
	postReset.AddRespStructure(HotelResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postReset)

	// POST /api/hotels/{hotelID}/randomize
	postRandomize, _ := r.NewOperationContext(http.MethodPost, "/api/hotels/{hotelID}/randomize")
	postRandomize.SetSummary("Randomize occupancy")
	postRandomize.SetDescription("Marks each room occupied with a 40% chance.")
	postRandomize.AddReqStructure(hotelPath{})
	postRandomize.AddRespStructure(RandomizeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postRandomize)

	// GET /api/hotels/{hotelID}/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/hotels/{hotelID}/events")
	getEvents.SetSummary("SSE event stream")
	getEvents.SetDescription("Server-Sent Events stream of occupancy changes for the hotel.")
	getEvents.AddReqStructure(hotelPath{})
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	return r.Spec
}

// handleOpenAPI panics if the document cannot be encoded; it is built from
// static types at startup.
func handleOpenAPI() http.HandlerFunc {
	data, err := json.MarshalIndent(newOpenAPISpec(), "", "  ")
	if err != nil {
		panic(fmt.Sprintf("encoding openapi document: %v", err))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
