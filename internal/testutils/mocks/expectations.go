// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/hotel-api/internal/entities"
	"github.com/KirkDiggler/hotel-api/internal/pkg/clock"
	hotelrepo "github.com/KirkDiggler/hotel-api/internal/repositories/hotel"
	hotelrepomock "github.com/KirkDiggler/hotel-api/internal/repositories/hotel/mock"
)

// ExpectHotelGet sets up a mock expectation for loading a hotel. The
// repository hands out a copy, as the real implementations do.
func ExpectHotelGet(
	ctx context.Context, mockRepo *hotelrepomock.MockRepository,
	hotelID string, h *entities.Hotel, err error,
) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, hotelrepo.GetInput{HotelID: hotelID}).
		DoAndReturn(func(context.Context, hotelrepo.GetInput) (*hotelrepo.GetOutput, error) {
			if err != nil {
				return nil, err
			}
			return &hotelrepo.GetOutput{Hotel: h.Clone(), UpdatedAt: storeClock.Now()}, nil
		})
}

// ExpectHotelSave sets up a mock expectation for saving a hotel and stores
// a copy of the saved snapshot in *saved when saved is not nil
func ExpectHotelSave(ctx context.Context, mockRepo *hotelrepomock.MockRepository, saved **entities.Hotel) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input hotelrepo.SaveInput) (*hotelrepo.SaveOutput, error) {
			if saved != nil {
				*saved = input.Hotel.Clone()
			}
			return &hotelrepo.SaveOutput{UpdatedAt: storeClock.Now()}, nil
		})
}

// ExpectHotelSaveError sets up a failing save
func ExpectHotelSaveError(ctx context.Context, mockRepo *hotelrepomock.MockRepository, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		Return(nil, err)
}

var storeClock = clock.NewFixed(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
