package repositories

import (
	"context"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

type BookingRepository struct {
	Storage *Storage
}

func (r BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	return r.Storage.GetBookings(ctx)
}

func (r BookingRepository) Get(ctx context.Context, id string) (models.Booking, error) {
	list, err := r.List(ctx)
	if err != nil {
		return models.Booking{}, err
	}
	if i := IndexOfBooking(list, id); i >= 0 {
		return list[i], nil
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// ListByUser keeps collection order.
func (r BookingRepository) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []models.Booking{}
	for _, b := range list {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func IndexOfBooking(list []models.Booking, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
