package handlers

import (
	"time"

	"travelgo/internal/domain/models"
)

// userDTO is the only shape in which users leave the API; it has no password.
type userDTO struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Phone     string      `json:"phone"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toUserDTO(u models.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, Name: u.Name, Phone: u.Phone, Role: u.Role, CreatedAt: u.CreatedAt}
}

func toUserDTOs(list []models.User) []userDTO {
	out := make([]userDTO, 0, len(list))
	for _, u := range list {
		out = append(out, toUserDTO(u))
	}
	return out
}

type bookingDTO struct {
	models.BookingDetail
	StatusLabel string `json:"statusLabel"`
}

func toBookingDTO(d models.BookingDetail) bookingDTO {
	return bookingDTO{BookingDetail: d, StatusLabel: d.Status.Label()}
}

func toBookingDTOs(list []models.BookingDetail) []bookingDTO {
	out := make([]bookingDTO, 0, len(list))
	for _, d := range list {
		out = append(out, toBookingDTO(d))
	}
	return out
}
