package handlers

import (
	"travelgo/internal/domain"
	"travelgo/internal/http/middleware"
	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler groups the services behind the HTTP API. Services are values; each
// request works on a copy tagged with its request id.
type Handler struct {
	Auth      services.AuthService
	Tokens    *services.TokenService
	Bookings  services.BookingService
	Vehicles  services.VehicleService
	Schedules services.ScheduleService
	Users     services.UserService
	Query     services.QueryService
	Reports   services.ReportsService
	Tickets   services.TicketService
}

func actor(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID: c.GetString(middleware.UserIDKey),
		Role:   c.GetString(middleware.UserRoleKey),
	}
}

func (h *Handler) auth(c *gin.Context) services.AuthService {
	s := h.Auth
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handler) bookings(c *gin.Context) services.BookingService {
	s := h.Bookings
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handler) vehicles(c *gin.Context) services.VehicleService {
	s := h.Vehicles
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handler) schedules(c *gin.Context) services.ScheduleService {
	s := h.Schedules
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handler) users(c *gin.Context) services.UserService {
	s := h.Users
	s.RequestID = middleware.GetRequestID(c)
	return s
}

func (h *Handler) tickets(c *gin.Context) services.TicketService {
	s := h.Tickets
	s.RequestID = middleware.GetRequestID(c)
	return s
}
