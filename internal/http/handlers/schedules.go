package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/schedules/search?origin=&destination=&date=&passengers=
func (h *Handler) SearchSchedules(c *gin.Context) {
	q := services.SearchQuery{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
		Passengers:  1,
	}
	if raw := strings.TrimSpace(c.Query("passengers")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "validation_error", "passengers: minimal 1", nil)
			return
		}
		q.Passengers = n
	}
	list, err := h.Query.Search(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": list})
}

// GET /api/schedules/:id and /api/admin/schedules/:id
func (h *Handler) GetSchedule(c *gin.Context) {
	d, err := h.schedules(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// GET /api/admin/schedules
func (h *Handler) ListSchedules(c *gin.Context) {
	list, err := h.schedules(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": list})
}

// POST /api/admin/schedules
func (h *Handler) CreateSchedule(c *gin.Context) {
	var in services.ScheduleInput
	if !bindJSON(c, &in) {
		return
	}
	s, err := h.schedules(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// PUT /api/admin/schedules/:id
func (h *Handler) UpdateSchedule(c *gin.Context) {
	var in services.ScheduleInput
	if !bindJSON(c, &in) {
		return
	}
	s, err := h.schedules(c).Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DELETE /api/admin/schedules/:id
func (h *Handler) DeleteSchedule(c *gin.Context) {
	if err := h.schedules(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "jadwal dihapus"})
}
