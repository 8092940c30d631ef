package handlers

import (
	"net/http"

	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/vehicles
func (h *Handler) ListVehicles(c *gin.Context) {
	list, err := h.vehicles(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": list})
}

// GET /api/admin/vehicles/:id
func (h *Handler) GetVehicle(c *gin.Context) {
	v, err := h.vehicles(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/admin/vehicles
func (h *Handler) CreateVehicle(c *gin.Context) {
	var in services.VehicleInput
	if !bindJSON(c, &in) {
		return
	}
	v, err := h.vehicles(c).Create(c.Request.Context(), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/admin/vehicles/:id
func (h *Handler) UpdateVehicle(c *gin.Context) {
	var in services.VehicleInput
	if !bindJSON(c, &in) {
		return
	}
	v, err := h.vehicles(c).Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/admin/vehicles/:id
func (h *Handler) DeleteVehicle(c *gin.Context) {
	if err := h.vehicles(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kendaraan dihapus"})
}
