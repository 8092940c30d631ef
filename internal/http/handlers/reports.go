package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.Reports.Dashboard(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
