package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/users
func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.users(c).ListCustomers(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": toUserDTOs(list)})
}

// DELETE /api/admin/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.users(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pengguna dihapus"})
}
