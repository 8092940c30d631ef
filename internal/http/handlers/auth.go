package handlers

import (
	"net/http"

	"travelgo/internal/domain/models"
	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	u, ok, err := h.auth(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid_credentials", "Email atau password salah", nil)
		return
	}
	h.respondSession(c, http.StatusOK, u)
}

// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	u, ok, err := h.auth(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !ok {
		respondError(c, http.StatusConflict, "email_taken", "Email sudah terdaftar", nil)
		return
	}
	h.respondSession(c, http.StatusCreated, u)
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.auth(c).Logout(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "berhasil logout"})
}

// GET /api/auth/session returns the persisted current user, or null.
func (h *Handler) Session(c *gin.Context) {
	u, err := h.auth(c).Current(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if u == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserDTO(*u)})
}

func (h *Handler) respondSession(c *gin.Context, status int, u models.User) {
	token, err := h.Tokens.Issue(u)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "gagal membuat token", nil)
		return
	}
	c.JSON(status, gin.H{"token": token, "user": toUserDTO(u)})
}
