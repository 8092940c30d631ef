package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"travelgo/internal/domain/models"
	"travelgo/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !bindJSON(c, &in) {
		return
	}
	b, err := h.bookings(c).Create(c.Request.Context(), actor(c).UserID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBooking(c, http.StatusCreated, b)
}

// GET /api/bookings lists the caller's bookings, newest first.
func (h *Handler) MyBookings(c *gin.Context) {
	list, err := h.Query.UserBookings(c.Request.Context(), actor(c).UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": toBookingDTOs(list)})
}

// GET /api/bookings/:id
func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.bookings(c).Get(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, b)
}

type proofRequest struct {
	PaymentProof string `json:"paymentProof"`
}

// POST /api/bookings/:id/payment-proof accepts {"paymentProof": "<data URL>"}
// or a multipart upload in field "proof".
func (h *Handler) UploadProof(c *gin.Context) {
	var proof string
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		p, ok := h.readProofFile(c)
		if !ok {
			return
		}
		proof = p
	} else {
		var req proofRequest
		if !bindJSON(c, &req) {
			return
		}
		proof = req.PaymentProof
	}

	b, err := h.bookings(c).UploadProof(c.Request.Context(), c.Param("id"), actor(c), proof)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, b)
}

// GET /api/bookings/:id/ticket
func (h *Handler) Ticket(c *gin.Context) {
	pdf, filename, err := h.tickets(c).Render(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /api/admin/bookings
func (h *Handler) AllBookings(c *gin.Context) {
	list, err := h.Query.AllBookings(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": toBookingDTOs(list)})
}

type statusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// PUT /api/admin/bookings/:id/status
func (h *Handler) SetBookingStatus(c *gin.Context) {
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	b, err := h.bookings(c).OverrideStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, b)
}

// POST /api/admin/bookings/:id/confirm
func (h *Handler) ConfirmBooking(c *gin.Context) {
	b, err := h.bookings(c).Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.respondBooking(c, http.StatusOK, b)
}

// DELETE /api/admin/bookings/:id
func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.bookings(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking dihapus, kursi dikembalikan"})
}

// GET /api/admin/bookings/:id/payment-proof streams the stored image.
func (h *Handler) PaymentProof(c *gin.Context) {
	b, err := h.bookings(c).Get(c.Request.Context(), c.Param("id"), actor(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !b.HasProof() {
		respondError(c, http.StatusNotFound, "not_found", "bukti pembayaran belum diunggah", nil)
		return
	}
	raw, mime, err := utils.DecodeImageDataURL(b.PaymentProof)
	if err != nil {
		respondError(c, http.StatusUnprocessableEntity, "invalid_proof", "bukti pembayaran tidak dapat dibaca", nil)
		return
	}
	c.Data(http.StatusOK, mime, raw)
}

func (h *Handler) respondBooking(c *gin.Context, status int, b models.Booking) {
	d, err := h.Query.BookingDetail(c.Request.Context(), b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(status, toBookingDTO(d))
}

func (h *Handler) readProofFile(c *gin.Context) (string, bool) {
	limit := h.Bookings.ProofLimit()
	fh, err := c.FormFile("proof")
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "paymentProof: file \"proof\" wajib diunggah", nil)
		return "", false
	}
	if fh.Size > limit {
		respondError(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("paymentProof: ukuran maksimal %d byte", limit), nil)
		return "", false
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "paymentProof: file tidak dapat dibaca", nil)
		return "", false
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil || int64(len(raw)) > limit {
		respondError(c, http.StatusBadRequest, "validation_error", "paymentProof: file tidak dapat dibaca", nil)
		return "", false
	}
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		respondError(c, http.StatusBadRequest, "validation_error", "paymentProof: harus berupa gambar", nil)
		return "", false
	}
	return utils.EncodeDataURL(mime, raw), true
}
