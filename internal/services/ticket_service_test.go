package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
)

func TestTicketOnlyForPaidBookings(t *testing.T) {
	ctx := context.Background()
	store := newSeededStorage(t)
	bookings := BookingService{Storage: store, Now: fixedClock}
	b := createBooking(t, bookings, "s1", 2, pngProof)
	svc := TicketService{Storage: store}
	owner := domain.Actor{UserID: "u1", Role: "user"}

	if _, _, err := svc.Render(ctx, b.ID, owner); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for unpaid booking, got %v", err)
	}
	if _, err := bookings.Confirm(ctx, b.ID); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	pdf, name, err := svc.Render(ctx, b.ID, owner)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.Contains(name, b.BookingCode) {
		t.Fatalf("filename %q should carry the booking code", name)
	}

	if _, _, err := svc.Render(ctx, b.ID, domain.Actor{UserID: "u2", Role: "user"}); !domain.IsNotFound(err) {
		t.Fatalf("foreign ticket should be not found, got %v", err)
	}
}

func TestTicketToleratesMissingScheduleAndBadProof(t *testing.T) {
	loader := func(_ context.Context, id string) (ticketData, error) {
		return ticketData{Booking: models.Booking{
			ID:            id,
			UserID:        "u1",
			BookingCode:   "TRV12345678",
			PassengerName: "Tester",
			NumberOfSeats: 1,
			TotalPrice:    150000,
			Status:        models.StatusPaid,
			PaymentProof:  "data:image/png;base64,bm90IGEgcG5n",
		}}, nil
	}
	pdf, _, err := TicketService{Loader: loader}.Render(context.Background(), "b1", domain.Actor{Role: "admin"})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty pdf")
	}
}

func TestProofImageType(t *testing.T) {
	if got := proofImageType(pngProof); got != "PNG" {
		t.Fatalf("expected PNG, got %q", got)
	}
	if got := proofImageType(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
