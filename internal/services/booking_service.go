package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelgo/internal/domain"
	"travelgo/internal/domain/models"
	"travelgo/internal/events"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

// DefaultMaxProofBytes caps a payment proof when MaxProofBytes is unset.
const DefaultMaxProofBytes = 5 << 20

// BookingService owns the booking workflow and is, with ScheduleService, the
// only writer of schedule seat counts.
type BookingService struct {
	Storage   *repositories.Storage
	Events    events.Publisher
	Now       func() time.Time
	RequestID string

	RequireProof  bool
	MaxProofBytes int64
}

func (s BookingService) bookings() repositories.BookingRepository {
	return repositories.BookingRepository{Storage: s.Storage}
}

func (s BookingService) users() repositories.UserRepository {
	return repositories.UserRepository{Storage: s.Storage}
}

// ProofLimit is the largest accepted payment proof in bytes.
func (s BookingService) ProofLimit() int64 {
	if s.MaxProofBytes > 0 {
		return s.MaxProofBytes
	}
	return DefaultMaxProofBytes
}

// Create books in.NumberOfSeats seats for userID. The new booking and the seat
// decrement are committed together.
func (s BookingService) Create(ctx context.Context, userID string, in models.BookingInput) (models.Booking, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Booking{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return models.Booking{}, domain.ValidationError{Field: "userId", Msg: "wajib login"}
	}
	if err := required("scheduleId", in.ScheduleID); err != nil {
		return models.Booking{}, err
	}
	if in.NumberOfSeats < 1 {
		return models.Booking{}, domain.ValidationError{Field: "numberOfSeats", Msg: "minimal 1 kursi"}
	}
	in.PaymentProof = strings.TrimSpace(in.PaymentProof)
	if in.PaymentProof == "" && s.RequireProof {
		return models.Booking{}, domain.ValidationError{Field: "paymentProof", Msg: "bukti pembayaran wajib diunggah"}
	}
	if in.PaymentProof != "" {
		if err := validateProof(in.PaymentProof, s.ProofLimit()); err != nil {
			return models.Booking{}, err
		}
	}

	var created models.Booking
	err := s.Storage.Atomically(func() error {
		schedules, err := s.Storage.GetSchedules(ctx)
		if err != nil {
			return err
		}
		sch := repositories.IndexSchedules(schedules).Lookup(in.ScheduleID)
		if sch == nil {
			return domain.NotFoundError{Resource: "schedule"}
		}
		if sch.Status != models.ScheduleActive {
			return domain.ValidationError{Field: "scheduleId", Msg: "jadwal tidak aktif"}
		}
		if sch.AvailableSeats < in.NumberOfSeats {
			return domain.ValidationError{
				Field: "numberOfSeats",
				Msg:   fmt.Sprintf("kursi tersisa %d", sch.AvailableSeats),
			}
		}

		name, email, phone := in.PassengerName, in.PassengerEmail, in.PassengerPhone
		if u, err := s.users().Find(ctx, userID); err != nil {
			return err
		} else if u != nil {
			name = utils.FirstNonEmpty(name, u.Name)
			email = utils.FirstNonEmpty(email, u.Email)
			phone = utils.FirstNonEmpty(phone, u.Phone)
		}
		if err := firstErr(
			required("passengerName", name),
			required("passengerEmail", email),
			required("passengerPhone", phone),
		); err != nil {
			return err
		}

		bookings, err := s.bookings().List(ctx)
		if err != nil {
			return err
		}

		now := clock(s.Now)
		created = models.Booking{
			ID:             utils.NewID(),
			UserID:         userID,
			ScheduleID:     sch.ID,
			PassengerName:  strings.TrimSpace(name),
			PassengerEmail: strings.TrimSpace(email),
			PassengerPhone: strings.TrimSpace(phone),
			NumberOfSeats:  in.NumberOfSeats,
			TotalPrice:     sch.Price * int64(in.NumberOfSeats),
			BookingCode:    utils.NewBookingCode(now),
			Status:         models.InitialStatus(in.PaymentProof != ""),
			PaymentProof:   in.PaymentProof,
			CreatedAt:      now,
		}
		for _, b := range bookings {
			if b.BookingCode == created.BookingCode {
				utils.LogEvent(s.RequestID, "booking", "code_collision", "code="+created.BookingCode)
				break
			}
		}

		repositories.AdjustSeats(schedules, sch.ID, -in.NumberOfSeats)
		bookings = append(bookings, created)
		return s.Storage.Commit(ctx, repositories.NewBatch().Bookings(bookings).Schedules(schedules))
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%s code=%s schedule_id=%s seats=%d", created.ID, created.BookingCode, created.ScheduleID, created.NumberOfSeats))
	publish(ctx, s.Events, s.RequestID, events.BookingCreated, bookingEvent(created, "", clock(s.Now)))
	return created, nil
}

// Get returns the booking when actor owns it or is an admin. Other users get
// NotFound so ids of foreign bookings are not confirmed.
func (s BookingService) Get(ctx context.Context, id string, actor domain.Actor) (models.Booking, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Booking{}, err
	}
	b, err := s.bookings().Get(ctx, id)
	if err != nil {
		return models.Booking{}, err
	}
	if !actor.CanAccess(b.UserID) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, nil
}

// UploadProof attaches proof and moves the booking to awaiting_verification
// whatever its previous status was.
func (s BookingService) UploadProof(ctx context.Context, id string, actor domain.Actor, proof string) (models.Booking, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Booking{}, err
	}
	proof = strings.TrimSpace(proof)
	if proof == "" {
		return models.Booking{}, domain.ValidationError{Field: "paymentProof", Msg: "wajib diisi"}
	}
	if err := validateProof(proof, s.ProofLimit()); err != nil {
		return models.Booking{}, err
	}

	var prev models.BookingStatus
	updated, err := s.mutate(ctx, id, func(b *models.Booking) error {
		if !actor.CanAccess(b.UserID) {
			return domain.NotFoundError{Resource: "booking"}
		}
		next, ok := models.NextStatus(b.Status, models.EventProofUploaded)
		if !ok {
			return domain.ConflictError{Resource: "booking", Msg: "status tidak dapat diubah"}
		}
		prev = b.Status
		b.PaymentProof = proof
		b.Status = next
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "upload_proof", "booking_id="+id)
	publish(ctx, s.Events, s.RequestID, events.BookingProofUploaded, bookingEvent(updated, prev, clock(s.Now)))
	return updated, nil
}

// Confirm is the admin verification step: awaiting_verification with a proof
// becomes paid. Anything else is a conflict.
func (s BookingService) Confirm(ctx context.Context, id string) (models.Booking, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Booking{}, err
	}
	var prev models.BookingStatus
	updated, err := s.mutate(ctx, id, func(b *models.Booking) error {
		if !b.HasProof() {
			return domain.ConflictError{Resource: "booking", Msg: "bukti pembayaran belum ada"}
		}
		next, ok := models.NextStatus(b.Status, models.EventPaymentConfirmed)
		if !ok {
			return domain.ConflictError{
				Resource: "booking",
				Msg:      fmt.Sprintf("status %s tidak dapat dikonfirmasi", b.Status),
			}
		}
		prev = b.Status
		b.Status = next
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "confirm", "booking_id="+id)
	publish(ctx, s.Events, s.RequestID, events.BookingConfirmed, bookingEvent(updated, prev, clock(s.Now)))
	return updated, nil
}

// OverrideStatus is the unguarded admin path: any valid status may replace any
// other. Seat counts are not touched.
func (s BookingService) OverrideStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	if err := requireStorage(s.Storage); err != nil {
		return models.Booking{}, err
	}
	if !status.Valid() {
		return models.Booking{}, domain.ValidationError{Field: "status", Msg: "status tidak dikenal"}
	}
	var prev models.BookingStatus
	updated, err := s.mutate(ctx, id, func(b *models.Booking) error {
		prev = b.Status
		b.Status = status
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "override_status",
		fmt.Sprintf("booking_id=%s from=%s to=%s", id, prev, status))
	publish(ctx, s.Events, s.RequestID, events.BookingStatusChanged, bookingEvent(updated, prev, clock(s.Now)))
	return updated, nil
}

// Delete removes the booking and gives its seats back to the schedule in the
// same commit, whatever the booking status.
func (s BookingService) Delete(ctx context.Context, id string) error {
	if err := requireStorage(s.Storage); err != nil {
		return err
	}
	var removed models.Booking
	err := s.Storage.Atomically(func() error {
		bookings, err := s.bookings().List(ctx)
		if err != nil {
			return err
		}
		i := repositories.IndexOfBooking(bookings, id)
		if i < 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
		removed = bookings[i]
		bookings = append(bookings[:i:i], bookings[i+1:]...)

		schedules, err := s.Storage.GetSchedules(ctx)
		if err != nil {
			return err
		}
		batch := repositories.NewBatch().Bookings(bookings)
		if repositories.AdjustSeats(schedules, removed.ScheduleID, removed.NumberOfSeats) {
			batch.Schedules(schedules)
		} else {
			utils.LogEvent(s.RequestID, "booking", "refund_skipped",
				fmt.Sprintf("booking_id=%s schedule_id=%s tidak ditemukan", removed.ID, removed.ScheduleID))
		}
		return s.Storage.Commit(ctx, batch)
	})
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "booking", "delete",
		fmt.Sprintf("booking_id=%s refund=%d", removed.ID, removed.NumberOfSeats))
	publish(ctx, s.Events, s.RequestID, events.BookingDeleted, bookingEvent(removed, "", clock(s.Now)))
	return nil
}

// mutate applies fn to booking id under the write lock and persists the
// booking list.
func (s BookingService) mutate(ctx context.Context, id string, fn func(*models.Booking) error) (models.Booking, error) {
	var out models.Booking
	err := s.Storage.Atomically(func() error {
		bookings, err := s.bookings().List(ctx)
		if err != nil {
			return err
		}
		i := repositories.IndexOfBooking(bookings, id)
		if i < 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
		if err := fn(&bookings[i]); err != nil {
			return err
		}
		out = bookings[i]
		return s.Storage.SetBookings(ctx, bookings)
	})
	return out, err
}

func validateProof(proof string, limit int64) error {
	raw, _, err := utils.DecodeImageDataURL(proof)
	if err != nil {
		return domain.ValidationError{Field: "paymentProof", Msg: "harus berupa gambar", Err: err}
	}
	if int64(len(raw)) > limit {
		return domain.ValidationError{
			Field: "paymentProof",
			Msg:   fmt.Sprintf("ukuran maksimal %d byte", limit),
		}
	}
	return nil
}

func bookingEvent(b models.Booking, prev models.BookingStatus, at time.Time) events.BookingEvent {
	return events.BookingEvent{
		BookingID:      b.ID,
		BookingCode:    b.BookingCode,
		UserID:         b.UserID,
		ScheduleID:     b.ScheduleID,
		NumberOfSeats:  b.NumberOfSeats,
		TotalPrice:     b.TotalPrice,
		Status:         string(b.Status),
		PreviousStatus: string(prev),
		OccurredAt:     at,
	}
}
