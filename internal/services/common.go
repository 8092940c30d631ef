package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"travelgo/internal/domain"
	"travelgo/internal/events"
	"travelgo/internal/repositories"
	"travelgo/internal/utils"
)

func clock(now func() time.Time) time.Time {
	if now != nil {
		return now().UTC()
	}
	return utils.NowUTC()
}

func publisher(p events.Publisher) events.Publisher {
	if p != nil {
		return p
	}
	return events.NopPublisher{}
}

// publish sends ev after a successful commit; failures are only logged.
func publish(ctx context.Context, p events.Publisher, requestID, key string, ev events.BookingEvent) {
	if err := publisher(p).Publish(ctx, key, ev); err != nil {
		utils.LogEvent(requestID, "events", "publish_failed", key+" booking_id="+ev.BookingID+" err="+err.Error())
	}
}

func requireStorage(s *repositories.Storage) error {
	if s == nil || s.KV == nil {
		return domain.StorageError{Op: "open", Err: errStoreMissing}
	}
	return nil
}

var errStoreMissing = errors.New("penyimpanan belum dikonfigurasi")

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationError{Field: field, Msg: "wajib diisi"}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
