package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// BookingCodePrefix is the brand tag printed in front of every booking code.
const BookingCodePrefix = "TRV"

// NewID returns a time-ordered UUIDv7 (millisecond timestamp + random bits).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source fails; fall back to time + hex.
		var b [5]byte
		_, _ = rand.Read(b[:])
		return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(b[:]))
	}
	return id.String()
}

// NewBookingCode returns TRV followed by the last 8 digits of the unix
// millisecond clock. Two codes issued in the same millisecond collide; callers
// accept that.
func NewBookingCode(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	for len(ms) < 8 {
		ms = "0" + ms
	}
	return BookingCodePrefix + ms
}
