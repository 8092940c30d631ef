package utils

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestNewBookingCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^TRV\d{8}$`)
	now := time.UnixMilli(1736000123456)
	code := NewBookingCode(now)
	if !re.MatchString(code) {
		t.Fatalf("code %q does not match TRV + 8 digits", code)
	}
	if code != "TRV00123456" {
		t.Fatalf("expected last 8 digits of millis, got %s", code)
	}
	if short := NewBookingCode(time.UnixMilli(42)); short != "TRV00000042" {
		t.Fatalf("short clock must be zero padded, got %s", short)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := map[int64]string{
		0:       "Rp 0",
		150000:  "Rp 150.000",
		450000:  "Rp 450.000",
		1250000: "Rp 1.250.000",
		-5000:   "-Rp 5.000",
	}
	for in, want := range cases {
		if got := FormatRupiah(in); got != want {
			t.Fatalf("FormatRupiah(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeImageDataURL(t *testing.T) {
	raw, mime, err := DecodeImageDataURL("data:image/png;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mime != "image/png" || string(raw) != "hello" {
		t.Fatalf("unexpected decode: %s %q", mime, raw)
	}
	if _, _, err := DecodeImageDataURL("data:application/pdf;base64,aGVsbG8="); err == nil {
		t.Fatalf("pdf must be rejected")
	}
	if _, _, err := DecodeImageDataURL("not a data url"); err == nil {
		t.Fatalf("plain text must be rejected")
	}
	if _, _, err := DecodeImageDataURL("data:image/png;base64,%%%"); err == nil || !strings.Contains(err.Error(), "base64") {
		t.Fatalf("bad base64 must be rejected, got %v", err)
	}
}

func TestValidDateAndTime(t *testing.T) {
	if !ValidDate("2025-12-31") || ValidDate("31-12-2025") {
		t.Fatalf("date validation wrong")
	}
	d, err := ParseDate(" 2025-02-28 ")
	if err != nil || FormatDate(d) != "2025-02-28" {
		t.Fatalf("ParseDate: %v %v", d, err)
	}
	if ValidDate("2025-02-30") {
		t.Fatalf("impossible date accepted")
	}
	if !ValidTimeHM("08:00") || ValidTimeHM("8:00") || ValidTimeHM("25:00") {
		t.Fatalf("time validation wrong")
	}
}
