package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseDataURL splits "data:<mime>;base64,<payload>" into its parts.
func ParseDataURL(s string) (mime string, b64 string, ok bool) {
	ss := strings.TrimSpace(s)
	if !strings.HasPrefix(strings.ToLower(ss), "data:") {
		return "", "", false
	}
	parts := strings.SplitN(ss, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	meta := strings.ToLower(strings.TrimSpace(parts[0]))
	b64 = strings.TrimSpace(parts[1])
	if !strings.HasSuffix(meta, ";base64") {
		return "", "", false
	}
	mime = strings.TrimSuffix(strings.TrimPrefix(meta, "data:"), ";base64")
	return mime, b64, mime != "" && b64 != ""
}

// DecodeImageDataURL returns the image bytes and mime type of an image data URL.
func DecodeImageDataURL(s string) ([]byte, string, error) {
	mime, b64, ok := ParseDataURL(s)
	if !ok {
		return nil, "", fmt.Errorf("bukan data URL base64")
	}
	if !strings.HasPrefix(mime, "image/") {
		return nil, "", fmt.Errorf("tipe %s bukan gambar", mime)
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", fmt.Errorf("base64 tidak valid: %w", err)
	}
	return raw, mime, nil
}

// EncodeDataURL builds a base64 data URL.
func EncodeDataURL(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}
