package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	StoreDriver string
	StoreDSN    string
	SeedOnStart bool

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string

	CheckoutRequireProof     bool
	SessionValidateOnRestore bool
	MaxProofBytes            int64 // 0 keeps the booking service default

	AMQPURL      string
	AMQPExchange string
}

// LoadEnv reads .env (if present) then the process environment.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Gagal membaca .env: %v", err)
	}

	return Env{
		AppAddr: str("APP_ADDR", ":8080"),
		GinMode: str("GIN_MODE", ""),

		StoreDriver: strings.ToLower(str("STORE_DRIVER", "sqlite")),
		StoreDSN:    str("STORE_DSN", ""),
		SeedOnStart: boolean("SEED_ON_START", true),

		JWTSecret: str("JWT_SECRET", "travelgo-dev-secret"),
		JWTTTL:    time.Duration(integer("JWT_TTL_HOURS", 24)) * time.Hour,

		CORSAllowedOrigins: list("CORS_ALLOWED_ORIGINS"),

		CheckoutRequireProof:     boolean("CHECKOUT_REQUIRE_PROOF", true),
		SessionValidateOnRestore: boolean("SESSION_VALIDATE_ON_RESTORE", false),
		MaxProofBytes:            int64(integer("MAX_PROOF_BYTES", 0)),

		AMQPURL:      str("AMQP_URL", ""),
		AMQPExchange: str("AMQP_EXCHANGE", "travel_topic"),
	}
}

func str(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func boolean(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Nilai %s tidak valid (%q), pakai default %v", key, v, def)
		return def
	}
	return b
}

func integer(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Nilai %s tidak valid (%q), pakai default %d", key, v, def)
		return def
	}
	return n
}

func list(key string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
