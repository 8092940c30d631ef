package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "travelgo/internal/config"
	"travelgo/internal/events"
	router "travelgo/internal/http"
	"travelgo/internal/http/handlers"
	"travelgo/internal/repositories"
	"travelgo/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	ctx := context.Background()

	kv, err := intconfig.OpenStore(ctx, env)
	if err != nil {
		log.Fatalf("Gagal membuka penyimpanan: %v", err)
	}
	defer kv.Close()
	store := repositories.NewStorage(kv)

	if env.SeedOnStart {
		if err := (services.SeedService{Storage: store}).Bootstrap(ctx); err != nil {
			log.Fatalf("Gagal membuat data awal: %v", err)
		}
	}

	var publisher events.Publisher = events.NopPublisher{}
	if env.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(env.AMQPURL, env.AMQPExchange)
		if err != nil {
			log.Printf("warning: event broker tidak tersedia, event dimatikan: %v", err)
		} else {
			publisher = p
			log.Printf("Event booking dikirim ke exchange %s", env.AMQPExchange)
		}
	}
	defer publisher.Close()

	auth := services.AuthService{Storage: store, ValidateOnRestore: env.SessionValidateOnRestore}
	if u, err := auth.Current(ctx); err != nil {
		log.Printf("warning: sesi tersimpan tidak dapat dibaca: %v", err)
	} else if u != nil {
		log.Printf("Sesi dipulihkan untuk %s", u.Email)
	}

	hd := &handlers.Handler{
		Auth:   auth,
		Tokens: services.NewTokenService(env.JWTSecret, env.JWTTTL),
		Bookings: services.BookingService{
			Storage:       store,
			Events:        publisher,
			RequireProof:  env.CheckoutRequireProof,
			MaxProofBytes: env.MaxProofBytes,
		},
		Vehicles:  services.VehicleService{Storage: store},
		Schedules: services.ScheduleService{Storage: store},
		Users:     services.UserService{Storage: store},
		Query:     services.QueryService{Storage: store},
		Reports:   services.ReportsService{Storage: store},
		Tickets:   services.TicketService{Storage: store},
	}

	// Router (Gin engine)
	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
