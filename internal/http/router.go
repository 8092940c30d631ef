package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelgo/internal/config"
	h "travelgo/internal/http/handlers"
	"travelgo/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, hd *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authRequired := middleware.AuthRequired(hd.Tokens)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)
		api.GET("/cities", hd.Cities)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", hd.Register)
		auth.POST("/login", hd.Login)
		auth.POST("/logout", hd.Logout)
		auth.GET("/session", hd.Session)

		// Public schedules
		schedules := api.Group("/schedules")
		schedules.GET("/search", hd.SearchSchedules)
		schedules.GET("/:id", hd.GetSchedule)

		// Customer bookings
		bookings := api.Group("/bookings", authRequired)
		bookings.POST("", hd.CreateBooking)
		bookings.GET("", hd.MyBookings)
		bookings.GET("/:id", hd.GetBooking)
		bookings.POST("/:id/payment-proof", hd.UploadProof)
		bookings.GET("/:id/ticket", hd.Ticket)

		// Admin
		admin := api.Group("/admin", authRequired, middleware.RequireRoles("admin"))
		admin.GET("/dashboard", hd.Dashboard)

		vehicles := admin.Group("/vehicles")
		vehicles.GET("", hd.ListVehicles)
		vehicles.POST("", hd.CreateVehicle)
		vehicles.GET("/:id", hd.GetVehicle)
		vehicles.PUT("/:id", hd.UpdateVehicle)
		vehicles.DELETE("/:id", hd.DeleteVehicle)

		adminSchedules := admin.Group("/schedules")
		adminSchedules.GET("", hd.ListSchedules)
		adminSchedules.POST("", hd.CreateSchedule)
		adminSchedules.GET("/:id", hd.GetSchedule)
		adminSchedules.PUT("/:id", hd.UpdateSchedule)
		adminSchedules.DELETE("/:id", hd.DeleteSchedule)

		users := admin.Group("/users")
		users.GET("", hd.ListUsers)
		users.DELETE("/:id", hd.DeleteUser)

		adminBookings := admin.Group("/bookings")
		adminBookings.GET("", hd.AllBookings)
		adminBookings.PUT("/:id/status", hd.SetBookingStatus)
		adminBookings.POST("/:id/confirm", hd.ConfirmBooking)
		adminBookings.DELETE("/:id", hd.DeleteBooking)
		adminBookings.GET("/:id/payment-proof", hd.PaymentProof)
	}

	h.SetRouter(r)
	return r
}
