package routes

import (
	"net/http"

	"parkwise/auth"
	"parkwise/bookings"
	"parkwise/lots"
	"parkwise/middleware"
	"parkwise/ownerstats"
	"parkwise/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rl.Limit(auth.Register))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.Logout))
}

func AddLotRoutes(router *httprouter.Router) {
	router.POST("/api/lots", middleware.Authenticate(lots.CreateLot))
	router.GET("/api/lots/:lotid", lots.GetLot)
	router.PUT("/api/lots/:lotid/banner", middleware.Authenticate(lots.EditLotBanner))
	router.GET("/api/lots/:lotid/bookings", middleware.Authenticate(bookings.GetBookingsByLot))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/bookings", rl.Limit(middleware.Authenticate(bookings.CreateBooking)))
	router.DELETE("/api/bookings/:bookingid", middleware.Authenticate(bookings.CancelBooking))
	router.GET("/api/bookings/:bookingid/pass", middleware.Authenticate(bookings.GetGatePass))
	router.GET("/ws/lots/:lotid", bookings.HandleLotWS)
}

// AddOwnerStatsRoutes wires the owner analytics reports. The variants
// without an :ownerId param model the "absent identifier" behavior: the
// first three reports answer with empty data, utilization with a 400.
func AddOwnerStatsRoutes(router *httprouter.Router) {
	h := ownerstats.NewHandler(ownerstats.NewService(ownerstats.NewMongoStore()))

	router.GET("/api/owner/stats/bookings", middleware.Authenticate(h.GetBookingFeed))
	router.GET("/api/owner/stats/bookings/:ownerId", middleware.Authenticate(h.GetBookingFeed))
	router.GET("/api/owner/stats/revenue", middleware.Authenticate(h.GetRevenueSummary))
	router.GET("/api/owner/stats/revenue/:ownerId", middleware.Authenticate(h.GetRevenueSummary))
	router.GET("/api/owner/stats/vehicle-types", middleware.Authenticate(h.GetVehicleTypes))
	router.GET("/api/owner/stats/vehicle-types/:ownerId", middleware.Authenticate(h.GetVehicleTypes))
	router.GET("/api/owner/stats/utilization", middleware.Authenticate(h.GetUtilization))
	router.GET("/api/owner/stats/utilization/:ownerId", middleware.Authenticate(h.GetUtilization))

	router.GET("/api/owner/export/revenue/:ownerId", middleware.Authenticate(h.ExportRevenuePDF))
	router.GET("/api/owner/lots/:ownerId", middleware.Authenticate(lots.GetLotsByOwner))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}
