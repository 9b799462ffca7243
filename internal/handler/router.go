package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tripstack/internal/handler/api"
	"tripstack/internal/handler/middleware"
	"tripstack/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	flightHandler *api.FlightHandler,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, flightHandler, hotelHandler, bookingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	flightHandler *api.FlightHandler,
	hotelHandler *api.HotelHandler,
	bookingHandler *api.BookingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
				{Method: http.MethodPut, Path: "/me/username", Handler: authHandler.UpdateUsername},
			})
		}

		flights := apiGroup.Group("/flights")
		{
			addRoutes(flights, []route{
				{Method: http.MethodGet, Path: "/search", Handler: flightHandler.Search},
			})

			adminFlights := flights.Group("")
			adminFlights.Use(requireAuth, requireAdmin)
			addRoutes(adminFlights, []route{
				{Method: http.MethodPost, Path: "", Handler: flightHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: flightHandler.Delete},
			})

			seatCommit := flights.Group("")
			seatCommit.Use(requireAuth)
			addRoutes(seatCommit, []route{
				{Method: http.MethodPost, Path: "/:id/seats", Handler: flightHandler.CommitSeats},
			})
		}

		hotels := apiGroup.Group("/hotels")
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: hotelHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: hotelHandler.Get},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: hotelHandler.ListRooms},
			})

			adminHotels := hotels.Group("")
			adminHotels.Use(requireAuth, requireAdmin)
			addRoutes(adminHotels, []route{
				{Method: http.MethodPost, Path: "", Handler: hotelHandler.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: hotelHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: hotelHandler.Delete},
				{Method: http.MethodPost, Path: "/:id/rooms", Handler: hotelHandler.CreateRoom},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: hotelHandler.Availability},
			})

			adminRooms := rooms.Group("")
			adminRooms.Use(requireAuth, requireAdmin)
			addRoutes(adminRooms, []route{
				{Method: http.MethodPatch, Path: "/:roomId", Handler: hotelHandler.UpdateRoom},
				{Method: http.MethodDelete, Path: "/:roomId", Handler: hotelHandler.DeleteRoom},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
