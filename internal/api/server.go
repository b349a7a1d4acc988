package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shareit/internal/config"
	"shareit/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Server exposes the ShareIt REST API.
type Server struct {
	cfg      config.ServerConfig
	users    *service.UserService
	items    *service.ItemService
	bookings *service.BookingService
	requests *service.RequestService
	logger   *zerolog.Logger
	server   *http.Server
}

func NewServer(
	cfg config.ServerConfig,
	users *service.UserService,
	items *service.ItemService,
	bookings *service.BookingService,
	requests *service.RequestService,
	logger *zerolog.Logger,
) *Server {
	s := &Server{
		cfg:      cfg,
		users:    users,
		items:    items,
		bookings: bookings,
		requests: requests,
		logger:   logger,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog(logger), observe())

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	userRoutes := engine.Group("/users")
	{
		userRoutes.GET("", s.getAllUsers)
		userRoutes.GET("/:id", s.getUser)
		userRoutes.POST("", s.createUser)
		userRoutes.PATCH("/:id", s.updateUser)
		userRoutes.DELETE("/:id", s.deleteUser)
	}

	itemRoutes := engine.Group("/items", identity())
	{
		itemRoutes.GET("", s.getItems)
		itemRoutes.GET("/search", s.searchItems)
		itemRoutes.GET("/:id", s.getItem)
		itemRoutes.POST("", s.createItem)
		itemRoutes.PATCH("/:id", s.updateItem)
		itemRoutes.POST("/:id/comment", s.createComment)
	}

	bookingRoutes := engine.Group("/bookings", identity())
	{
		bookingRoutes.POST("", s.createBooking)
		bookingRoutes.GET("/owner", s.getOwnerBookings)
		bookingRoutes.GET("/:id", s.getBooking)
		bookingRoutes.GET("", s.getBookerBookings)
		bookingRoutes.PATCH("/:id", s.approveBooking)
	}

	requestRoutes := engine.Group("/requests", identity())
	{
		requestRoutes.POST("", s.createRequest)
		requestRoutes.GET("", s.getOwnRequests)
		requestRoutes.GET("/all", s.getAllRequests)
		requestRoutes.GET("/:id", s.getRequest)
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return s
}

// Handler возвращает корневой http.Handler, используется в тестах.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
