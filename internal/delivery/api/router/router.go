// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"manna/internal/delivery/api/middleware"
	"manna/internal/delivery/api/router/handler"
	"manna/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	MeditationHandler   *handler.MeditationHandler
	MannaHandler        *handler.MannaHandler
	FavoriteHandler     *handler.FavoriteHandler
	JourneyHandler      *handler.JourneyHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	meditationHandler   *handler.MeditationHandler
	mannaHandler        *handler.MannaHandler
	favoriteHandler     *handler.FavoriteHandler
	journeyHandler      *handler.JourneyHandler
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		meditationHandler:   params.MeditationHandler,
		mannaHandler:        params.MannaHandler,
		favoriteHandler:     params.FavoriteHandler,
		journeyHandler:      params.JourneyHandler,
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Sign-up is the only public write
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require a signed-in user

	apiV1.GET("/me", r.userHandler.GetProfile)
	apiV1.PUT("/me", r.userHandler.UpdateProfile)

	apiV1.GET("/manna/today", r.mannaHandler.GetToday)

	meditationsGroup := apiV1.Group("/meditations")
	{
		meditationsGroup.GET("", r.meditationHandler.ListMeditations)
		meditationsGroup.GET("/:id", r.meditationHandler.GetMeditation)
		meditationsGroup.GET("/:id/qr", r.meditationHandler.GetShareQR)
	}

	favoritesGroup := apiV1.Group("/favorites")
	{
		favoritesGroup.GET("", r.favoriteHandler.ListFavorites)
		favoritesGroup.GET("/:meditationId", r.favoriteHandler.GetFavoriteStatus)
		favoritesGroup.PUT("/:meditationId", r.favoriteHandler.AddFavorite)
		favoritesGroup.DELETE("/:meditationId", r.favoriteHandler.RemoveFavorite)
	}

	journeyGroup := apiV1.Group("/journey")
	{
		journeyGroup.GET("", r.journeyHandler.GetJourney)
		journeyGroup.POST("/sessions", r.journeyHandler.RecordSession)
	}

	settingsGroup := apiV1.Group("/settings")
	{
		settingsGroup.GET("/notifications", r.notificationHandler.GetSettings)
		settingsGroup.PUT("/notifications", r.notificationHandler.UpdateSettings)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.PUT("", r.deviceHandler.RegisterDevice)
		devicesGroup.DELETE("/:token", r.deviceHandler.UnregisterDevice)
	}

	// Admin routes require the "admin" role
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stats", r.adminHandler.GetStats)

		adminGroup.GET("/meditations", r.meditationHandler.ListMeditations)
		adminGroup.POST("/meditations", r.meditationHandler.CreateMeditation)
		adminGroup.PUT("/meditations/:id", r.meditationHandler.UpdateMeditation)
		adminGroup.DELETE("/meditations/:id", r.meditationHandler.DeleteMeditation)

		adminGroup.GET("/manna", r.mannaHandler.ListManna)
		adminGroup.POST("/manna", r.mannaHandler.CreateManna)
		adminGroup.GET("/manna/:id", r.mannaHandler.GetManna)
		adminGroup.PUT("/manna/:id", r.mannaHandler.UpdateManna)
		adminGroup.DELETE("/manna/:id", r.mannaHandler.DeleteManna)
	}
}
