package routes

import (
	"net/http"

	"hall-of-fame-backend/internal/api/handlers"
	"hall-of-fame-backend/internal/api/middleware"
	"hall-of-fame-backend/internal/auth"
	"hall-of-fame-backend/internal/bootstrap"
	"hall-of-fame-backend/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Version is reported by the health endpoints
var Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *bootstrap.App, metrics *middleware.Metrics) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(app.Config))
	router.Use(metrics.Middleware())

	svc := app.Services
	authHandler := auth.NewAuthHandler(app.Auth)
	authMiddleware := auth.NewAuthMiddleware(app.Auth)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(app.Store, Version)
	classHandler := handlers.NewClassHandler(svc.Classes)
	inducteeHandler := handlers.NewInducteeHandler(svc.Inductees)
	photoHandler := handlers.NewPhotoHandler(svc.Photos)
	videoHandler := handlers.NewVideoHandler(svc.Videos)
	championshipHandler := handlers.NewChampionshipHandler(svc.Championships)
	championshipPhotoHandler := handlers.NewChampionshipPhotoHandler(svc.ChampionshipPhotos)
	pageHandler := handlers.NewPageHandler(svc.Pages)
	uploadHandler := handlers.NewUploadHandler(svc.Uploads)
	publicHandler := handlers.NewPublicHandler(svc.Public)
	seedHandler := handlers.NewSeedHandler(svc.Seed)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", metrics.Handler())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Local bucket, served under the same URL shape as the hosted one
	if app.Media != nil {
		media := handlers.NewMediaHandler(app.Config.StorageBucket, app.Media)
		router.GET("/media/v0/b/:bucket/o/*object", media.Serve)
	}

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/session", authMiddleware.RequireAuth(), authHandler.Session)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	// Public display routes, no sign-in
	public := router.Group("/api/v1/public", authMiddleware.OptionalAuth())
	{
		public.GET("/classes", publicHandler.Classes)
		public.GET("/classes/:year", publicHandler.Class)
		public.GET("/inductees", publicHandler.Inductees)
		public.GET("/inductees/class/:year", publicHandler.InducteesByClass)
		public.GET("/inductees/:id", publicHandler.Inductee)
		public.GET("/videos", publicHandler.Videos)
		public.GET("/championships", publicHandler.Championships)
		public.GET("/championships/:id", publicHandler.Championship)
		public.GET("/sports", publicHandler.Sports)
		public.GET("/pages/:page", pageHandler.Get)
	}

	// Admin routes, all require a signed-in admin
	v1 := router.Group("/api/v1", authMiddleware.RequireAuth())
	{
		classes := v1.Group("/classes")
		{
			classes.GET("", classHandler.List)
			classes.POST("", classHandler.Create)
			classes.GET("/:id", classHandler.Get)
			classes.PUT("/:id", classHandler.Update)
			classes.DELETE("/:id", classHandler.Delete)
		}

		inductees := v1.Group("/inductees")
		{
			inductees.GET("", inducteeHandler.List)
			inductees.POST("", inducteeHandler.Create)
			inductees.GET("/:id", inducteeHandler.Get)
			inductees.PUT("/:id", inducteeHandler.Update)
			inductees.DELETE("/:id", inducteeHandler.Delete)
		}

		photos := v1.Group("/photos")
		{
			photos.GET("", photoHandler.List) // Requires inducteeId parameter
			photos.POST("", photoHandler.Create)
			photos.GET("/:id", photoHandler.Get)
			photos.PUT("/:id", photoHandler.Update)
			photos.DELETE("/:id", photoHandler.Delete)
		}

		videos := v1.Group("/videos")
		{
			videos.GET("", videoHandler.List)
			videos.POST("", videoHandler.Create)
			videos.GET("/:id", videoHandler.Get)
			videos.PUT("/:id", videoHandler.Update)
			videos.DELETE("/:id", videoHandler.Delete)
		}

		championships := v1.Group("/championships")
		{
			championships.GET("", championshipHandler.List)
			championships.POST("", championshipHandler.Create)
			championships.GET("/:id", championshipHandler.Get)
			championships.PUT("/:id", championshipHandler.Update)
			championships.DELETE("/:id", championshipHandler.Delete)
		}

		championshipPhotos := v1.Group("/championship-photos")
		{
			championshipPhotos.GET("", championshipPhotoHandler.List) // Requires championshipId parameter
			championshipPhotos.POST("", championshipPhotoHandler.Create)
			championshipPhotos.GET("/:id", championshipPhotoHandler.Get)
			championshipPhotos.PUT("/:id", championshipPhotoHandler.Update)
			championshipPhotos.POST("/:id/promote", championshipPhotoHandler.Promote)
			championshipPhotos.DELETE("/:id", championshipPhotoHandler.Delete)
		}

		pages := v1.Group("/pages")
		{
			pages.GET("/:page", pageHandler.Get)
			pages.PUT("/:page", pageHandler.Save)
			pages.POST("/:page/preview", pageHandler.Preview)
			pages.POST("/:page/sections/:section", pageHandler.EditSection)
		}

		uploads := v1.Group("/uploads")
		{
			uploads.POST("", uploadHandler.Upload)
			uploads.DELETE("", uploadHandler.Remove)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/seed", seedHandler.Start)
			admin.GET("/seed/progress", seedHandler.Progress)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		logger.WithContext(c).Debugf("No route for %s %s", c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusNotFound, gin.H{"data": nil, "error": "endpoint not found: " + c.Request.URL.Path})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(store handlers.Pinger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(store, Version)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
