package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"wqtc-api/internal/middleware"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth          *AuthHandler
	Library       *LibraryHandler
	Surahs        *SurahHandler
	EBooks        *EBookHandler
	Registrations *RegistrationHandler
	Health        *HealthHandler
}

// RouterConfig holds the router's non-handler dependencies.
type RouterConfig struct {
	CORSOrigins   []string
	StaticDir     string
	Authenticator middleware.Authenticator
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.AccessLog())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Health and metrics endpoints
	router.GET("/", h.Health.Root)
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.StaticDir != "" {
		router.Static(middleware.StaticRoutePrefix, cfg.StaticDir)
	}

	admin := middleware.RequireAdmin()

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(cfg.Authenticator))
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/me", middleware.RequireAuth(), h.Auth.Me)
		}

		library := v1.Group("/library")
		{
			library.POST("", h.Library.Search)
			library.POST("/create", admin, h.Library.Create)
			library.PUT("/:id", admin, h.Library.Update)
			library.DELETE("/:id", admin, h.Library.Delete)
			library.POST("/bulk-preview", admin, h.Library.BulkPreview)
			library.POST("/bulk-create", admin, h.Library.BulkCreate)
			library.GET("/bulk-template", admin, h.Library.BulkTemplate)
			library.GET("/export", admin, h.Library.Export)
		}

		surahs := v1.Group("/surah")
		{
			surahs.GET("", h.Surahs.List)
			surahs.POST("", admin, h.Surahs.Create)
			surahs.DELETE("/:id", admin, h.Surahs.Delete)
		}

		ebooks := v1.Group("/ebooks")
		{
			ebooks.GET("", h.EBooks.List)
			ebooks.POST("", admin, h.EBooks.Create)
			ebooks.PUT("/:id", admin, h.EBooks.Update)
			ebooks.DELETE("/:id", admin, h.EBooks.Delete)
			ebooks.POST("/upload-pdf", admin, h.EBooks.UploadPDF)
			ebooks.POST("/upload-cover", admin, h.EBooks.UploadCover)
		}

		registrations := v1.Group("/class-registration")
		{
			registrations.POST("", h.Registrations.Register)
			registrations.GET("", admin, h.Registrations.List)
			registrations.PUT("/:id", admin, h.Registrations.UpdateStatus)
		}
	}

	return router
}
