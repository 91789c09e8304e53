package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/api/handlers"
	"github.com/chriso789/pitch-1-sub003/internal/api/middleware"
	"github.com/chriso789/pitch-1-sub003/internal/auth"
	"github.com/chriso789/pitch-1-sub003/internal/config"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
	"github.com/chriso789/pitch-1-sub003/internal/service"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	// Initialize validator
	validator := validator.New()

	// Shared number allocator; every repository insert that numbers a row
	// goes through the same retry budget
	allocator := numbering.NewAllocator(cfg.AllocationMaxAttempts)

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	userRepo := repository.NewUserRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	contactRepo := repository.NewContactRepository(db, allocator)
	pipelineRepo := repository.NewPipelineEntryRepository(db, allocator)
	jobRepo := repository.NewJobRepository(db, allocator)
	counterRepo := repository.NewSequenceCounterRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	tenantService := service.NewTenantService(tenantRepo, validator)
	locationService := service.NewLocationService(locationRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, locationRepo, validator)
	contactService := service.NewContactService(contactRepo, auditService, validator)
	pipelineService := service.NewPipelineService(pipelineRepo, contactRepo, auditService, validator)
	jobService := service.NewJobService(jobRepo, pipelineRepo, auditService, validator)

	// Initialize auth
	authService := auth.NewAuthService(cfg, userRepo, membershipRepo)
	authHandler := handlers.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	locationHandler := handlers.NewLocationHandler(locationService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	contactHandler := handlers.NewContactHandler(contactService, pipelineService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	jobHandler := handlers.NewJobHandler(jobService)
	counterHandler := handlers.NewCounterHandler(counterRepo)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus scrape endpoint
	router.GET("/metrics", middleware.MetricsHandler())

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Authenticated auth routes
		authed := v1.Group("/auth")
		{
			authed.GET("/me", authHandler.Me)
			authed.POST("/switch-tenant", authHandler.SwitchTenant)
		}

		// Tenant routes: platform administration, master only
		tenants := v1.Group("/tenants")
		tenants.Use(authMiddleware.RequireRole(models.RoleMaster))
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeactivateTenant)
		}

		// Location routes
		locations := v1.Group("/locations")
		{
			locations.GET("", locationHandler.ListLocations)
			locations.POST("", authMiddleware.RequireRole(models.RoleAdmin), locationHandler.CreateLocation)
		}

		// Membership routes
		memberships := v1.Group("/memberships")
		{
			memberships.GET("", membershipHandler.ListMemberships)
			memberships.POST("", authMiddleware.RequireRole(models.RoleAdmin), membershipHandler.CreateMembership)
			memberships.POST("/:id/locations", authMiddleware.RequireRole(models.RoleAdmin), membershipHandler.AssignLocation)
		}

		// Contact routes
		contacts := v1.Group("/contacts")
		{
			contacts.GET("", contactHandler.ListContacts)
			contacts.POST("", contactHandler.CreateContact)
			contacts.GET("/:id", contactHandler.GetContact)
			contacts.PUT("/:id", contactHandler.UpdateContact)
			contacts.GET("/:id/pipeline", contactHandler.ListContactPipeline)
		}

		// Pipeline routes
		pipeline := v1.Group("/pipeline")
		{
			pipeline.GET("", pipelineHandler.ListPipelineEntries)
			pipeline.POST("", pipelineHandler.CreatePipelineEntry)
			pipeline.POST("/normalize-statuses", authMiddleware.RequireRole(models.RoleAdmin), pipelineHandler.NormalizeStatuses)
			pipeline.POST("/refresh-labels", authMiddleware.RequireRole(models.RoleAdmin), pipelineHandler.RefreshLabels)
			pipeline.GET("/:id", pipelineHandler.GetPipelineEntry)
			pipeline.PATCH("/:id/status", pipelineHandler.UpdateStatus)
		}

		// Job routes
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.ListJobs)
			jobs.POST("", jobHandler.CreateJob)
			jobs.GET("/:id", jobHandler.GetJob)
			jobs.PUT("/:id", jobHandler.UpdateJob)
		}

		// Diagnostics: fallback counter state (admin+)
		v1.GET("/counters", authMiddleware.RequireRole(models.RoleAdmin), counterHandler.ListCounters)

		// Audit log routes (read only)
		v1.GET("/audit-logs", auditHandler.ListAuditLogs)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
