package routes

import (
	"table-checkout-backend/internal/api/handlers"
	"table-checkout-backend/internal/api/middleware"
	"table-checkout-backend/internal/config"
	"table-checkout-backend/internal/matcher"
	"table-checkout-backend/internal/repository"
	"table-checkout-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
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

	// Initialize validator
	validator := validator.New()

	// Initialize the name matcher with configured thresholds
	nameMatcher := matcher.NewWithThresholds(cfg.MatchSimilarityThreshold, cfg.MatchExactThreshold)

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	tableRepo := repository.NewTableRepository(db)
	checkoutRepo := repository.NewCheckoutRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, checkoutRepo, nameMatcher, validator)
	tableService := service.NewTableService(tableRepo, checkoutRepo, validator)
	checkoutService := service.NewCheckoutService(checkoutRepo, tableRepo, organizationRepo, organizationService, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	tableHandler := handlers.NewTableHandler(tableService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.POST("/search-matches", organizationHandler.SearchMatches)
			organizations.POST("/validate-checkout", organizationHandler.ValidateCheckout)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.POST("/:id/ban", organizationHandler.BanOrganization)
			organizations.POST("/:id/unban", organizationHandler.UnbanOrganization)
		}

		// Table routes
		tables := v1.Group("/tables")
		{
			tables.GET("", tableHandler.ListTables)
			tables.POST("", tableHandler.CreateTable)
			tables.GET("/:id", tableHandler.GetTable)
			tables.PUT("/:id", tableHandler.UpdateTable)
			tables.DELETE("/:id", tableHandler.DeleteTable)
			tables.PUT("/:id/status", tableHandler.SetTableStatus)
		}

		// Checkout routes
		checkouts := v1.Group("/checkouts")
		{
			checkouts.GET("", checkoutHandler.ListCheckouts)
			checkouts.POST("", checkoutHandler.CreateCheckout)
			checkouts.GET("/active", checkoutHandler.GetActiveCheckouts)
			checkouts.GET("/overdue", checkoutHandler.GetOverdueCheckouts)
			checkouts.GET("/stats", checkoutHandler.GetCheckoutStats)
			checkouts.GET("/:id", checkoutHandler.GetCheckout)
			checkouts.POST("/:id/return", checkoutHandler.ReturnCheckout)
		}
	}

	return router
}
