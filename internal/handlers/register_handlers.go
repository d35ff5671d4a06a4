package handlers

import (
	"github.com/frigosaas/frigo-backend/cmd/docs"
	portssvc "github.com/frigosaas/frigo-backend/internal/core/ports/services"
	"github.com/frigosaas/frigo-backend/internal/middleware"
	"github.com/frigosaas/frigo-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// API v1 routes behind the Auth Middleware
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerTenantRoutes(v1, services)
}

// registerTenantRoutes registers tenant management routes and nests all
// tenant-scoped resources beneath /tenants/:tenant_id.
func registerTenantRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTenantHandler(services.Tenant)

	tenants := rg.Group("/tenants")
	{
		tenants.POST("", h.createTenant)
		tenants.GET("", h.listUserTenants)
	}

	tenantScoped := rg.Group("/tenants/:tenant_id")
	{
		tenantScoped.GET("", h.getTenant)
		tenantScoped.PUT("", h.updateTenant)

		members := tenantScoped.Group("/members")
		{
			members.GET("", h.listMembers)
			members.POST("", h.addMember)
			members.PUT("/:user_id", h.updateMemberRole)
			members.DELETE("/:user_id", h.removeMember)
		}

		registerTenantUserRoutes(tenantScoped, services.User)
		registerClientRoutes(tenantScoped, services.Client)
		registerReservationRoutes(tenantScoped, services.Reservation)
		registerLoanRoutes(tenantScoped, services.Loan)
		registerReceptionRoutes(tenantScoped, services.Reception)
		registerInvoiceRoutes(tenantScoped, services.Invoice)
		registerCashRoutes(tenantScoped, services.Cash, services.ReceiptStorage)
		registerAuditRoutes(tenantScoped, services.Audit)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
