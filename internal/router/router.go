package router

import (
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/config"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/handler"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/infra"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/middleware"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/service"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, net *infra.ConnectivityWatcher, advisorCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	tenantRepo := repository.NewTenantRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(tenantRepo, staffRepo, cfg)
	tenantSvc := service.NewTenantService(tenantRepo, net, dispatcher, cfg)
	productSvc := service.NewProductService(productRepo)
	staffSvc := service.NewStaffService(staffRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, tenantRepo, dispatcher)
	insightSvc := service.NewInsightService(rdb, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	tenantsH := handler.NewTenantsHandler(tenantSvc)
	settingsH := handler.NewSettingsHandler(tenantSvc)
	productsH := handler.NewProductsHandler(productSvc)
	staffH := handler.NewStaffHandler(staffSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	insightsH := handler.NewInsightsHandler(insightSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, net, advisorCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes. The JWT middleware re-resolves the tenant on every
	// request, so a deleted, suspended or expired node kills live sessions.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret, tenantRepo)
	v1 := r.Group("/v1", jwtMW)
	{
		// Every authenticated session can ask what screens it may open.
		v1.GET("/views", handler.Views)

		// Platform admin panel — tenant registry lifecycle
		admin := v1.Group("/admin/tenants", middleware.RequireRole(model.RolePlatformAdmin))
		{
			admin.POST("", tenantsH.Provision)
			admin.GET("", tenantsH.List)
			admin.GET("/:id", tenantsH.Get)
			admin.PUT("/:id", tenantsH.Update)
			admin.PATCH("/:id/status", tenantsH.SetStatus)
			admin.DELETE("/:id", tenantsH.Delete)
		}

		// Register — owner and staff both sell
		v1.POST("/orders", middleware.RequireRole(model.RoleShopOwner, model.RoleStaff), ordersH.Complete)
		v1.GET("/orders", middleware.RequireRole(model.RoleShopOwner, model.RoleStaff), ordersH.List)
		v1.GET("/orders/summary", middleware.RequireRole(model.RoleShopOwner, model.RoleStaff), ordersH.Summary)

		// Catalog — everyone in the shop reads it, only the owner writes
		v1.GET("/products", middleware.RequireRole(model.RoleShopOwner, model.RoleStaff), productsH.List)
		prods := v1.Group("/products", middleware.RequireRole(model.RoleShopOwner))
		{
			prods.POST("", productsH.Create)
			prods.PUT("/:id", productsH.Update)
			prods.PATCH("/:id/stock", productsH.AdjustStock)
			prods.DELETE("/:id", productsH.Delete)
		}

		// Staff roster — owner only
		staff := v1.Group("/staff", middleware.RequireRole(model.RoleShopOwner))
		{
			staff.POST("", staffH.Create)
			staff.GET("", staffH.List)
			staff.PUT("/:id", staffH.Update)
			staff.DELETE("/:id", staffH.Delete)
		}

		// Shop settings — owner only, never connectivity-gated
		settings := v1.Group("/settings", middleware.RequireRole(model.RoleShopOwner))
		{
			settings.GET("", settingsH.Get)
			settings.PUT("", settingsH.Update)
		}

		// Smart insights — reports surface, owner and staff
		v1.GET("/insights", middleware.RequireRole(model.RoleShopOwner, model.RoleStaff), insightsH.Latest)
		v1.POST("/insights/refresh", middleware.RequireRole(model.RoleShopOwner, model.RoleStaff), insightsH.Refresh)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
