package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quangtran-dev/storefront-api/internal/config"
	"github.com/quangtran-dev/storefront-api/internal/handler"
	"github.com/quangtran-dev/storefront-api/internal/repository"
	"github.com/quangtran-dev/storefront-api/internal/service"
	"github.com/quangtran-dev/storefront-api/internal/utils"
	"github.com/quangtran-dev/storefront-api/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

type handlers struct {
	auth     *handler.AuthHandler
	product  *handler.ProductHandler
	category *handler.CategoryHandler
	banner   *handler.BannerHandler
	cart     *handler.CartHandler
	order    *handler.OrderHandler
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Postgres())

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry.Duration,
		cfg.JWT.RefreshTokenExpiry.Duration,
	)

	blacklistService := service.NewTokenBlacklistService(infra.Redis())
	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	authService := service.NewAuthService(
		repos.User,
		repos.Token,
		repos.LoginAttempt,
		jwtManager,
		blacklistService,
		infra.Logger(),
		service.AuthServiceConfig{
			BCryptCost:        cfg.Security.BCryptCost,
			MinPasswordLength: cfg.Security.MinPasswordLength,
			AttemptLimit:      cfg.Security.LoginAttemptLimit,
			AttemptWindow:     cfg.Security.LoginAttemptWindow.Duration,
			DefaultEmail:      cfg.Security.RegisterDefaultEmail,
		},
	)

	productService := service.NewProductService(repos.Product, repos.Category, repos.Order)
	categoryService := service.NewCategoryService(repos.Category)
	bannerService := service.NewBannerService(repos.Banner)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	orderService := service.NewOrderService(repos.Order)

	h := handlers{
		auth:     handler.NewAuthHandler(authService),
		product:  handler.NewProductHandler(productService),
		category: handler.NewCategoryHandler(categoryService),
		banner:   handler.NewBannerHandler(bannerService),
		cart:     handler.NewCartHandler(cartService),
		order:    handler.NewOrderHandler(orderService),
	}

	router := gin.Default()
	router.Use(otelgin.Middleware("storefront-api"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, h, authService, rateLimiter, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	h handlers,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	authRequired := handler.AuthMiddleware(authService)
	adminRequired := handler.AdminMiddleware()
	loginRateLimit := handler.RateLimitMiddleware(
		rateLimiter,
		cfg.Security.RateLimitRequests,
		cfg.Security.RateLimitWindow.Duration,
		handler.IPBasedKey,
	)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", loginRateLimit, h.auth.Register)
			auth.POST("/login", loginRateLimit, h.auth.Login)
			auth.POST("/refresh", h.auth.Refresh)
			auth.POST("/logout", h.auth.Logout)
			auth.GET("/me", authRequired, h.auth.GetMe)
		}

		products := api.Group("/products")
		{
			products.GET("", h.product.List)
			products.GET("/:id", h.product.Get)
			products.POST("", authRequired, adminRequired, h.product.Create)
			products.PUT("/:id", authRequired, adminRequired, h.product.Update)
			products.PUT("/:id/stock", authRequired, adminRequired, h.product.UpdateStock)
			products.DELETE("/:id", authRequired, adminRequired, h.product.Delete)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.category.ListCategories)
			categories.GET("/:id", h.category.GetCategory)
			categories.GET("/:id/subcategories", h.category.ListSubCategories)
			categories.POST("", authRequired, adminRequired, h.category.CreateCategory)
			categories.PUT("/:id", authRequired, adminRequired, h.category.UpdateCategory)
			categories.DELETE("/:id", authRequired, adminRequired, h.category.DeleteCategory)
		}

		subcategories := api.Group("/subcategories")
		{
			subcategories.GET("/:id", h.category.GetSubCategory)
			subcategories.POST("", authRequired, adminRequired, h.category.CreateSubCategory)
			subcategories.PUT("/:id", authRequired, adminRequired, h.category.UpdateSubCategory)
			subcategories.DELETE("/:id", authRequired, adminRequired, h.category.DeleteSubCategory)
		}

		banners := api.Group("/banners")
		{
			banners.GET("", h.banner.List)
			banners.GET("/:id", h.banner.Get)
			banners.POST("", authRequired, adminRequired, h.banner.Create)
			banners.PUT("/:id", authRequired, adminRequired, h.banner.Update)
			banners.DELETE("/:id", authRequired, adminRequired, h.banner.Delete)
		}

		cart := api.Group("/cart", authRequired)
		{
			cart.GET("", h.cart.Get)
			cart.POST("/items", h.cart.AddItem)
			cart.PUT("/items/:itemId", h.cart.UpdateItem)
			cart.DELETE("/items/:itemId", h.cart.RemoveItem)
			cart.DELETE("", h.cart.Clear)
		}

		orders := api.Group("/orders", authRequired)
		{
			orders.POST("", h.order.Create)
			orders.GET("", h.order.List)
			orders.GET("/:id", h.order.Get)
			orders.PUT("/:id/status", adminRequired, h.order.UpdateStatus)
			orders.DELETE("/:id", adminRequired, h.order.Delete)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
