package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/jadefire/storefront/internal/application/cart"
	catalogapp "github.com/jadefire/storefront/internal/application/catalog"
	checkoutapp "github.com/jadefire/storefront/internal/application/checkout"
	orderapp "github.com/jadefire/storefront/internal/application/order"
	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/jadefire/storefront/internal/domain/order"
	"github.com/jadefire/storefront/internal/infrastructure/auth"
	"github.com/jadefire/storefront/internal/infrastructure/cache"
	"github.com/jadefire/storefront/internal/infrastructure/config"
	"github.com/jadefire/storefront/internal/infrastructure/logger"
	"github.com/jadefire/storefront/internal/infrastructure/persistence"
	"github.com/jadefire/storefront/internal/interfaces/http/handler"
	"github.com/jadefire/storefront/internal/interfaces/http/middleware"
	"github.com/jadefire/storefront/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(&cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Cart store: Redis when reachable, in-memory otherwise so a missing
	// Redis never takes the storefront down
	var cartStore cart.Store
	redisStore, err := cache.NewRedisCartStore(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, cfg.Checkout.CartTTL, log)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory cart store", zap.Error(err))
		cartStore = cache.NewInMemoryCartStore(cfg.Checkout.CartTTL)
	} else {
		cartStore = redisStore
		log.Info("Cart store backed by Redis", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	variantRepo := persistence.NewGormVariantRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	txManager := persistence.NewGormTransactionManager(db.DB)

	// Pricing rules shared by cart summaries and checkout
	pricingPolicy := order.NewPricingPolicy(
		cfg.Checkout.FreeShippingThreshold,
		cfg.Checkout.ShippingFee,
		cfg.Checkout.TaxRate,
	)

	// Initialize application services
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo)
	productService := catalogapp.NewProductService(productRepo, variantRepo, orderRepo, txManager, log)
	variantService := catalogapp.NewVariantService(variantRepo, productRepo, orderRepo, log)
	cartService := cartapp.NewService(cartStore, productRepo, categoryRepo, pricingPolicy, log)
	resolver := checkoutapp.NewResolver(productRepo, variantRepo, categoryRepo, log)
	checkoutService := checkoutapp.NewService(cartStore, resolver, orderRepo, addressRepo, txManager, pricingPolicy, log)
	orderService := orderapp.NewService(orderRepo, log)

	// Token verification; issuance belongs to the identity provider
	tokenVerifier := auth.NewTokenVerifier(cfg.JWT)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(db.DB)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	variantHandler := handler.NewVariantHandler(variantService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	orderHandler := handler.NewOrderHandler(orderService)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so recovery and logging carry it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Route tiers: public storefront, signed-in customers, admin console
	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAuthMiddleware(middleware.JWTAuth(tokenVerifier, log)),
		router.WithAdminMiddleware(middleware.RequireAdmin()),
	)
	r.Public(systemHandler, categoryHandler, productHandler, cartHandler)
	r.Authed(checkoutHandler, orderHandler)
	r.Admin(categoryHandler, productHandler, variantHandler, orderHandler)
	r.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
