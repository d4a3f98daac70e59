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
	gormlogger "gorm.io/gorm/logger"

	catalogapp "github.com/temucosoft/retail-backend/internal/application/catalog"
	identityapp "github.com/temucosoft/retail-backend/internal/application/identity"
	inventoryapp "github.com/temucosoft/retail-backend/internal/application/inventory"
	shopapp "github.com/temucosoft/retail-backend/internal/application/shop"
	tradeapp "github.com/temucosoft/retail-backend/internal/application/trade"
	"github.com/temucosoft/retail-backend/internal/infrastructure/auth"
	"github.com/temucosoft/retail-backend/internal/infrastructure/config"
	"github.com/temucosoft/retail-backend/internal/infrastructure/logger"
	"github.com/temucosoft/retail-backend/internal/infrastructure/persistence"
	"github.com/temucosoft/retail-backend/internal/interfaces/http/handler"
	"github.com/temucosoft/retail-backend/internal/interfaces/http/middleware"
	"github.com/temucosoft/retail-backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync(log)

	log.Info("Starting retail backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port))

	gormLevel := gormlogger.Silent
	if cfg.Log.Level == "debug" {
		gormLevel = gormlogger.Info
	}
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLevel)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	branchRepo := persistence.NewGormBranchRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)
	movementRepo := persistence.NewGormMovementRepository(db.DB)
	purchaseRepo := persistence.NewGormPurchaseRepository(db.DB)
	saleRepo := persistence.NewGormSaleRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)

	inventoryScope := persistence.NewGormInventoryTransactionScope(db.DB)
	tradeScope := persistence.NewGormTradeTransactionScope(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, companyRepo, jwtService, log)
	userService := identityapp.NewUserService(userRepo, log)
	companyService := identityapp.NewCompanyService(companyRepo, log)
	catalogService := catalogapp.NewService(productRepo, categoryRepo, supplierRepo, log)
	inventoryService := inventoryapp.NewService(inventoryScope, inventoryRepo, movementRepo, log)
	branchService := inventoryapp.NewBranchService(branchRepo, log)
	purchaseService := tradeapp.NewPurchaseService(tradeScope, purchaseRepo, productRepo, log)
	saleService := tradeapp.NewSaleService(tradeScope, saleRepo, productRepo, log)
	orderService := tradeapp.NewOrderService(tradeScope, orderRepo, log)
	cartService := shopapp.NewCartService(cartRepo, productRepo, orderRepo, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(cfg.HTTP.CORSAllowOrigins))

	engine.GET("/health", healthHandler(db))

	router.Setup(engine, jwtService, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Company:   handler.NewCompanyHandler(companyService),
		User:      handler.NewUserHandler(userService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Inventory: handler.NewInventoryHandler(inventoryService, branchService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Sale:      handler.NewSaleHandler(saleService),
		Order:     handler.NewOrderHandler(orderService),
		Cart:      handler.NewCartHandler(cartService),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
