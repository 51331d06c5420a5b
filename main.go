package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/antarcticanco/storefront-app/cart"
	"github.com/antarcticanco/storefront-app/catalog"
	"github.com/antarcticanco/storefront-app/config"
	"github.com/antarcticanco/storefront-app/events"
	"github.com/antarcticanco/storefront-app/middlewares"
	"github.com/antarcticanco/storefront-app/models"
	"github.com/antarcticanco/storefront-app/router"
	"github.com/antarcticanco/storefront-app/utils"
)

func main() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	autoMigrate(db)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Seluruh state sesi dimiliki di sini dan di-inject ke router;
	// tidak ada store global.
	deps := router.Deps{
		DB:      db,
		Config:  cfg,
		Catalog: catalog.NewStore(),
		Carts:   cart.NewManager(cart.PricingOptions{ClampNonNegative: cfg.ClampNonNegativePrice}),
		Hub:     events.NewDashboardHub(),
	}

	r := setupEngine(deps)

	utils.InfoLogger.Printf("Antarctican storefront listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func setupEngine(deps router.Deps) *gin.Engine {
	r := router.SetupRouter(deps)

	// Rate limit global (50 request per detik per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})
	return r
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Order{},
		&models.StorageBlob{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
