package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config menampung semua setting aplikasi yang dibaca dari environment.
type Config struct {
	Port    string
	GinMode string

	DBDriver string
	DBDSN    string

	EmployeeAccessCode string
	EmployeeAccessHash string // bcrypt hash, dipakai jika di-set

	DeliveryFee     float64
	TaxRate         float64
	CheckoutDelayMS int

	// ClampNonNegativePrice mengaktifkan floor nol untuk harga efektif
	// (kombinasi adjustment negatif). Default mengikuti perilaku asli: off.
	ClampNonNegativePrice bool

	RecommenderURL    string
	RecommenderAPIKey string
	RecommenderModel  string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "storefront.db"),

		EmployeeAccessCode: getEnv("EMPLOYEE_ACCESS_CODE", "2724"),
		EmployeeAccessHash: os.Getenv("EMPLOYEE_ACCESS_CODE_HASH"),

		DeliveryFee:     getEnvFloat("DELIVERY_FEE", 5.00),
		TaxRate:         getEnvFloat("TAX_RATE", 0.08),
		CheckoutDelayMS: getEnvInt("CHECKOUT_DELAY_MS", 1500),

		ClampNonNegativePrice: getEnv("CART_CLAMP_NONNEGATIVE", "false") == "true",

		RecommenderURL:    os.Getenv("RECOMMENDER_URL"),
		RecommenderAPIKey: os.Getenv("RECOMMENDER_API_KEY"),
		RecommenderModel:  getEnv("RECOMMENDER_MODEL", "text-suggest-1"),
	}
}

// InitDB membuka koneksi database sesuai driver di env.
// Default sqlite supaya demo bisa jalan tanpa setup apapun.
func InitDB(cfg *Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
