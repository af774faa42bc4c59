package config

import (
	"log"
	"os"
	"time"

	"campus-eats-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

type Config struct {
	DBSource  string
	Port      string
	JWTSecret []byte
	JWTTTL    time.Duration
	UploadDir string
}

// Load reads .env (if present) and builds the config from env vars.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	return &Config{
		DBSource:  getEnv("DB_SOURCE", "campus_eats.db"),
		Port:      getEnv("PORT", "8080"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "campus_eats_super_secret_2026")),
		JWTTTL:    24 * time.Hour,
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the sqlite database and migrates the schema.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func InitDB(dsn string) {
	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodCategory{},
		&models.Food{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Rating{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}
