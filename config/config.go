package config

import (
	"log"
	"os"

	"resto-menu-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign panel tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "resto_menu_super_secret_2024"))

// StoreWhatsApp is the restaurant's WhatsApp number, used to build the
// confirmation link customers send their order to.
var StoreWhatsApp = getEnv("STORE_WHATSAPP", "5492291000000")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	dsn := getEnv("DB_PATH", "resto_menu.db") + "?_pragma=foreign_keys(1)"
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if err := SeedStaff(DB); err != nil {
		log.Fatal("Failed to seed staff account:", err)
	}

	log.Println("✅ Database connected and migrated successfully")
}

// Migrate runs the schema migrations for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Staff{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// SeedStaff creates the initial panel account when none exists.
// Username/password come from ADMIN_USERNAME / ADMIN_PASSWORD.
func SeedStaff(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Staff{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	username := getEnv("ADMIN_USERNAME", "admin")
	password := getEnv("ADMIN_PASSWORD", "admin123")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	staff := models.Staff{Username: username, PasswordHash: string(hash)}
	if err := db.Create(&staff).Error; err != nil {
		return err
	}
	log.Printf("Seeded panel account %q", username)
	return nil
}
