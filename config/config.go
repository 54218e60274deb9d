package config

import (
	"fmt"
	"log"
	"os"

	"github.com/qashsolutions/myhealthguide-sub011/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate applies the schema. Split out so tests can run it against an
// in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CareGroup{},
		&models.GroupMember{},
		&models.GroupInvite{},
		&models.Elder{},
		&models.Medication{},
		&models.DietEntry{},
		&models.CareNote{},
		&models.ScheduleConflict{},
		&models.NutritionReport{},
		&models.Alert{},
		&models.UserDevice{},
		&models.Subscription{},
		&models.ChatSession{},
		&models.ChatMessage{},
	)
}
