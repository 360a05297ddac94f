package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tuning_backend/internals/configs"
	brandModel "tuning_backend/internals/features/catalog/brands/model"
	carModel "tuning_backend/internals/features/catalog/car_models/model"
	colorModel "tuning_backend/internals/features/catalog/colors/model"
	partModel "tuning_backend/internals/features/catalog/parts/model"
	customizationModel "tuning_backend/internals/features/customizations/model"
	userModel "tuning_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=tuning&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER", "postgres"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME", "tuning"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to database: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("[WARN] warm-up ping err: %v", err)
			return
		}
		var n int64
		if err := DB.Model(&brandModel.BrandModel{}).Count(&n).Error; err != nil {
			log.Printf("[WARN] warm-up query err: %v", err)
		}
	}()
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Models lists every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&brandModel.BrandModel{},
		&carModel.CarModelModel{},
		&partModel.PartModel{},
		&partModel.PartCompatibilityModel{},
		&colorModel.ColorModel{},
		&customizationModel.CustomizationModel{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
