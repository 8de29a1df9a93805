package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nyumbani-farms/herdbook/pkg/logger"
)

var (
	DB  *gorm.DB
	Log *zap.Logger
)

func Connect() {
	Log = logger.Must(logger.New())

	// Load .env file
	if err := godotenv.Load(); err != nil {
		Log.Info("no .env file found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := Migrations(DB); err != nil {
		Log.Fatal("failed to run migrations", zap.Error(err))
	}
}
