package database

import (
	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		logger.Log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to connect to database")
	}

	DB = db

	// gen_random_uuid() for artwork and page ids
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		logger.Log.WithError(err).Fatal("failed to enable pgcrypto extension")
	}

	if err := DB.AutoMigrate(
		&users.User{},
		&works.Artwork{},
		&site.SitePage{},
		&site.SitePageBlock{},
	); err != nil {
		logger.Log.WithError(err).Fatal("auto-migrate failed")
	}

	logger.Log.Info("connected and migrated")
}
