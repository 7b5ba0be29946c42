package database

import (
	"errors"
	"strings"

	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the admin account when it does not exist yet. An existing
// account is left untouched so a changed password survives restarts.
func SeedAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		logger.Log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing users.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hashed)

	admin := users.User{
		Name:         "Admin",
		Email:        email,
		Password:     &h,
		AuthProvider: users.ProviderLocal,
		Role:         users.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Log.WithField("email", email).Info("seeded admin account")
	return nil
}

// SeedPages inserts the default public pages that are missing.
func SeedPages(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, page := range site.DefaultPages() {
			var count int64
			if err := tx.Model(&site.SitePage{}).Where("slug = ?", page.Slug).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			blocks := page.Blocks
			page.Blocks = nil
			if err := tx.Create(&page).Error; err != nil {
				return err
			}
			for i := range blocks {
				blocks[i].PageID = page.ID
			}
			if len(blocks) > 0 {
				if err := tx.Create(&blocks).Error; err != nil {
					return err
				}
			}
			logger.Log.WithField("slug", page.Slug).Info("seeded page")
		}
		return nil
	})
}
