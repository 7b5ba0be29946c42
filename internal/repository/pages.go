package repository

import (
	"context"
	"errors"

	"artist-portfolio/internal/domain/site"
	"artist-portfolio/internal/pkg/apperror"

	"gorm.io/gorm"
)

type Pages interface {
	// FindPublished returns a published page with its blocks in sort order.
	FindPublished(ctx context.Context, slug string) (site.SitePage, error)
}

type GormPages struct {
	db *gorm.DB
}

func NewGormPages(db *gorm.DB) *GormPages {
	return &GormPages{db: db}
}

func (r *GormPages) FindPublished(ctx context.Context, slug string) (site.SitePage, error) {
	var p site.SitePage
	err := r.db.WithContext(ctx).
		Preload("Blocks", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_index ASC")
		}).
		Where("slug = ? AND status = ?", slug, site.StatusPublished).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, apperror.ErrPageNotFound
	}
	if err != nil {
		return p, apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to load page")
	}
	return p, nil
}
