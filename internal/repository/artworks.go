package repository

import (
	"context"
	"errors"

	"artist-portfolio/internal/domain/works"
	"artist-portfolio/internal/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artworks is the persistence boundary for the artwork table.
type Artworks interface {
	// List returns every artwork, newest first.
	List(ctx context.Context) ([]works.Artwork, error)
	ListFavourites(ctx context.Context) ([]works.Artwork, error)
	Get(ctx context.Context, id string) (works.Artwork, error)
	Create(ctx context.Context, a *works.Artwork) error
	Update(ctx context.Context, a *works.Artwork) error
	MarkSold(ctx context.Context, id string) error
}

// editableColumns are written on update; NULLs included.
var editableColumns = []string{
	"title", "description", "category", "image_url", "image_path",
	"is_favourite", "is_sold", "price", "store_url", "date", "updated_at",
}

type GormArtworks struct {
	db *gorm.DB
}

func NewGormArtworks(db *gorm.DB) *GormArtworks {
	return &GormArtworks{db: db}
}

func (r *GormArtworks) List(ctx context.Context) ([]works.Artwork, error) {
	var out []works.Artwork
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to load artworks")
	}
	return out, nil
}

func (r *GormArtworks) ListFavourites(ctx context.Context) ([]works.Artwork, error) {
	var out []works.Artwork
	err := r.db.WithContext(ctx).
		Where("is_favourite = ? AND image_url IS NOT NULL AND image_url <> ''", true).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to load favourites")
	}
	return out, nil
}

func (r *GormArtworks) Get(ctx context.Context, id string) (works.Artwork, error) {
	var a works.Artwork
	if _, err := uuid.Parse(id); err != nil {
		return a, apperror.ErrArtworkNotFound
	}
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return a, apperror.ErrArtworkNotFound
	}
	if err != nil {
		return a, apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to load artwork")
	}
	return a, nil
}

func (r *GormArtworks) Create(ctx context.Context, a *works.Artwork) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to save artwork")
	}
	return nil
}

func (r *GormArtworks) Update(ctx context.Context, a *works.Artwork) error {
	res := r.db.WithContext(ctx).
		Model(&works.Artwork{ID: a.ID}).
		Select(editableColumns).
		Updates(a)
	if res.Error != nil {
		return apperror.Wrap(res.Error, apperror.ErrCodeDatabase, "Failed to update artwork")
	}
	if res.RowsAffected == 0 {
		return apperror.ErrArtworkNotFound
	}
	return nil
}

func (r *GormArtworks) MarkSold(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.ErrArtworkNotFound
	}
	res := r.db.WithContext(ctx).
		Model(&works.Artwork{}).
		Where("id = ?", id).
		Update("is_sold", true)
	if res.Error != nil {
		return apperror.Wrap(res.Error, apperror.ErrCodeDatabase, "Failed to mark artwork sold")
	}
	if res.RowsAffected == 0 {
		return apperror.ErrArtworkNotFound
	}
	return nil
}
