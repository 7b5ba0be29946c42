package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"artist-portfolio/internal/domain/users"
	"artist-portfolio/internal/pkg/apperror"

	"gorm.io/gorm"
)

type Users interface {
	FindByEmail(ctx context.Context, email string) (users.User, error)
	FindByID(ctx context.Context, id uint) (users.User, error)
	FindByGoogleSub(ctx context.Context, sub string) (users.User, error)
	LinkGoogle(ctx context.Context, id uint, sub string) error
	TouchLastLogin(ctx context.Context, id uint, at time.Time) error
}

type GormUsers struct {
	db *gorm.DB
}

func NewGormUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{db: db}
}

func (r *GormUsers) first(ctx context.Context, query string, args ...any) (users.User, error) {
	var u users.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return u, apperror.ErrUserNotFound
	}
	if err != nil {
		return u, apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to load user")
	}
	return u, nil
}

func (r *GormUsers) FindByEmail(ctx context.Context, email string) (users.User, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *GormUsers) FindByID(ctx context.Context, id uint) (users.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GormUsers) FindByGoogleSub(ctx context.Context, sub string) (users.User, error) {
	return r.first(ctx, "google_sub = ?", sub)
}

func (r *GormUsers) LinkGoogle(ctx context.Context, id uint, sub string) error {
	err := r.db.WithContext(ctx).
		Model(&users.User{}).
		Where("id = ?", id).
		Update("google_sub", sub).Error
	if err != nil {
		return apperror.Wrap(err, apperror.ErrCodeDatabase, "Failed to link Google account")
	}
	return nil
}

func (r *GormUsers) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&users.User{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
}
