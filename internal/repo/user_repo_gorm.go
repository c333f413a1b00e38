package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-user-service/internal/domain"
)

// UserRepo is the gorm-backed credential store. All mutations are single
// conditional statements matching on user_id + is_active, so a concurrent
// delete can never race an update into touching a row it no longer matches.
type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Update applies only the supplied columns to a row that is still active.
// Returns false when no such row exists, which covers both unknown and
// already-deactivated ids.
func (r *UserRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("user_id = ? AND is_active = ?", id, true).
		Updates(fields)
	if tx.Error != nil {
		if isDupKey(tx.Error) {
			return false, domain.ErrEmailTaken
		}
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// SoftDelete flips is_active off with the same conditional discipline as
// Update. A second delete of the same id reports false, not success.
func (r *UserRepo) SoftDelete(ctx context.Context, id uuid.UUID) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("user_id = ? AND is_active = ?", id, true).
		Updates(map[string]any{"is_active": false})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// isDupKey avoids depending on gorm.ErrDuplicatedKey translation, which
// varies across drivers and versions.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
