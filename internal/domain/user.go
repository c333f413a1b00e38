package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is the single persisted entity. Rows are never removed: delete flips
// IsActive to false and the email uniqueness constraint keeps covering
// deactivated rows.
type User struct {
	UserID         uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Name           string    `gorm:"size:50;not null" json:"name"`
	Surname        string    `gorm:"size:100;not null" json:"surname"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	IsActive       bool      `gorm:"not null" json:"is_active"`
	HashedPassword string    `gorm:"size:100;not null" json:"-"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (User) TableName() string { return "users" }

// UserRepository is the credential store port. Lookups return (nil, nil) when
// no row matches. Update and SoftDelete mutate only rows that are still
// active: the id + is_active predicate and the mutation run as one statement,
// and the bool reports whether a row was actually touched.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (bool, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (bool, error)
}
