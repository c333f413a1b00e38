package handler

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	"go-user-service/internal/domain"
)

// AccountService is what the handlers need from the service layer.
type AccountService interface {
	Register(ctx context.Context, name, surname, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Fetch(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Modify(ctx context.Context, id uuid.UUID, fields map[string]any) (uuid.UUID, error)
	Remove(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

// letterPattern accepts letters of any script plus hyphen, nothing else.
var letterPattern = regexp.MustCompile(`^[\p{L}-]+$`)

func lettersOnly(s string) bool { return letterPattern.MatchString(s) }

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ShowUser struct {
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Surname  string    `json:"surname"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

func showUser(u *domain.User) ShowUser {
	return ShowUser{
		UserID:   u.UserID,
		Name:     u.Name,
		Surname:  u.Surname,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}

// UpdateUserRequest carries optional replacements; absent fields stay
// untouched.
type UpdateUserRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=50"`
	Surname *string `json:"surname" binding:"omitempty,min=2,max=100"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// Fields flattens the request into the column map the store consumes.
func (r *UpdateUserRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Surname != nil {
		fields["surname"] = *r.Surname
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	return fields
}

type UpdateUserResponse struct {
	UpdatedUserID uuid.UUID `json:"updated_user_id"`
}

type DeleteUserResponse struct {
	DeletedUserID uuid.UUID `json:"deleted_user_id"`
}

// LoginForm follows the OAuth2 password-flow convention: form-encoded, the
// username field carries the email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
