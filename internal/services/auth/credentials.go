package auth

import (
	"context"
	"errors"
	"fmt"

	"invoice-admin-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const StrategyCredentials = "credentials"

// Credentials is the sign-in form payload.
type Credentials struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

// Identity is the signed-in user handed to the session layer.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

type Provider interface {
	SignIn(ctx context.Context, strategy string, creds Credentials) (*Identity, error)
}

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// CredentialsProvider checks an email/password pair against bcrypt hashes in
// the users table.
type CredentialsProvider struct {
	users    UserFinder
	validate *validator.Validate
}

func NewCredentialsProvider(users UserFinder) *CredentialsProvider {
	return &CredentialsProvider{users: users, validate: validator.New()}
}

func (p *CredentialsProvider) SignIn(ctx context.Context, strategy string, creds Credentials) (*Identity, error) {
	if strategy != StrategyCredentials {
		return nil, &AuthError{Cause: CauseConfiguration, Err: fmt.Errorf("unknown strategy %q", strategy)}
	}
	if err := p.validate.Struct(creds); err != nil {
		return nil, &AuthError{Cause: CauseCredentialsSignin, Err: err}
	}

	user, err := p.users.FindByEmail(ctx, creds.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &AuthError{Cause: CauseCredentialsSignin}
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, &AuthError{Cause: CauseCredentialsSignin}
	}
	return &Identity{UserID: user.ID, Email: user.Email, Name: user.Name}, nil
}

// HashPassword returns the bcrypt hash stored in users.password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
