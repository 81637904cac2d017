package ports

import (
	"context"

	"github.com/skycourier/backoffice/internal/core/domain"
)

// AuthService handles operator registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
