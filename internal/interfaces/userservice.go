package interfaces

import (
	"context"

	"github.com/haguru/raikiri/internal/models"
)

type UserService interface {
	RegisterUser(ctx context.Context, username, password string) error
	ValidateCredentials(ctx context.Context, username, password string) (*models.User, error)
}
