package interfaces

import (
	"context"

	"github.com/haguru/raikiri/internal/models"
)

// UserRepository defines the contract for storing and retrieving User data.
type UserRepository interface {
	AddUser(ctx context.Context, user models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
