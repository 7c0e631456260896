// userservice.go
package userservice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/haguru/raikiri/internal/interfaces"
	"github.com/haguru/raikiri/internal/models"
	"github.com/haguru/raikiri/internal/userrepo/constants"
	"github.com/haguru/raikiri/pkg/databases/postgres"
	"github.com/haguru/raikiri/pkg/helper"

	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once and compared against when the username is
// unknown, so both failure paths cost one bcrypt comparison.
const dummyPassword = "raikiri-timing-equaliser"

type UserService struct {
	UserRepo interfaces.UserRepository
	Logger   interfaces.Logger
	Cost     int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserService creates a new UserService instance.
func NewUserService(repo interfaces.UserRepository, logger interfaces.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		Logger:   logger,
		Cost:     bcrypt.DefaultCost,
	}
}

func (s *UserService) cost() int {
	if s.Cost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return s.Cost
}

// RegisterUser hashes the password and adds the user via the repository.
// It never signs the user in.
func (s *UserService) RegisterUser(ctx context.Context, username, password string) error {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)
	defer s.Logger.Debug("Exiting function", "func", funcName, "user", username)

	s.Logger.Info("Registering user", "func", funcName, "user", username)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.cost())
	if err != nil {
		s.Logger.Error(ErrFailedToHashPassword, "func", funcName, "user", username, "error", err)
		return fmt.Errorf("%w: %s: %w", ErrRegistrationFailed, ErrFailedToHashPassword, err)
	}

	err = s.UserRepo.AddUser(ctx, *models.NewUser(username, string(hashedPassword)))
	if err != nil {
		s.Logger.Error(ErrFailedToRegisterUser, "func", funcName, "user", username, "kind", postgres.Kind(err), "error", err)
		if errors.Is(err, constants.ErrDuplicateUsername) {
			return fmt.Errorf("%w: %w", ErrUsernameTaken, err)
		}
		return fmt.Errorf("%w: %s: %w", ErrRegistrationFailed, ErrFailedToRegisterUser, err)
	}

	s.Logger.Info("User registered successfully", "func", funcName, "user", username)
	return nil
}

// ValidateCredentials returns the stored user when username and password
// match. Unknown users and wrong passwords both yield ErrInvalidCredentials;
// an unreachable store yields ErrUnavailable. Every failure is logged.
func (s *UserService) ValidateCredentials(ctx context.Context, username, password string) (*models.User, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName, "user", username)
	defer s.Logger.Debug("Exiting function", "func", funcName, "user", username)

	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	switch {
	case err == nil && user != nil:
	case err == nil, errors.Is(err, postgres.ErrNotFound):
		s.Logger.Warn(ErrUserNotFound, "func", funcName, "user", username)
		s.burnComparison(password)
		return nil, ErrInvalidCredentials
	default:
		s.Logger.Error(ErrRetrievingUser, "func", funcName, "user", username, "kind", postgres.Kind(err), "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, ErrRetrievingUser, err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	if err != nil {
		s.Logger.Warn(ErrInvalidPassword, "func", funcName, "user", username)
		return nil, ErrInvalidCredentials
	}

	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	return user, nil
}

// burnComparison spends the same bcrypt work as a real comparison.
func (s *UserService) burnComparison(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte(dummyPassword), s.cost())
	})
	_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
}
