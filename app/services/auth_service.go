package services

import (
	"context"
	"fmt"
	"log"

	"github.com/shopmk/go-backoffice/app/models"
	"github.com/shopmk/go-backoffice/app/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo repositories.UserRepositoryImpl
	cartRepo repositories.CartRepositoryImpl
}

func NewAuthService(userRepo repositories.UserRepositoryImpl, cartRepo repositories.CartRepositoryImpl) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// Login deliberately reports the same failure for an unknown username and a
// wrong password so account existence does not leak.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidArguments)
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register stores a new user with a hashed password and creates their empty
// shopping cart.
func (s *AuthService) Register(ctx context.Context, username, password, repeatPassword, name, surname string, role models.Role) (*models.User, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", ErrInvalidArguments)
	}
	if password != repeatPassword {
		return nil, ErrPasswordsDoNotMatch
	}
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, ErrInvalidArguments)
	}

	taken, err := s.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username %q: %w", username, err)
	}
	if taken {
		return nil, fmt.Errorf("username %q: %w", username, ErrUsernameAlreadyExists)
	}

	user := &models.User{
		Username: username,
		Password: password,
		Name:     name,
		Surname:  surname,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}

	if _, err := s.cartRepo.GetOrCreateByUserID(ctx, user.ID); err != nil {
		log.Printf("Register: failed to create shopping cart for user %s: %v", user.ID, err)
	}

	return user, nil
}
