package services

import (
	"errors"
	"fmt"

	"microblog/app/auth"
	"microblog/app/models"
	"microblog/app/repositories"
)

// ErrInvalidCredentials is returned by Login for both an unknown email
// and a wrong password, so callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles business logic for user accounts
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register hashes the password and creates a new user. A duplicate
// email surfaces as repositories.ErrDuplicateEmail.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:           name,
		Email:          email,
		HashedPassword: hash,
	}
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the email/password pair and returns the matching user.
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*models.User, error) {
	return s.userRepo.GetByEmail(email)
}

// ListUsers retrieves all users
func (s *UserService) ListUsers() ([]*models.User, error) {
	return s.userRepo.List()
}

// DeleteUser deletes a user by ID. The user's posts and comments are
// not cascaded.
func (s *UserService) DeleteUser(id int) error {
	return s.userRepo.Delete(id)
}
