package services

import (
	"errors"
	"strings"

	"campus-eats-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService owns registration, credential checks and role gating.
// Every operation takes the acting identity explicitly; nothing in this
// package reads ambient request state.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         models.UserRole
	Phone        string
	BusinessName string
}

// Register creates a new user. The plaintext password is hashed before it
// touches the store; a duplicate email surfaces as ErrDuplicateEmail.
func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	if !models.ValidRole(in.Role) {
		return nil, ErrForbidden
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Phone:        strings.TrimSpace(in.Phone),
		IsActive:     true,
		BusinessName: strings.TrimSpace(in.BusinessName),
	}

	// The unique index on email is the source of truth; racing registrations
	// lose here rather than in a read-then-write check.
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. A disabled account fails distinctly
// even when the password is correct.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	return &user, nil
}

// UserByID loads a user row, ErrNotFound when absent.
func (s *AuthService) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// RequireRole is the gate in front of every role-scoped operation.
// A nil actor means the request carried no identity.
func RequireRole(actor *models.User, role models.UserRole) (*models.User, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if actor.Role != role {
		return nil, ErrForbidden
	}
	return actor, nil
}
