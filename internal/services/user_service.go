package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "coinbudget/internal/errors"
	"coinbudget/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user. Login names are stored lowercased.
func (s *userService) CreateUser(ctx context.Context, displayName, loginName, password string) (*models.User, error) {
	loginName = strings.ToLower(strings.TrimSpace(loginName))
	if loginName == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "login name and password are required")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if strings.TrimSpace(displayName) == "" {
		displayName = loginName
	}

	user := &models.User{
		DisplayName: strings.TrimSpace(displayName),
		LoginName:   loginName,
		Password:    string(hashedPassword),
	}
	// The unique index on login_name decides between concurrent signups.
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateLogin
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// Authenticate checks credentials. Unknown login names and wrong passwords
// produce the same error.
func (s *userService) Authenticate(ctx context.Context, loginName, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("login_name = ?", strings.ToLower(strings.TrimSpace(loginName))).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
