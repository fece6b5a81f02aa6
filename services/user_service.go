package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Email uniqueness is checked up front
// and backstopped by the unique index, so two concurrent registrations
// with the same address can never both succeed.
func (s *UserService) Register(ctx context.Context, name, email, password string, height float64, goals *models.Goals) (*models.User, error) {
	email = normalizeEmail(email)

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, models.ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:          name,
		Email:         email,
		Password:      hashed,
		Height:        defaultHeightCm,
		Notifications: true,
	}
	if height > 0 {
		user.Height = height
	}
	if goals != nil {
		user.Goals = *goals
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies the credentials and returns the user with a
// fresh token. Wrong email and wrong password are indistinguishable.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileInput is the allow-list of updatable profile fields. Pointers
// distinguish "absent" from a zero value; anything not listed here is
// dropped at JSON binding and never stored.
type ProfileInput struct {
	Name          *string       `json:"name"`
	Email         *string       `json:"email"`
	Avatar        *string       `json:"avatar"`
	Goals         *models.Goals `json:"goals"`
	Height        *float64      `json:"height"`
	Notifications *bool         `json:"notifications"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != user.Email {
			var other models.User
			err := s.db.WithContext(ctx).Where("email = ?", email).First(&other).Error
			if err == nil {
				return nil, models.ErrDuplicateEmail
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if input.Avatar != nil {
		avatar := *input.Avatar
		if strings.HasPrefix(avatar, "data:") {
			url, err := utils.UploadAvatar(avatar, fmt.Sprintf("user-%d", user.ID))
			if err != nil {
				return nil, fmt.Errorf("failed to upload avatar: %w", err)
			}
			avatar = url
		}
		user.Avatar = avatar
	}
	if input.Goals != nil {
		user.Goals = *input.Goals
	}
	if input.Height != nil && *input.Height > 0 {
		user.Height = *input.Height
	}
	if input.Notifications != nil {
		user.Notifications = *input.Notifications
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}
	return user, nil
}
