package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/socialevents/social-events-backend/internal/dto"
	"github.com/socialevents/social-events-backend/internal/identity"
	"github.com/socialevents/social-events-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// profileColumns maps the JSON field names a client may update on its own
// profile to their columns. Everything else — email, role, isBlocked,
// createdAt included — is silently dropped, never rejected.
var profileColumns = map[string]string{
	"displayName": "display_name",
	"photoURL":    "photo_url",
	"firebaseUID": "firebase_uid",
}

// UpsertFromPrincipal refreshes the caller's user record on every login.
// Display fields and lastLogin always come from the verified principal;
// role, isBlocked and createdAt are set once on first insert and never
// touched again by this path.
func (s *UserService) UpsertFromPrincipal(p *identity.Principal) (*models.User, error) {
	now := time.Now()
	user := models.User{
		Email:       p.Email,
		DisplayName: p.Name,
		PhotoURL:    p.Picture,
		FirebaseUID: p.UID,
		Role:        models.RoleUser,
		IsBlocked:   false,
		CreatedAt:   now,
		LastLogin:   now,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"display_name": p.Name,
			"photo_url":    p.Picture,
			"firebase_uid": p.UID,
			"last_login":   now,
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}

	// Reload: on the update path the in-memory struct does not reflect the
	// stored role/isBlocked/createdAt.
	return s.GetByEmail(p.Email)
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetPublicByEmail returns the restricted public projection.
func (s *UserService) GetPublicByEmail(email string) (*dto.PublicUser, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return &dto.PublicUser{
		Email:       user.Email,
		DisplayName: user.DisplayName,
		PhotoURL:    user.PhotoURL,
	}, nil
}

// UpdateProfile applies the caller's profile changes after stripping
// protected fields.
func (s *UserService) UpdateProfile(email string, fields map[string]interface{}) (*models.User, error) {
	updates := StripProtectedFields(fields)
	if len(updates) > 0 {
		result := s.db.Model(&models.User{}).Where("email = ?", email).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrUserNotFound
		}
	}
	return s.GetByEmail(email)
}

// StripProtectedFields keeps only the mutable profile fields, renamed to
// their database columns.
func StripProtectedFields(fields map[string]interface{}) map[string]interface{} {
	updates := map[string]interface{}{}
	for key, value := range fields {
		if column, ok := profileColumns[key]; ok {
			updates[column] = value
		}
	}
	return updates
}

// IsAdmin is the single authorization predicate used by the admin middleware.
func (s *UserService) IsAdmin(email string) (bool, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

func (s *UserService) ChangeRole(email, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be one of user, organizer, admin", ErrValidation)
	}
	result := s.db.Model(&models.User{}).Where("email = ?", email).Update("role", role)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return s.GetByEmail(email)
}

// ToggleBlock flips the block flag and returns the updated record.
func (s *UserService) ToggleBlock(email string) (*models.User, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(user).Update("is_blocked", !user.IsBlocked).Error; err != nil {
		return nil, err
	}
	return s.GetByEmail(email)
}

func (s *UserService) Delete(email string) error {
	result := s.db.Where("email = ?", email).Delete(&models.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) ListAll() ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.db.Order("created_at ASC").Find(&users).Error
	return users, err
}
