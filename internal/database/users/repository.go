// Package users provides database operations for user management.
//
// # Usage
//
//	repo := users.NewRepository(db)
//	user, err := repo.GetUserByUsername(username)
package users

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawandazzler/french-vocab-anki/internal/database/vocabulary"
	"github.com/pawandazzler/french-vocab-anki/internal/entities"
)

// Repository handles all user database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new users repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreateUser returns the user for a username, creating it on first
// login. User creation and the per-word state fan-out commit in a single
// transaction: either the user comes back fully initialized or the login
// fails with no partial rows left behind.
func (r *Repository) GetOrCreateUser(username string) (*entities.User, error) {
	var user entities.User

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entities.User{Username: username}).Error; err != nil {
			return err
		}
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			return err
		}
		return vocabulary.InitializeStatesFor(tx, user.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user %s: %w", username, err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (r *Repository) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID.
func (r *Repository) GetUserByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserID returns the identifier for a username, or 0 when no such user
// exists. Used by the identity middleware, where a missing user is not an
// error.
func (r *Repository) GetUserID(username string) (uint, error) {
	var user entities.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
