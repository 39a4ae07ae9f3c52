package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/online-training-program/backend/models"
)

// UserRepository handles database operations for users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by id. Returns nil when absent.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.Where("user_id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List lists all users.
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("user_id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Save inserts or updates a user.
func (r *UserRepository) Save(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user by id. Returns false when no row matched.
func (r *UserRepository) Delete(id int) (bool, error) {
	result := r.db.Where("user_id = ?", id).Delete(&models.User{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
