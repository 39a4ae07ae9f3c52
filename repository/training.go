package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/online-training-program/backend/models"
)

// TrainingRepository handles database operations for training programs.
type TrainingRepository struct {
	db *gorm.DB
}

// NewTrainingRepository creates a new training repository instance.
func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

// GetByID retrieves a training program by id. Returns nil when absent.
func (r *TrainingRepository) GetByID(id int) (*models.TrainingProgram, error) {
	var training models.TrainingProgram
	err := r.db.Where("program_id = ?", id).First(&training).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &training, nil
}

// List lists all training programs.
func (r *TrainingRepository) List() ([]models.TrainingProgram, error) {
	var trainings []models.TrainingProgram
	if err := r.db.Order("program_id").Find(&trainings).Error; err != nil {
		return nil, err
	}
	return trainings, nil
}

// Save inserts or updates a training program.
func (r *TrainingRepository) Save(training *models.TrainingProgram) error {
	return r.db.Save(training).Error
}

// Delete removes a training program by id. Returns false when no row matched.
func (r *TrainingRepository) Delete(id int) (bool, error) {
	result := r.db.Where("program_id = ?", id).Delete(&models.TrainingProgram{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
