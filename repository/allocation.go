package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/online-training-program/backend/models"
)

// AllocationRepository handles database operations for program allocations.
type AllocationRepository struct {
	db *gorm.DB
}

// NewAllocationRepository creates a new allocation repository instance.
func NewAllocationRepository(db *gorm.DB) *AllocationRepository {
	return &AllocationRepository{db: db}
}

// Create inserts a new allocation for the given user and program. The
// foreign-key constraints reject ids that do not reference existing rows,
// and the (user_id, program_id) unique index rejects a second allocation
// for the same pair.
func (r *AllocationRepository) Create(userID, programID int, date time.Time, allocatedBy *int) (*models.ProgramAllocation, error) {
	allocation := &models.ProgramAllocation{
		UserID:         userID,
		ProgramID:      programID,
		AllocationDate: date,
		AllocatedByID:  allocatedBy,
	}

	if err := r.db.Create(allocation).Error; err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", err)
	}

	return allocation, nil
}

// GetByID retrieves an allocation by its id. Returns nil when absent.
func (r *AllocationRepository) GetByID(id int) (*models.ProgramAllocation, error) {
	var allocation models.ProgramAllocation
	err := r.db.Where("allocation_id = ?", id).First(&allocation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// GetByUserAndProgram resolves an allocation by its composite identity.
// Returns nil when no allocation exists for the pair.
func (r *AllocationRepository) GetByUserAndProgram(userID, programID int) (*models.ProgramAllocation, error) {
	var allocation models.ProgramAllocation
	err := r.db.Where("user_id = ? AND program_id = ?", userID, programID).First(&allocation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

// ListByUser lists a user's allocations with their programs preloaded,
// in insertion order.
func (r *AllocationRepository) ListByUser(userID int) ([]models.ProgramAllocation, error) {
	var allocations []models.ProgramAllocation
	err := r.db.Preload("Program").
		Where("user_id = ?", userID).
		Order("allocation_id").
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

// ListAll lists every allocation.
func (r *AllocationRepository) ListAll() ([]models.ProgramAllocation, error) {
	var allocations []models.ProgramAllocation
	if err := r.db.Order("allocation_id").Find(&allocations).Error; err != nil {
		return nil, err
	}
	return allocations, nil
}

// Delete removes an allocation by id. Returns false when no row matched.
func (r *AllocationRepository) Delete(id int) (bool, error) {
	result := r.db.Where("allocation_id = ?", id).Delete(&models.ProgramAllocation{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByUser counts a user's current allocations.
func (r *AllocationRepository) CountByUser(userID int) (int, error) {
	var count int64
	err := r.db.Model(&models.ProgramAllocation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
