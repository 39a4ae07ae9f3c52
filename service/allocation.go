package service

import (
	"time"

	"github.com/online-training-program/backend/models"
	"github.com/online-training-program/backend/repository"
)

// AllocationService exposes allocation operations in domain terms,
// decoupling the record shape callers see from the storage entities.
// Business validation lives with the callers, not here.
type AllocationService struct {
	allocations *repository.AllocationRepository
}

// NewAllocationService creates a new allocation service instance.
func NewAllocationService(allocations *repository.AllocationRepository) *AllocationService {
	return &AllocationService{allocations: allocations}
}

// Allocate creates a new allocation dated today. allocatedBy is nil for
// self-service enrollment.
func (s *AllocationService) Allocate(userID, programID int, allocatedBy *int) (*models.ProgramAllocation, error) {
	return s.allocations.Create(userID, programID, time.Now(), allocatedBy)
}

// AllocationsForUser lists a user's allocations with programs attached.
func (s *AllocationService) AllocationsForUser(userID int) ([]models.ProgramAllocation, error) {
	return s.allocations.ListByUser(userID)
}

// AllAllocations lists every allocation as a flat record.
func (s *AllocationService) AllAllocations() ([]models.AllocationRecord, error) {
	allocations, err := s.allocations.ListAll()
	if err != nil {
		return nil, err
	}

	records := make([]models.AllocationRecord, 0, len(allocations))
	for i := range allocations {
		records = append(records, models.ToRecord(&allocations[i]))
	}
	return records, nil
}

// CountForUser counts a user's current allocations.
func (s *AllocationService) CountForUser(userID int) (int, error) {
	return s.allocations.CountByUser(userID)
}

// CancelByUserAndProgram resolves the allocation for the (user, program)
// pair and deletes it by allocation id. Returns false when no allocation
// exists, which callers report as not found rather than an error.
func (s *AllocationService) CancelByUserAndProgram(userID, programID int) (bool, error) {
	allocation, err := s.allocations.GetByUserAndProgram(userID, programID)
	if err != nil {
		return false, err
	}
	if allocation == nil {
		return false, nil
	}
	return s.allocations.Delete(allocation.AllocationID)
}
