package models

import "time"

// User is a registered platform user. Admins are regular users with the
// "admin" role; there is no credential check on the API (route prefixes
// only), matching the original system.
type User struct {
	UserID int    `json:"userId" gorm:"column:user_id;primaryKey;autoIncrement"`
	Name   string `json:"name" gorm:"column:name"`
	Email  string `json:"email" gorm:"column:email"`
	Role   string `json:"role" gorm:"column:role"`

	// ProgramCount is only populated by the under-allocated report.
	ProgramCount int `json:"programCount" gorm:"-"`
}

// TrainingProgram is a training offering users can enroll in.
type TrainingProgram struct {
	ProgramID   int    `json:"programId" gorm:"column:program_id;primaryKey;autoIncrement"`
	ProgramName string `json:"programName" gorm:"column:program_name"`
	Description string `json:"description" gorm:"column:description"`
	Status      string `json:"status" gorm:"column:status"`
}

// ProgramAllocation links one user to one training program. The user and
// program references are plain integer foreign keys; the composite unique
// index rejects double enrollment at the store level so two concurrent
// enroll requests for the same pair cannot both commit.
type ProgramAllocation struct {
	AllocationID   int       `json:"allocationId" gorm:"column:allocation_id;primaryKey;autoIncrement"`
	UserID         int       `json:"userId" gorm:"column:user_id;not null;uniqueIndex:idx_user_program"`
	ProgramID      int       `json:"programId" gorm:"column:program_id;not null;uniqueIndex:idx_user_program"`
	AllocationDate time.Time `json:"allocationDate" gorm:"column:allocation_date;type:date"`
	AllocatedByID  *int      `json:"allocatedById,omitempty" gorm:"column:allocated_by_id"`

	User    User            `json:"-" gorm:"belongsTo;foreignKey:UserID;references:UserID"`
	Program TrainingProgram `json:"-" gorm:"belongsTo;foreignKey:ProgramID;references:ProgramID"`
}

// AllocationRecord is the flat allocation shape returned to admins.
// AllocatedByID is zero for self-service enrollments.
type AllocationRecord struct {
	AllocationID   int    `json:"allocationId"`
	UserID         int    `json:"userId"`
	ProgramID      int    `json:"programId"`
	AllocationDate string `json:"allocationDate"`
	AllocatedByID  int    `json:"allocatedById"`
}

// DateFormat is the wire format for allocation dates.
const DateFormat = "2006-01-02"

// ToRecord flattens an allocation entity for API responses.
func ToRecord(a *ProgramAllocation) AllocationRecord {
	rec := AllocationRecord{
		AllocationID:   a.AllocationID,
		UserID:         a.UserID,
		ProgramID:      a.ProgramID,
		AllocationDate: a.AllocationDate.Format(DateFormat),
	}
	if a.AllocatedByID != nil {
		rec.AllocatedByID = *a.AllocatedByID
	}
	return rec
}

// EnrolledTraining is one entry of a user's my-trainings listing.
type EnrolledTraining struct {
	ProgramID      int    `json:"programId"`
	ProgramName    string `json:"programName"`
	AllocationDate string `json:"allocationDate"`
}

// AllocationRequest is the body of admin allocate and user enroll calls.
// Identifiers arrive string-encoded from the frontend.
type AllocationRequest struct {
	UserID     string `json:"userId"`
	ProgramID  string `json:"programId"`
	TrainingID string `json:"trainingId"`
}

// StatusUpdateRequest is the body of the training status update call.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
