package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/online-training-program/backend/config"
	"github.com/online-training-program/backend/models"
)

// newTestDB opens a per-test in-memory database with foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "Failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.Migrate(db), "Failed to migrate test schema")
	return db
}

func seedUserAndProgram(t *testing.T, db *gorm.DB) (*models.User, *models.TrainingProgram) {
	t.Helper()

	user := &models.User{Name: "Alice", Email: "alice@training.local", Role: "user"}
	require.NoError(t, db.Create(user).Error)

	program := &models.TrainingProgram{ProgramName: "Go Fundamentals", Status: "active"}
	require.NoError(t, db.Create(program).Error)

	return user, program
}

func TestAllocationLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAllocationRepository(db)
	user, program := seedUserAndProgram(t, db)

	created, err := repo.Create(user.UserID, program.ProgramID, time.Now(), nil)
	require.NoError(t, err)
	require.NotZero(t, created.AllocationID, "Allocation id should be assigned on creation")

	byID, err := repo.GetByID(created.AllocationID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.UserID, byID.UserID)
	assert.Equal(t, program.ProgramID, byID.ProgramID)

	byPair, err := repo.GetByUserAndProgram(user.UserID, program.ProgramID)
	require.NoError(t, err)
	require.NotNil(t, byPair)
	assert.Equal(t, created.AllocationID, byPair.AllocationID)

	listed, err := repo.ListByUser(user.UserID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, program.ProgramName, listed[0].Program.ProgramName, "ListByUser should preload the program")

	found, err := repo.Delete(created.AllocationID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(created.AllocationID)
	require.NoError(t, err)
	assert.False(t, found, "Deleting an already removed allocation should report not found")

	byPair, err = repo.GetByUserAndProgram(user.UserID, program.ProgramID)
	require.NoError(t, err)
	assert.Nil(t, byPair)
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	repo := NewAllocationRepository(db)

	_, err := repo.Create(999, 999, time.Now(), nil)
	assert.Error(t, err, "Allocation referencing missing user and program rows should fail")
}

func TestCreateRejectsDuplicatePair(t *testing.T) {
	db := newTestDB(t)
	repo := NewAllocationRepository(db)
	user, program := seedUserAndProgram(t, db)

	_, err := repo.Create(user.UserID, program.ProgramID, time.Now(), nil)
	require.NoError(t, err)

	_, err = repo.Create(user.UserID, program.ProgramID, time.Now(), nil)
	assert.Error(t, err, "Second allocation for the same (user, program) pair should violate the unique index")

	count, err := repo.CountByUser(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListAllAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewAllocationRepository(db)
	user, program := seedUserAndProgram(t, db)

	second := &models.TrainingProgram{ProgramName: "SQL for Analysts", Status: "active"}
	require.NoError(t, db.Create(second).Error)

	admin := &models.User{Name: "Admin", Email: "admin@training.local", Role: "admin"}
	require.NoError(t, db.Create(admin).Error)

	_, err := repo.Create(user.UserID, program.ProgramID, time.Now(), &admin.UserID)
	require.NoError(t, err)
	_, err = repo.Create(user.UserID, second.ProgramID, time.Now(), nil)
	require.NoError(t, err)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := repo.CountByUser(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByUser(admin.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
