package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/online-training-program/backend/apperr"
	"github.com/online-training-program/backend/models"
)

// GetAllUsers handles GET /api/admin/users
func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	found, err := h.users.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, apperr.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}

// GetAllTrainings handles GET /api/admin/trainings
func (h *Handler) GetAllTrainings(c *gin.Context) {
	trainings, err := h.trainings.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainings)
}

// AddTraining handles POST /api/admin/trainings
func (h *Handler) AddTraining(c *gin.Context) {
	var training models.TrainingProgram
	if err := c.ShouldBindJSON(&training); err != nil {
		respondError(c, apperr.Validation("Invalid request payload"))
		return
	}

	if err := h.trainings.Save(&training); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Training added successfully"})
}

// DeleteTraining handles DELETE /api/admin/trainings/:programId
func (h *Handler) DeleteTraining(c *gin.Context) {
	programID, err := parseID(c.Param("programId"))
	if err != nil {
		respondError(c, err)
		return
	}

	found, err := h.trainings.Delete(programID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		respondError(c, apperr.NotFound("Training not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Training deleted successfully"})
}

// GetAllAllocations handles GET /api/admin/allocations
func (h *Handler) GetAllAllocations(c *gin.Context) {
	records, err := h.allocations.AllAllocations()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// underAllocatedThreshold is the program count below which a user shows up
// in the under-allocated report.
const underAllocatedThreshold = 3

// GetUnderAllocatedUsers handles GET /api/admin/users/allocations/under-allocated
func (h *Handler) GetUnderAllocatedUsers(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]models.User, 0)
	for _, user := range users {
		count, err := h.allocations.CountForUser(user.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		if count < underAllocatedThreshold {
			user.ProgramCount = count
			result = append(result, user)
		}
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTrainingStatus handles PUT /api/admin/trainings/:id/status
func (h *Handler) UpdateTrainingStatus(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respondError(c, apperr.Validation("Status is required"))
		return
	}

	training, err := h.trainings.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if training == nil {
		respondError(c, apperr.NotFound("Training not found or status not updated"))
		return
	}

	training.Status = req.Status
	if err := h.trainings.Save(training); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Training status updated successfully"})
}

// AllocateProgram handles POST /api/admin/allocate-program
func (h *Handler) AllocateProgram(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ProgramID == "" {
		respondError(c, apperr.Validation("userId and programId required"))
		return
	}

	userID, err := parseID(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	programID, err := parseID(req.ProgramID)
	if err != nil {
		respondError(c, err)
		return
	}

	// The original system never records which admin allocated; allocatedBy
	// stays empty here as well.
	if _, err := h.allocate(userID, programID, nil); err != nil {
		respondError(c, err)
		return
	}

	log.Printf("Allocated program %d to user %d", programID, userID)
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Program allocated to user successfully",
		"programId": programID,
	})
}

// DeleteAllocation handles DELETE /api/admin/allocations/delete
func (h *Handler) DeleteAllocation(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.ProgramID == "" {
		respondError(c, apperr.Validation("userId and programId required"))
		return
	}

	userID, err := parseID(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	programID, err := parseID(req.ProgramID)
	if err != nil {
		respondError(c, err)
		return
	}

	existed, err := h.allocations.CancelByUserAndProgram(userID, programID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !existed {
		respondError(c, apperr.NotFound("Enrollment not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enrollment deleted successfully"})
}
