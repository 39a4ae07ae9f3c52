package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/online-training-program/backend/apperr"
	"github.com/online-training-program/backend/models"
)

// GetAvailableTrainings handles GET /api/user/trainings
func (h *Handler) GetAvailableTrainings(c *gin.Context) {
	trainings, err := h.trainings.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "trainings": trainings})
}

// Enroll handles POST /api/user/enroll
func (h *Handler) Enroll(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.TrainingID == "" {
		respondError(c, apperr.Validation("userId and trainingId required"))
		return
	}

	userID, err := parseID(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	trainingID, err := parseID(req.TrainingID)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := h.allocate(userID, trainingID, nil); err != nil {
		if errors.Is(err, ErrAlreadyAllocated) {
			respondError(c, apperr.Conflict("Already enrolled"))
			return
		}
		respondError(c, err)
		return
	}

	log.Printf("User %d enrolled in training %d", userID, trainingID)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "User enrolled successfully",
		"trainingId": trainingID,
	})
}

// GetMyTrainings handles GET /api/user/my-trainings/:userId
func (h *Handler) GetMyTrainings(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, apperr.NotFound("User not found"))
		return
	}

	allocations, err := h.allocations.AllocationsForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	trainings := make([]models.EnrolledTraining, 0, len(allocations))
	for _, a := range allocations {
		trainings = append(trainings, models.EnrolledTraining{
			ProgramID:      a.Program.ProgramID,
			ProgramName:    a.Program.ProgramName,
			AllocationDate: a.AllocationDate.Format(models.DateFormat),
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "trainings": trainings})
}

// CancelEnrollment handles DELETE /api/user/cancel-enrollment
func (h *Handler) CancelEnrollment(c *gin.Context) {
	var req models.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.TrainingID == "" {
		respondError(c, apperr.Validation("userId and trainingId required"))
		return
	}

	userID, err := parseID(req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	trainingID, err := parseID(req.TrainingID)
	if err != nil {
		respondError(c, err)
		return
	}

	existed, err := h.allocations.CancelByUserAndProgram(userID, trainingID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !existed {
		respondError(c, apperr.NotFound("Enrollment not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Enrollment cancelled"})
}

// Logout handles GET /api/user/logout. There is no session state to clear;
// the endpoint exists for the frontend's logout flow.
func (h *Handler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User logged out"})
}
