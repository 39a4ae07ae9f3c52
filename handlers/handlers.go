package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/online-training-program/backend/apperr"
	"github.com/online-training-program/backend/models"
	"github.com/online-training-program/backend/repository"
	"github.com/online-training-program/backend/service"
)

// ErrAlreadyAllocated is returned when the (user, program) pair already has
// an allocation. The user-facing enroll endpoint rewords it.
var ErrAlreadyAllocated = apperr.Conflict("Already allocated")

// Handler handles HTTP requests for the admin and user dashboards.
type Handler struct {
	users       *repository.UserRepository
	trainings   *repository.TrainingRepository
	allocations *service.AllocationService
}

// NewHandler creates a new handler instance.
func NewHandler(users *repository.UserRepository, trainings *repository.TrainingRepository, allocations *service.AllocationService) *Handler {
	return &Handler{
		users:       users,
		trainings:   trainings,
		allocations: allocations,
	}
}

// allocate runs the shared allocate/enroll workflow: the user and training
// must exist and the pair must not already be allocated. allocatedBy is nil
// for self-service enrollment.
func (h *Handler) allocate(userID, programID int, allocatedBy *int) (*models.ProgramAllocation, error) {
	user, err := h.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	training, err := h.trainings.GetByID(programID)
	if err != nil {
		return nil, err
	}
	if training == nil {
		return nil, apperr.NotFound("Training not found")
	}

	existing, err := h.allocations.AllocationsForUser(userID)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if existing[i].ProgramID == programID {
			return nil, ErrAlreadyAllocated
		}
	}

	return h.allocations.Allocate(userID, programID, allocatedBy)
}

// parseID parses a string-encoded integer identifier.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validation("Invalid numeric id")
	}
	return id, nil
}

// respondError maps an error to the uniform {success, message} envelope:
// domain errors become HTTP 400, everything else HTTP 500.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if errors.As(err, &e) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": e.Message})
		return
	}

	log.Printf("Unexpected error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error: " + err.Error()})
}
