package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/online-training-program/backend/middleware"
)

// NewRouter builds the gin router with all admin and user dashboard routes.
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.Default()

	// CORS must be first
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	admin := router.Group("/api/admin")
	{
		admin.GET("/users", handler.GetAllUsers)
		admin.DELETE("/users/:id", handler.DeleteUser)
		admin.GET("/users/allocations/under-allocated", handler.GetUnderAllocatedUsers)

		admin.GET("/trainings", handler.GetAllTrainings)
		admin.POST("/trainings", handler.AddTraining)
		admin.DELETE("/trainings/:programId", handler.DeleteTraining)
		admin.PUT("/trainings/:id/status", handler.UpdateTrainingStatus)

		admin.GET("/allocations", handler.GetAllAllocations)
		admin.POST("/allocate-program", handler.AllocateProgram)
		admin.DELETE("/allocations/delete", handler.DeleteAllocation)
	}

	user := router.Group("/api/user")
	{
		user.GET("/trainings", handler.GetAvailableTrainings)
		user.POST("/enroll", handler.Enroll)
		user.GET("/my-trainings/:userId", handler.GetMyTrainings)
		user.DELETE("/cancel-enrollment", handler.CancelEnrollment)
		user.GET("/logout", handler.Logout)
	}

	return router
}
