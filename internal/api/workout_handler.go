package api

import (
	"errors"
	"net/http"
	"time"

	"treinoapp/workout-service/internal/domain"
	"treinoapp/workout-service/internal/repository"
	"treinoapp/workout-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExercisePayload mirrors one exercise line in a request body.
type ExercisePayload struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight"`
	Notes  string `json:"notes"`
}

// SplitPayload mirrors one day-split in a request body.
type SplitPayload struct {
	Day       string            `json:"day"`
	Exercises []ExercisePayload `json:"exercises"`
}

// CreateWorkoutRequest defines the expected JSON for creating a workout.
type CreateWorkoutRequest struct {
	Name   string         `json:"name" binding:"required"`
	Type   string         `json:"type" binding:"required"`
	Splits []SplitPayload `json:"splits" binding:"required"`
}

// UpdateWorkoutRequest carries the optional fields of a partial update.
// Absent fields stay nil and are never written to the store.
type UpdateWorkoutRequest struct {
	Name   *string         `json:"name"`
	Splits *[]SplitPayload `json:"splits"`
}

// WorkoutResponse is the DTO for returning workout details.
type WorkoutResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	Splits    []domain.Split `json:"splits"`
	CreatedAt time.Time      `json:"createdAt"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	splits := w.Splits
	if splits == nil {
		splits = []domain.Split{}
	}
	return WorkoutResponse{
		ID:        w.ID.Hex(),
		Name:      w.Name,
		Type:      string(w.Type),
		Splits:    splits,
		CreatedAt: w.CreatedAt,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to response DTOs.
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

func mapSplitsToDomain(payloads []SplitPayload) []domain.Split {
	splits := make([]domain.Split, len(payloads))
	for i, p := range payloads {
		exercises := make([]domain.Exercise, len(p.Exercises))
		for j, e := range p.Exercises {
			exercises[j] = domain.Exercise{
				Name:   e.Name,
				Sets:   e.Sets,
				Reps:   e.Reps,
				Weight: e.Weight,
				Notes:  e.Notes,
			}
		}
		splits[i] = domain.Split{Day: p.Day, Exercises: exercises}
	}
	return splits
}

// --- Handler Methods ---

// ListWorkouts handles GET /api/workouts.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// ListPredefinedWorkouts handles GET /api/workouts/predefined.
func (h *WorkoutHandler) ListPredefinedWorkouts(c *gin.Context) {
	h.listByType(c, domain.WorkoutTypePredefined)
}

// ListCustomWorkouts handles GET /api/workouts/custom.
func (h *WorkoutHandler) ListCustomWorkouts(c *gin.Context) {
	h.listByType(c, domain.WorkoutTypeCustom)
}

func (h *WorkoutHandler) listByType(c *gin.Context, workoutType domain.WorkoutType) {
	workouts, err := h.workoutService.ListWorkoutsByType(c.Request.Context(), workoutType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// GetWorkout handles GET /api/workouts/:id.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workout.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// CreateWorkout handles POST /api/workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "Validation error: "+err.Error())
		return
	}

	workoutType := domain.WorkoutType(req.Type)
	if !workoutType.IsValid() {
		abortWithError(c, http.StatusUnprocessableEntity, "Workout type must be 'predefined' or 'custom'.")
		return
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), req.Name, workoutType, mapSplitsToDomain(req.Splits))
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// UpdateWorkout handles PUT /api/workouts/:id. Only name and/or splits may
// change; a body providing neither is rejected.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	update := repository.WorkoutUpdate{Name: req.Name}
	if req.Splits != nil {
		splits := mapSplitsToDomain(*req.Splits)
		update.Splits = &splits
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), workoutID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNothingToUpdate):
			abortWithError(c, http.StatusBadRequest, "No fields to update.")
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}

// DeleteWorkout handles DELETE /api/workouts/:id.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), workoutID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

// CopyWorkout handles POST /api/workouts/:id/copy?new_name=...
// The copy is always custom, regardless of the source's type.
func (h *WorkoutHandler) CopyWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format.")
		return
	}

	newName := c.Query("new_name")
	if newName == "" {
		abortWithError(c, http.StatusUnprocessableEntity, "Query parameter 'new_name' is required.")
		return
	}

	workout, err := h.workoutService.CopyWorkout(c.Request.Context(), workoutID, newName)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to copy workout.")
		}
		return
	}
	c.JSON(http.StatusOK, MapWorkoutToResponse(workout))
}
