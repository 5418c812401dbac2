package service

import (
	"context"
	"errors"

	"treinoapp/workout-service/internal/domain"
	"treinoapp/workout-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrValidationFailed = errors.New("workout validation failed")
	ErrNothingToUpdate  = errors.New("no fields to update")
)

// Listings are capped; a plan catalog plus personal plans never reasonably
// exceeds this.
const listLimit = 100

// WorkoutService exposes the workout plan operations to the API layer.
type WorkoutService interface {
	ListWorkouts(ctx context.Context) ([]domain.Workout, error)
	ListWorkoutsByType(ctx context.Context, workoutType domain.WorkoutType) ([]domain.Workout, error)
	GetWorkout(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	CreateWorkout(ctx context.Context, name string, workoutType domain.WorkoutType, splits []domain.Split) (*domain.Workout, error)
	UpdateWorkout(ctx context.Context, id primitive.ObjectID, update repository.WorkoutUpdate) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, id primitive.ObjectID) error
	CopyWorkout(ctx context.Context, sourceID primitive.ObjectID, newName string) (*domain.Workout, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
	}
}

// ListWorkouts returns every workout, newest first.
func (s *workoutService) ListWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx, listLimit)
}

// ListWorkoutsByType returns workouts of a single type.
func (s *workoutService) ListWorkoutsByType(ctx context.Context, workoutType domain.WorkoutType) ([]domain.Workout, error) {
	if !workoutType.IsValid() {
		return nil, ErrValidationFailed
	}
	return s.workoutRepo.ListByType(ctx, workoutType, listLimit)
}

// GetWorkout retrieves a single workout.
func (s *workoutService) GetWorkout(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return workout, nil
}

// CreateWorkout validates and stores a new workout. The repository assigns
// the ID and creation timestamp.
func (s *workoutService) CreateWorkout(ctx context.Context, name string, workoutType domain.WorkoutType, splits []domain.Split) (*domain.Workout, error) {
	if name == "" || !workoutType.IsValid() {
		return nil, ErrValidationFailed
	}

	workout := &domain.Workout{
		Name:   name,
		Type:   workoutType,
		Splits: splits,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	// Fetch again so the caller sees exactly what was stored.
	return s.workoutRepo.GetByID(ctx, workoutID)
}

// UpdateWorkout applies a partial update: only the fields present in update
// are overwritten, and type/createdAt are untouchable by construction.
func (s *workoutService) UpdateWorkout(ctx context.Context, id primitive.ObjectID, update repository.WorkoutUpdate) (*domain.Workout, error) {
	if update.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	err := s.workoutRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, id)
}

// DeleteWorkout removes a workout. Splits and exercises are embedded, so
// nothing else needs cleaning up.
func (s *workoutService) DeleteWorkout(ctx context.Context, id primitive.ObjectID) error {
	err := s.workoutRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}

// CopyWorkout duplicates a source workout (typically a predefined plan) into
// a new custom one: caller-supplied name, splits copied by value, fresh ID
// and timestamp. The source is left untouched.
func (s *workoutService) CopyWorkout(ctx context.Context, sourceID primitive.ObjectID, newName string) (*domain.Workout, error) {
	if newName == "" {
		return nil, ErrValidationFailed
	}

	source, err := s.workoutRepo.GetByID(ctx, sourceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	copied := &domain.Workout{
		Name:   newName,
		Type:   domain.WorkoutTypeCustom,
		Splits: copySplits(source.Splits),
	}

	copiedID, err := s.workoutRepo.Create(ctx, copied)
	if err != nil {
		return nil, err
	}
	return s.workoutRepo.GetByID(ctx, copiedID)
}

// copySplits deep-copies splits so the new workout shares no slices with
// its source.
func copySplits(splits []domain.Split) []domain.Split {
	out := make([]domain.Split, len(splits))
	for i, split := range splits {
		out[i] = domain.Split{
			Day:       split.Day,
			Exercises: make([]domain.Exercise, len(split.Exercises)),
		}
		copy(out[i].Exercises, split.Exercises)
	}
	return out
}
