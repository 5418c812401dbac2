package repository

import (
	"context"

	"treinoapp/workout-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutUpdate carries the fields a partial update may touch. A nil field
// means "leave unchanged". Type and CreatedAt are deliberately absent: they
// are immutable after creation.
type WorkoutUpdate struct {
	Name   *string
	Splits *[]domain.Split
}

// IsEmpty reports whether the update would touch nothing.
func (u WorkoutUpdate) IsEmpty() bool {
	return u.Name == nil && u.Splits == nil
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	CreateMany(ctx context.Context, workouts []domain.Workout) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	List(ctx context.Context, limit int64) ([]domain.Workout, error)
	ListByType(ctx context.Context, workoutType domain.WorkoutType, limit int64) ([]domain.Workout, error)
	Update(ctx context.Context, id primitive.ObjectID, update WorkoutUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByType(ctx context.Context, workoutType domain.WorkoutType) (int64, error)
}
