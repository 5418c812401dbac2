// internal/repository/mongo/workout_repo.go
package mongo

import (
	"context"
	"errors"
	"time"

	"treinoapp/workout-service/internal/domain"
	"treinoapp/workout-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workouts"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(db *mongo.Database) repository.WorkoutRepository {
	return &mongoWorkoutRepository{
		collection: db.Collection(workoutCollectionName),
	}
}

// Create inserts a new workout, assigning its ID and creation timestamp.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.Name == "" || !workout.Type.IsValid() {
		return primitive.NilObjectID, errors.New("workout requires a name and a valid type")
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, err
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// CreateMany bulk-inserts workouts, stamping all of them with the same
// insertion moment. Used by the catalog seeding at startup.
func (r *mongoWorkoutRepository) CreateMany(ctx context.Context, workouts []domain.Workout) error {
	if len(workouts) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, len(workouts))
	for i := range workouts {
		workouts[i].ID = primitive.NewObjectID()
		workouts[i].CreatedAt = now
		docs[i] = workouts[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// GetByID retrieves a single workout by its ID.
func (r *mongoWorkoutRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	var workout domain.Workout
	filter := bson.M{"_id": id}
	err := r.collection.FindOne(ctx, filter).Decode(&workout)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// List retrieves all workouts, newest first, capped at limit.
func (r *mongoWorkoutRepository) List(ctx context.Context, limit int64) ([]domain.Workout, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, findOptions)
}

// ListByType retrieves workouts of one type, capped at limit. Custom
// workouts come newest first; predefined keep their insertion order so the
// catalog reads the way it was seeded.
func (r *mongoWorkoutRepository) ListByType(ctx context.Context, workoutType domain.WorkoutType, limit int64) ([]domain.Workout, error) {
	findOptions := options.Find().SetLimit(limit)
	if workoutType == domain.WorkoutTypeCustom {
		findOptions.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}
	return r.find(ctx, bson.M{"type": workoutType}, findOptions)
}

func (r *mongoWorkoutRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.Workout, error) {
	var workouts []domain.Workout
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

// Update applies only the fields present in update via a single $set. Type
// and createdAt are never part of the set document.
func (r *mongoWorkoutRepository) Update(ctx context.Context, id primitive.ObjectID, update repository.WorkoutUpdate) error {
	if id == primitive.NilObjectID {
		return errors.New("workout ID is required for update")
	}
	if update.IsEmpty() {
		return errors.New("update contains no fields")
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Splits != nil {
		set["splits"] = *update.Splits
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the matching workout document.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if id == primitive.NilObjectID {
		return errors.New("workout ID is required for deletion")
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountByType counts documents of the given workout type.
func (r *mongoWorkoutRepository) CountByType(ctx context.Context, workoutType domain.WorkoutType) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"type": workoutType})
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			// Typed listings filter on type and sort custom ones by recency.
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
		{
			// The unfiltered listing sorts by recency alone.
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
