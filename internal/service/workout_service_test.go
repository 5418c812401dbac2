package service_test

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
	"time"

	"treinoapp/workout-service/internal/domain"
	"treinoapp/workout-service/internal/repository"
	"treinoapp/workout-service/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeWorkoutRepo is an in-memory repository.WorkoutRepository. It clones
// documents on the way in and out, matching the store's decode-into-fresh-
// struct behavior.
type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]*domain.Workout
	order    []primitive.ObjectID
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func cloneWorkout(w *domain.Workout) *domain.Workout {
	out := *w
	out.Splits = make([]domain.Split, len(w.Splits))
	for i, s := range w.Splits {
		out.Splits[i] = domain.Split{
			Day:       s.Day,
			Exercises: append([]domain.Exercise(nil), s.Exercises...),
		}
	}
	return &out
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if workout.Name == "" || !workout.Type.IsValid() {
		return primitive.NilObjectID, errors.New("workout requires a name and a valid type")
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()
	r.workouts[workout.ID] = cloneWorkout(workout)
	r.order = append(r.order, workout.ID)
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) CreateMany(ctx context.Context, workouts []domain.Workout) error {
	for i := range workouts {
		if _, err := r.Create(ctx, &workouts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneWorkout(w), nil
}

func (r *fakeWorkoutRepo) List(_ context.Context, limit int64) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, id := range r.order {
		out = append(out, *cloneWorkout(r.workouts[id]))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkoutRepo) ListByType(_ context.Context, workoutType domain.WorkoutType, limit int64) ([]domain.Workout, error) {
	var out []domain.Workout
	for _, id := range r.order {
		if r.workouts[id].Type == workoutType {
			out = append(out, *cloneWorkout(r.workouts[id]))
		}
	}
	if workoutType == domain.WorkoutTypeCustom {
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, id primitive.ObjectID, update repository.WorkoutUpdate) error {
	w, ok := r.workouts[id]
	if !ok {
		return repository.ErrNotFound
	}
	if update.Name != nil {
		w.Name = *update.Name
	}
	if update.Splits != nil {
		w.Splits = *update.Splits
	}
	return nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeWorkoutRepo) CountByType(_ context.Context, workoutType domain.WorkoutType) (int64, error) {
	var n int64
	for _, w := range r.workouts {
		if w.Type == workoutType {
			n++
		}
	}
	return n, nil
}

func testSplits() []domain.Split {
	return []domain.Split{
		{
			Day: "A",
			Exercises: []domain.Exercise{
				{Name: "Squat", Sets: 3, Reps: "10"},
				{Name: "Leg Press", Sets: 4, Reps: "10-12", Weight: "120kg", Notes: "slow negatives"},
			},
		},
	}
}

func TestCreateThenGetRoundtrip(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, "Test", domain.WorkoutTypeCustom, testSplits())
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected a generated ID")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected a creation timestamp")
	}

	got, err := svc.GetWorkout(ctx, created.ID)
	if err != nil {
		t.Fatalf("get workout: %v", err)
	}
	if got.Name != "Test" || got.Type != domain.WorkoutTypeCustom {
		t.Fatalf("unexpected workout: %+v", got)
	}
	if !reflect.DeepEqual(got.Splits, testSplits()) {
		t.Fatalf("splits mismatch: %+v", got.Splits)
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())
	ctx := context.Background()

	if _, err := svc.CreateWorkout(ctx, "", domain.WorkoutTypeCustom, nil); !errors.Is(err, service.ErrValidationFailed) {
		t.Fatalf("empty name: expected ErrValidationFailed, got %v", err)
	}
	if _, err := svc.CreateWorkout(ctx, "Test", domain.WorkoutType("cardio"), nil); !errors.Is(err, service.ErrValidationFailed) {
		t.Fatalf("bad type: expected ErrValidationFailed, got %v", err)
	}
}

func TestUpdateWorkoutNothingToUpdate(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := service.NewWorkoutService(repo)
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, "Test", domain.WorkoutTypeCustom, testSplits())
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}

	if _, err := svc.UpdateWorkout(ctx, created.ID, repository.WorkoutUpdate{}); !errors.Is(err, service.ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}

	got, err := svc.GetWorkout(ctx, created.ID)
	if err != nil {
		t.Fatalf("get workout: %v", err)
	}
	if !reflect.DeepEqual(got, created) {
		t.Fatalf("workout changed by rejected update: %+v vs %+v", got, created)
	}
}

func TestUpdateWorkoutNameOnly(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, "Test", domain.WorkoutTypeCustom, testSplits())
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}

	newName := "Renamed"
	updated, err := svc.UpdateWorkout(ctx, created.ID, repository.WorkoutUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("update workout: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if updated.Type != domain.WorkoutTypeCustom {
		t.Fatalf("type changed by update: %q", updated.Type)
	}
	if !reflect.DeepEqual(updated.Splits, created.Splits) {
		t.Fatalf("splits changed by name-only update: %+v", updated.Splits)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("createdAt changed by update: %v vs %v", updated.CreatedAt, created.CreatedAt)
	}
}

func TestUpdateWorkoutSplitsOnly(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, "Test", domain.WorkoutTypeCustom, testSplits())
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}

	newSplits := []domain.Split{{Day: "B", Exercises: []domain.Exercise{{Name: "Deadlift", Sets: 5, Reps: "5"}}}}
	updated, err := svc.UpdateWorkout(ctx, created.ID, repository.WorkoutUpdate{Splits: &newSplits})
	if err != nil {
		t.Fatalf("update workout: %v", err)
	}
	if updated.Name != "Test" {
		t.Fatalf("name changed by splits-only update: %q", updated.Name)
	}
	if updated.Type != domain.WorkoutTypeCustom {
		t.Fatalf("type changed by update: %q", updated.Type)
	}
	if !reflect.DeepEqual(updated.Splits, newSplits) {
		t.Fatalf("splits not updated: %+v", updated.Splits)
	}
}

func TestUpdateWorkoutNotFound(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())

	name := "X"
	_, err := svc.UpdateWorkout(context.Background(), primitive.NewObjectID(), repository.WorkoutUpdate{Name: &name})
	if !errors.Is(err, service.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestCopyWorkout(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())
	ctx := context.Background()

	source, err := svc.CreateWorkout(ctx, "Source", domain.WorkoutTypePredefined, testSplits())
	if err != nil {
		t.Fatalf("create source: %v", err)
	}

	copied, err := svc.CopyWorkout(ctx, source.ID, "My Copy")
	if err != nil {
		t.Fatalf("copy workout: %v", err)
	}
	if copied.ID == source.ID {
		t.Fatal("copy must get a new ID")
	}
	if copied.Name != "My Copy" {
		t.Fatalf("copy name: %q", copied.Name)
	}
	if copied.Type != domain.WorkoutTypeCustom {
		t.Fatalf("copy must be custom regardless of source, got %q", copied.Type)
	}
	if !reflect.DeepEqual(copied.Splits, source.Splits) {
		t.Fatalf("copy splits differ from source: %+v", copied.Splits)
	}

	// Source must be untouched.
	original, err := svc.GetWorkout(ctx, source.ID)
	if err != nil {
		t.Fatalf("get source after copy: %v", err)
	}
	if !reflect.DeepEqual(original, source) {
		t.Fatalf("source changed by copy: %+v vs %+v", original, source)
	}
}

func TestCopyWorkoutSourceMissing(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())

	_, err := svc.CopyWorkout(context.Background(), primitive.NewObjectID(), "My Copy")
	if !errors.Is(err, service.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := service.NewWorkoutService(newFakeWorkoutRepo())
	ctx := context.Background()

	created, err := svc.CreateWorkout(ctx, "Test", domain.WorkoutTypeCustom, testSplits())
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}

	if err := svc.DeleteWorkout(ctx, created.ID); err != nil {
		t.Fatalf("delete workout: %v", err)
	}
	if _, err := svc.GetWorkout(ctx, created.ID); !errors.Is(err, service.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound after delete, got %v", err)
	}
	if err := svc.DeleteWorkout(ctx, created.ID); !errors.Is(err, service.ErrWorkoutNotFound) {
		t.Fatalf("second delete: expected ErrWorkoutNotFound, got %v", err)
	}
}

func TestSeedPredefinedWorkoutsIdempotent(t *testing.T) {
	repo := newFakeWorkoutRepo()
	ctx := context.Background()

	// Seed twice; the second run must be a no-op.
	for i := 0; i < 2; i++ {
		if err := service.SeedPredefinedWorkouts(ctx, repo); err != nil {
			t.Fatalf("seed run %d: %v", i+1, err)
		}
	}

	count, err := repo.CountByType(ctx, domain.WorkoutTypePredefined)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 predefined workouts, got %d", count)
	}

	workouts, err := repo.ListByType(ctx, domain.WorkoutTypePredefined, 100)
	if err != nil {
		t.Fatalf("list predefined: %v", err)
	}
	splitCounts := map[string]int{}
	for _, w := range workouts {
		splitCounts[w.Name] = len(w.Splits)
		if w.CreatedAt.IsZero() {
			t.Errorf("seeded workout %q has no timestamp", w.Name)
		}
	}
	want := map[string]int{
		"ABC - Clássico":   3,
		"ABCDE - Avançado": 5,
		"Push/Pull/Legs":   3,
		"Upper/Lower":      2,
	}
	if !reflect.DeepEqual(splitCounts, want) {
		t.Fatalf("unexpected catalog: %v", splitCounts)
	}
}

func TestSeedSkipsWhenCatalogExists(t *testing.T) {
	repo := newFakeWorkoutRepo()
	svc := service.NewWorkoutService(repo)
	ctx := context.Background()

	// A single pre-existing predefined workout is enough to skip seeding.
	if _, err := svc.CreateWorkout(ctx, "Handmade", domain.WorkoutTypePredefined, testSplits()); err != nil {
		t.Fatalf("create predefined: %v", err)
	}
	if err := service.SeedPredefinedWorkouts(ctx, repo); err != nil {
		t.Fatalf("seed: %v", err)
	}

	count, err := repo.CountByType(ctx, domain.WorkoutTypePredefined)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("seed should have skipped, got %d predefined workouts", count)
	}
}
