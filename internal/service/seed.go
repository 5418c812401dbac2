package service

import (
	"context"

	"treinoapp/workout-service/internal/domain"
	"treinoapp/workout-service/internal/repository"
)

// SeedPredefinedWorkouts inserts the default plan catalog on first boot.
// If any predefined workout already exists the call is a no-op, so
// re-invocation (restarts, redeploys) never duplicates the catalog.
func SeedPredefinedWorkouts(ctx context.Context, workoutRepo repository.WorkoutRepository) error {
	count, err := workoutRepo.CountByType(ctx, domain.WorkoutTypePredefined)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return workoutRepo.CreateMany(ctx, PredefinedCatalog())
}

// PredefinedCatalog returns the four stock training plans. IDs and
// timestamps are left zero; the repository assigns them on insert.
func PredefinedCatalog() []domain.Workout {
	return []domain.Workout{
		{
			Name: "ABC - Clássico",
			Type: domain.WorkoutTypePredefined,
			Splits: []domain.Split{
				{
					Day: "A - Peito e Tríceps",
					Exercises: []domain.Exercise{
						{Name: "Supino Reto", Sets: 4, Reps: "8-12"},
						{Name: "Supino Inclinado", Sets: 3, Reps: "10-12"},
						{Name: "Crucifixo", Sets: 3, Reps: "12-15"},
						{Name: "Tríceps Testa", Sets: 3, Reps: "10-12"},
						{Name: "Tríceps Corda", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "B - Costas e Bíceps",
					Exercises: []domain.Exercise{
						{Name: "Barra Fixa", Sets: 4, Reps: "8-10"},
						{Name: "Remada Curvada", Sets: 4, Reps: "8-12"},
						{Name: "Puxada Frontal", Sets: 3, Reps: "10-12"},
						{Name: "Rosca Direta", Sets: 3, Reps: "10-12"},
						{Name: "Rosca Martelo", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "C - Pernas e Ombros",
					Exercises: []domain.Exercise{
						{Name: "Agachamento Livre", Sets: 4, Reps: "8-12"},
						{Name: "Leg Press", Sets: 4, Reps: "10-12"},
						{Name: "Cadeira Extensora", Sets: 3, Reps: "12-15"},
						{Name: "Desenvolvimento", Sets: 4, Reps: "8-12"},
						{Name: "Elevação Lateral", Sets: 3, Reps: "12-15"},
					},
				},
			},
		},
		{
			Name: "ABCDE - Avançado",
			Type: domain.WorkoutTypePredefined,
			Splits: []domain.Split{
				{
					Day: "A - Peito",
					Exercises: []domain.Exercise{
						{Name: "Supino Reto", Sets: 4, Reps: "8-10"},
						{Name: "Supino Inclinado", Sets: 4, Reps: "8-10"},
						{Name: "Crucifixo Inclinado", Sets: 3, Reps: "10-12"},
						{Name: "Crossover", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "B - Costas",
					Exercises: []domain.Exercise{
						{Name: "Barra Fixa", Sets: 4, Reps: "8-10"},
						{Name: "Remada Curvada", Sets: 4, Reps: "8-10"},
						{Name: "Puxada Frontal", Sets: 3, Reps: "10-12"},
						{Name: "Remada Baixa", Sets: 3, Reps: "10-12"},
					},
				},
				{
					Day: "C - Pernas",
					Exercises: []domain.Exercise{
						{Name: "Agachamento Livre", Sets: 4, Reps: "8-10"},
						{Name: "Leg Press", Sets: 4, Reps: "10-12"},
						{Name: "Cadeira Extensora", Sets: 3, Reps: "12-15"},
						{Name: "Mesa Flexora", Sets: 3, Reps: "12-15"},
						{Name: "Panturrilha em Pé", Sets: 4, Reps: "15-20"},
					},
				},
				{
					Day: "D - Ombros",
					Exercises: []domain.Exercise{
						{Name: "Desenvolvimento", Sets: 4, Reps: "8-10"},
						{Name: "Elevação Lateral", Sets: 4, Reps: "12-15"},
						{Name: "Elevação Frontal", Sets: 3, Reps: "12-15"},
						{Name: "Crucifixo Inverso", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "E - Braços",
					Exercises: []domain.Exercise{
						{Name: "Rosca Direta", Sets: 4, Reps: "8-12"},
						{Name: "Rosca Alternada", Sets: 3, Reps: "10-12"},
						{Name: "Tríceps Testa", Sets: 4, Reps: "8-12"},
						{Name: "Tríceps Corda", Sets: 3, Reps: "12-15"},
					},
				},
			},
		},
		{
			Name: "Push/Pull/Legs",
			Type: domain.WorkoutTypePredefined,
			Splits: []domain.Split{
				{
					Day: "Push - Empurrar",
					Exercises: []domain.Exercise{
						{Name: "Supino Reto", Sets: 4, Reps: "8-10"},
						{Name: "Desenvolvimento", Sets: 4, Reps: "8-10"},
						{Name: "Supino Inclinado", Sets: 3, Reps: "10-12"},
						{Name: "Elevação Lateral", Sets: 3, Reps: "12-15"},
						{Name: "Tríceps Corda", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "Pull - Puxar",
					Exercises: []domain.Exercise{
						{Name: "Barra Fixa", Sets: 4, Reps: "8-10"},
						{Name: "Remada Curvada", Sets: 4, Reps: "8-10"},
						{Name: "Puxada Frontal", Sets: 3, Reps: "10-12"},
						{Name: "Rosca Direta", Sets: 3, Reps: "10-12"},
						{Name: "Rosca Martelo", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "Legs - Pernas",
					Exercises: []domain.Exercise{
						{Name: "Agachamento Livre", Sets: 4, Reps: "8-10"},
						{Name: "Leg Press", Sets: 4, Reps: "10-12"},
						{Name: "Cadeira Extensora", Sets: 3, Reps: "12-15"},
						{Name: "Mesa Flexora", Sets: 3, Reps: "12-15"},
						{Name: "Panturrilha", Sets: 4, Reps: "15-20"},
					},
				},
			},
		},
		{
			Name: "Upper/Lower",
			Type: domain.WorkoutTypePredefined,
			Splits: []domain.Split{
				{
					Day: "Upper - Parte Superior",
					Exercises: []domain.Exercise{
						{Name: "Supino Reto", Sets: 4, Reps: "8-10"},
						{Name: "Remada Curvada", Sets: 4, Reps: "8-10"},
						{Name: "Desenvolvimento", Sets: 3, Reps: "10-12"},
						{Name: "Puxada Frontal", Sets: 3, Reps: "10-12"},
						{Name: "Rosca Direta", Sets: 3, Reps: "10-12"},
						{Name: "Tríceps Corda", Sets: 3, Reps: "12-15"},
					},
				},
				{
					Day: "Lower - Parte Inferior",
					Exercises: []domain.Exercise{
						{Name: "Agachamento Livre", Sets: 4, Reps: "8-10"},
						{Name: "Leg Press", Sets: 4, Reps: "10-12"},
						{Name: "Stiff", Sets: 3, Reps: "10-12"},
						{Name: "Cadeira Extensora", Sets: 3, Reps: "12-15"},
						{Name: "Mesa Flexora", Sets: 3, Reps: "12-15"},
						{Name: "Panturrilha", Sets: 4, Reps: "15-20"},
					},
				},
			},
		},
	}
}
