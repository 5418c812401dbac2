package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType distinguishes seeded catalog plans from user-created ones.
type WorkoutType string

const (
	WorkoutTypePredefined WorkoutType = "predefined"
	WorkoutTypeCustom     WorkoutType = "custom"
)

// IsValid reports whether t is one of the known workout types.
func (t WorkoutType) IsValid() bool {
	return t == WorkoutTypePredefined || t == WorkoutTypeCustom
}

// Exercise is a single entry inside a split. Reps is free-form ("8-12",
// "15-20") rather than numeric; weight and notes are optional.
type Exercise struct {
	Name   string `bson:"name" json:"name"`
	Sets   int    `bson:"sets" json:"sets"`
	Reps   string `bson:"reps" json:"reps"`
	Weight string `bson:"weight,omitempty" json:"weight,omitempty"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Split groups the exercises for one training day, e.g. "A - Peito e Tríceps".
type Split struct {
	Day       string     `bson:"day" json:"day"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
}

// Workout is a full training plan. Splits are embedded in the document, so
// deleting a workout removes them with it. Type and CreatedAt never change
// after creation.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      WorkoutType        `bson:"type" json:"type"`
	Splits    []Split            `bson:"splits" json:"splits"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
