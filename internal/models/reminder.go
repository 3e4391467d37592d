package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Reminder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	UserID primitive.ObjectID  `bson:"user_id" json:"user_id"`
	GearID *primitive.ObjectID `bson:"gear_id,omitempty" json:"gear_id,omitempty"`

	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	DueDate     time.Time `bson:"due_date" json:"due_date"`

	// Recurrence is stored opaquely and never evaluated server-side.
	IsRecurring       bool   `bson:"is_recurring" json:"is_recurring"`
	RecurrencePattern bson.M `bson:"recurrence_pattern,omitempty" json:"recurrence_pattern,omitempty"`

	IsCompleted bool       `bson:"is_completed" json:"is_completed"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
