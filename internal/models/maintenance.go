package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Maintenance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	GearID primitive.ObjectID `bson:"gear_id" json:"gear_id"`

	Type            string    `bson:"type" json:"type"`
	Date            time.Time `bson:"date" json:"date"`
	ServiceProvider string    `bson:"service_provider,omitempty" json:"service_provider,omitempty"`
	Cost            *float64  `bson:"cost,omitempty" json:"cost,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	PartsReplaced   []string  `bson:"parts_replaced,omitempty" json:"parts_replaced,omitempty"`
	Images          []string  `bson:"images,omitempty" json:"images,omitempty"`
}
