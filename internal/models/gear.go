package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PurchaseInfo struct {
	Date         *time.Time `bson:"date,omitempty" json:"date,omitempty"`
	Price        *float64   `bson:"price,omitempty" json:"price,omitempty"`
	Currency     string     `bson:"currency,omitempty" json:"currency,omitempty"`
	Location     string     `bson:"location,omitempty" json:"location,omitempty"`
	ReceiptImage string     `bson:"receipt_image,omitempty" json:"receipt_image,omitempty"`
}

type InsuranceDetails struct {
	Provider       string     `bson:"provider,omitempty" json:"provider,omitempty"`
	PolicyNumber   string     `bson:"policy_number,omitempty" json:"policy_number,omitempty"`
	CoverageAmount *float64   `bson:"coverage_amount,omitempty" json:"coverage_amount,omitempty"`
	ExpiryDate     *time.Time `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
}

type Gear struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`

	Name         string                 `bson:"name" json:"name"`
	Type         string                 `bson:"type" json:"type"`
	Brand        string                 `bson:"brand,omitempty" json:"brand,omitempty"`
	Model        string                 `bson:"model,omitempty" json:"model,omitempty"`
	SerialNumber string                 `bson:"serial_number,omitempty" json:"serial_number,omitempty"`
	Year         *int                   `bson:"year,omitempty" json:"year,omitempty"`
	PurchaseInfo *PurchaseInfo          `bson:"purchase_info,omitempty" json:"purchase_info,omitempty"`
	Specs        map[string]interface{} `bson:"specifications,omitempty" json:"specifications,omitempty"`
	CurrentValue *float64               `bson:"current_value,omitempty" json:"current_value,omitempty"`
	Condition    string                 `bson:"condition,omitempty" json:"condition,omitempty"`
	Images       []string               `bson:"images" json:"images"`
	Notes        string                 `bson:"notes,omitempty" json:"notes,omitempty"`

	IsInsured        bool              `bson:"is_insured" json:"is_insured"`
	InsuranceDetails *InsuranceDetails `bson:"insurance_details,omitempty" json:"insurance_details,omitempty"`
}
