package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mreyes/gearvault-backend/internal/database"
	"github.com/mreyes/gearvault-backend/internal/middleware"
	"github.com/mreyes/gearvault-backend/internal/models"
	"github.com/mreyes/gearvault-backend/internal/validation"
)

type PurchaseInfoPayload struct {
	Date         *time.Time `json:"date"`
	Price        *float64   `json:"price" validate:"omitempty,gte=0"`
	Currency     string     `json:"currency"`
	Location     string     `json:"location"`
	ReceiptImage string     `json:"receipt_image"`
}

type InsuranceDetailsPayload struct {
	Provider       string     `json:"provider"`
	PolicyNumber   string     `json:"policy_number"`
	CoverageAmount *float64   `json:"coverage_amount" validate:"omitempty,gte=0"`
	ExpiryDate     *time.Time `json:"expiry_date"`
}

type CreateGearRequest struct {
	Name             string                   `json:"name" validate:"required"`
	Type             string                   `json:"type" validate:"required,oneof=guitar bass amp pedal keyboard drums microphone accessory other"`
	Brand            string                   `json:"brand"`
	Model            string                   `json:"model"`
	SerialNumber     string                   `json:"serial_number"`
	Year             *int                     `json:"year" validate:"omitempty,gte=1900,notfutureyear"`
	PurchaseInfo     *PurchaseInfoPayload     `json:"purchase_info"`
	Specifications   map[string]interface{}   `json:"specifications"`
	CurrentValue     *float64                 `json:"current_value" validate:"omitempty,gte=0"`
	Condition        string                   `json:"condition" validate:"omitempty,oneof=mint excellent good fair poor"`
	Notes            string                   `json:"notes"`
	IsInsured        bool                     `json:"is_insured"`
	InsuranceDetails *InsuranceDetailsPayload `json:"insurance_details"`
}

type UpdateGearRequest struct {
	Name             *string                  `json:"name" validate:"omitempty,min=1"`
	Type             *string                  `json:"type" validate:"omitempty,oneof=guitar bass amp pedal keyboard drums microphone accessory other"`
	Brand            *string                  `json:"brand"`
	Model            *string                  `json:"model"`
	SerialNumber     *string                  `json:"serial_number"`
	Year             *int                     `json:"year" validate:"omitempty,gte=1900,notfutureyear"`
	PurchaseInfo     *PurchaseInfoPayload     `json:"purchase_info"`
	Specifications   map[string]interface{}   `json:"specifications"`
	CurrentValue     *float64                 `json:"current_value" validate:"omitempty,gte=0"`
	Condition        *string                  `json:"condition" validate:"omitempty,oneof=mint excellent good fair poor"`
	Notes            *string                  `json:"notes"`
	IsInsured        *bool                    `json:"is_insured"`
	InsuranceDetails *InsuranceDetailsPayload `json:"insurance_details"`
	Images           *[]string                `json:"images"`
}

func (p *PurchaseInfoPayload) toModel() *models.PurchaseInfo {
	if p == nil {
		return nil
	}
	return &models.PurchaseInfo{
		Date:         p.Date,
		Price:        p.Price,
		Currency:     p.Currency,
		Location:     p.Location,
		ReceiptImage: p.ReceiptImage,
	}
}

func (p *InsuranceDetailsPayload) toModel() *models.InsuranceDetails {
	if p == nil {
		return nil
	}
	return &models.InsuranceDetails{
		Provider:       p.Provider,
		PolicyNumber:   p.PolicyNumber,
		CoverageAmount: p.CoverageAmount,
		ExpiryDate:     p.ExpiryDate,
	}
}

// gearIDParam parses the :id path segment. Invalid hex is reported to the
// caller exactly like a missing record.
func gearIDParam(r *http.Request, name string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	return oid, err == nil
}

// findOwnedGear loads a gear item only if it belongs to the given user.
func findOwnedGear(ctx context.Context, gearID, userID primitive.ObjectID) (*models.Gear, error) {
	var gear models.Gear
	err := database.DB.Collection(database.GearCollection).
		FindOne(ctx, bson.M{"_id": gearID, "user_id": userID}).Decode(&gear)
	if err != nil {
		return nil, err
	}
	return &gear, nil
}

// GetAllGear lists the authenticated user's gear, newest first.
func GetAllGear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	ctx, cancel := dbContext()
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := database.DB.Collection(database.GearCollection).
		Find(ctx, bson.M{"user_id": user.ID}, findOptions)
	if err != nil {
		serverError(w, "list gear", err)
		return
	}
	defer cursor.Close(ctx)

	gear := make([]models.Gear, 0)
	if err := cursor.All(ctx, &gear); err != nil {
		serverError(w, "list gear: decode", err)
		return
	}

	writeJSON(w, http.StatusOK, gear)
}

// GetGearByID fetches one owned gear item.
func GetGearByID(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	gearID, ok := gearIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	gear, err := findOwnedGear(ctx, gearID, user.ID)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}
	if err != nil {
		serverError(w, "get gear", err)
		return
	}

	writeJSON(w, http.StatusOK, gear)
}

// CreateGear validates and persists a new gear item owned by the caller.
func CreateGear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var req CreateGearRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	gear := models.Gear{
		ID:               primitive.NewObjectID(),
		CreatedAt:        now,
		UpdatedAt:        now,
		UserID:           user.ID,
		Name:             req.Name,
		Type:             req.Type,
		Brand:            req.Brand,
		Model:            req.Model,
		SerialNumber:     req.SerialNumber,
		Year:             req.Year,
		PurchaseInfo:     req.PurchaseInfo.toModel(),
		Specs:            req.Specifications,
		CurrentValue:     req.CurrentValue,
		Condition:        req.Condition,
		Images:           []string{},
		Notes:            req.Notes,
		IsInsured:        req.IsInsured,
		InsuranceDetails: req.InsuranceDetails.toModel(),
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(database.GearCollection).InsertOne(ctx, gear); err != nil {
		serverError(w, "create gear", err)
		return
	}

	writeJSON(w, http.StatusCreated, gear)
}

// UpdateGear applies the provided fields to an owned gear item and returns
// the updated document.
func UpdateGear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	gearID, ok := gearIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	var req UpdateGearRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Brand != nil {
		set["brand"] = *req.Brand
	}
	if req.Model != nil {
		set["model"] = *req.Model
	}
	if req.SerialNumber != nil {
		set["serial_number"] = *req.SerialNumber
	}
	if req.Year != nil {
		set["year"] = *req.Year
	}
	if req.PurchaseInfo != nil {
		set["purchase_info"] = req.PurchaseInfo.toModel()
	}
	if req.Specifications != nil {
		set["specifications"] = req.Specifications
	}
	if req.CurrentValue != nil {
		set["current_value"] = *req.CurrentValue
	}
	if req.Condition != nil {
		set["condition"] = *req.Condition
	}
	if req.Notes != nil {
		set["notes"] = *req.Notes
	}
	if req.IsInsured != nil {
		set["is_insured"] = *req.IsInsured
	}
	if req.InsuranceDetails != nil {
		set["insurance_details"] = req.InsuranceDetails.toModel()
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}

	ctx, cancel := dbContext()
	defer cancel()

	var gear models.Gear
	err := database.DB.Collection(database.GearCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": gearID, "user_id": user.ID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&gear)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}
	if err != nil {
		serverError(w, "update gear", err)
		return
	}

	writeJSON(w, http.StatusOK, gear)
}

// DeleteGear removes an owned gear item, its maintenance history, and the
// gear reference on any reminders pointing at it.
func DeleteGear(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	gearID, ok := gearIDParam(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	result, err := database.DB.Collection(database.GearCollection).
		DeleteOne(ctx, bson.M{"_id": gearID, "user_id": user.ID})
	if err != nil {
		serverError(w, "delete gear", err)
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	// Referential cleanup. Failures here leave the gear gone but its history
	// behind, which read paths tolerate.
	if _, err := database.DB.Collection(database.MaintenanceCollection).
		DeleteMany(ctx, bson.M{"gear_id": gearID}); err != nil {
		serverError(w, "delete gear: cascade maintenance", err)
		return
	}
	if _, err := database.DB.Collection(database.RemindersCollection).
		UpdateMany(ctx, bson.M{"gear_id": gearID}, bson.M{"$unset": bson.M{"gear_id": ""}}); err != nil {
		serverError(w, "delete gear: unlink reminders", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Gear deleted successfully"})
}
