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

type CreateMaintenanceRequest struct {
	GearID          string     `json:"gear_id" validate:"required"`
	Type            string     `json:"type" validate:"required,oneof=repair setup string_change modification cleaning part_replacement other"`
	Date            *time.Time `json:"date" validate:"required"`
	ServiceProvider string     `json:"service_provider"`
	Cost            *float64   `json:"cost" validate:"omitempty,gte=0"`
	Description     string     `json:"description"`
	PartsReplaced   []string   `json:"parts_replaced"`
	Images          []string   `json:"images"`
}

type UpdateMaintenanceRequest struct {
	GearID          *string    `json:"gear_id"`
	Type            *string    `json:"type" validate:"omitempty,oneof=repair setup string_change modification cleaning part_replacement other"`
	Date            *time.Time `json:"date"`
	ServiceProvider *string    `json:"service_provider"`
	Cost            *float64   `json:"cost" validate:"omitempty,gte=0"`
	Description     *string    `json:"description"`
	PartsReplaced   *[]string  `json:"parts_replaced"`
	Images          *[]string  `json:"images"`
}

// findOwnedMaintenance loads a maintenance record only if the gear it points
// at belongs to the given user. A record whose gear is someone else's is
// reported exactly like a missing one.
func findOwnedMaintenance(ctx context.Context, id, userID primitive.ObjectID) (*models.Maintenance, error) {
	var record models.Maintenance
	err := database.DB.Collection(database.MaintenanceCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}

	if _, err := findOwnedGear(ctx, record.GearID, userID); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetMaintenanceByGearID lists a gear item's maintenance history, most
// recent first. The gear must belong to the caller.
func GetMaintenanceByGearID(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	gearID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "gearId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := findOwnedGear(ctx, gearID, user.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Gear not found")
			return
		}
		serverError(w, "list maintenance: gear lookup", err)
		return
	}

	findOptions := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := database.DB.Collection(database.MaintenanceCollection).
		Find(ctx, bson.M{"gear_id": gearID}, findOptions)
	if err != nil {
		serverError(w, "list maintenance", err)
		return
	}
	defer cursor.Close(ctx)

	records := make([]models.Maintenance, 0)
	if err := cursor.All(ctx, &records); err != nil {
		serverError(w, "list maintenance: decode", err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

// CreateMaintenance records a maintenance event against gear the caller owns.
func CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var req CreateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	gearID, err := primitive.ObjectIDFromHex(req.GearID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Gear not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := findOwnedGear(ctx, gearID, user.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Gear not found")
			return
		}
		serverError(w, "create maintenance: gear lookup", err)
		return
	}

	now := time.Now()
	record := models.Maintenance{
		ID:              primitive.NewObjectID(),
		CreatedAt:       now,
		UpdatedAt:       now,
		GearID:          gearID,
		Type:            req.Type,
		Date:            *req.Date,
		ServiceProvider: req.ServiceProvider,
		Cost:            req.Cost,
		Description:     req.Description,
		PartsReplaced:   req.PartsReplaced,
		Images:          req.Images,
	}

	if _, err := database.DB.Collection(database.MaintenanceCollection).InsertOne(ctx, record); err != nil {
		serverError(w, "create maintenance", err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// UpdateMaintenance applies the provided fields to an owned maintenance
// record. Re-pointing it at different gear requires owning that gear too.
func UpdateMaintenance(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	recordID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Maintenance record not found")
		return
	}

	var req UpdateMaintenanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := findOwnedMaintenance(ctx, recordID, user.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Maintenance record not found")
			return
		}
		serverError(w, "update maintenance: lookup", err)
		return
	}

	set := bson.M{"updated_at": time.Now()}
	if req.GearID != nil {
		newGearID, err := primitive.ObjectIDFromHex(*req.GearID)
		if err != nil {
			writeError(w, http.StatusNotFound, "Gear not found")
			return
		}
		if _, err := findOwnedGear(ctx, newGearID, user.ID); err != nil {
			if err == mongo.ErrNoDocuments {
				writeError(w, http.StatusNotFound, "Gear not found")
				return
			}
			serverError(w, "update maintenance: gear lookup", err)
			return
		}
		set["gear_id"] = newGearID
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Date != nil {
		set["date"] = *req.Date
	}
	if req.ServiceProvider != nil {
		set["service_provider"] = *req.ServiceProvider
	}
	if req.Cost != nil {
		set["cost"] = *req.Cost
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.PartsReplaced != nil {
		set["parts_replaced"] = *req.PartsReplaced
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}

	var record models.Maintenance
	err = database.DB.Collection(database.MaintenanceCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": recordID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)
	if err != nil {
		serverError(w, "update maintenance", err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// DeleteMaintenance removes an owned maintenance record.
func DeleteMaintenance(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	recordID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Maintenance record not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := findOwnedMaintenance(ctx, recordID, user.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Maintenance record not found")
			return
		}
		serverError(w, "delete maintenance: lookup", err)
		return
	}

	if _, err := database.DB.Collection(database.MaintenanceCollection).
		DeleteOne(ctx, bson.M{"_id": recordID}); err != nil {
		serverError(w, "delete maintenance", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Maintenance record deleted successfully"})
}
