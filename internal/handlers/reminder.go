package handlers

import (
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

type CreateReminderRequest struct {
	Title             string     `json:"title" validate:"required"`
	Description       string     `json:"description"`
	DueDate           *time.Time `json:"due_date" validate:"required"`
	GearID            *string    `json:"gear_id"`
	IsRecurring       bool       `json:"is_recurring"`
	RecurrencePattern bson.M     `json:"recurrence_pattern"`
}

type UpdateReminderRequest struct {
	Title             *string    `json:"title" validate:"omitempty,min=1"`
	Description       *string    `json:"description"`
	DueDate           *time.Time `json:"due_date"`
	GearID            *string    `json:"gear_id"`
	IsRecurring       *bool      `json:"is_recurring"`
	RecurrencePattern bson.M     `json:"recurrence_pattern"`
}

// resolveReminderGear turns an optional gear_id payload field into an owned
// gear's ObjectID.
func resolveReminderGear(r *http.Request, w http.ResponseWriter, hex string) (*primitive.ObjectID, bool) {
	user := middleware.UserFrom(r.Context())

	gearID, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		writeError(w, http.StatusNotFound, "Gear not found")
		return nil, false
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := findOwnedGear(ctx, gearID, user.ID); err != nil {
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Gear not found")
			return nil, false
		}
		serverError(w, "reminder: gear lookup", err)
		return nil, false
	}
	return &gearID, true
}

// GetAllReminders lists the caller's reminders in due-date order.
func GetAllReminders(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	ctx, cancel := dbContext()
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"due_date": 1})
	cursor, err := database.DB.Collection(database.RemindersCollection).
		Find(ctx, bson.M{"user_id": user.ID}, findOptions)
	if err != nil {
		serverError(w, "list reminders", err)
		return
	}
	defer cursor.Close(ctx)

	reminders := make([]models.Reminder, 0)
	if err := cursor.All(ctx, &reminders); err != nil {
		serverError(w, "list reminders: decode", err)
		return
	}

	writeJSON(w, http.StatusOK, reminders)
}

// CreateReminder persists a reminder, optionally tied to owned gear.
func CreateReminder(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	var req CreateReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var gearID *primitive.ObjectID
	if req.GearID != nil && *req.GearID != "" {
		resolved, ok := resolveReminderGear(r, w, *req.GearID)
		if !ok {
			return
		}
		gearID = resolved
	}

	now := time.Now()
	reminder := models.Reminder{
		ID:                primitive.NewObjectID(),
		CreatedAt:         now,
		UpdatedAt:         now,
		UserID:            user.ID,
		GearID:            gearID,
		Title:             req.Title,
		Description:       req.Description,
		DueDate:           *req.DueDate,
		IsRecurring:       req.IsRecurring,
		RecurrencePattern: req.RecurrencePattern,
	}

	ctx, cancel := dbContext()
	defer cancel()

	if _, err := database.DB.Collection(database.RemindersCollection).InsertOne(ctx, reminder); err != nil {
		serverError(w, "create reminder", err)
		return
	}

	writeJSON(w, http.StatusCreated, reminder)
}

// UpdateReminder applies the provided fields to an owned reminder.
func UpdateReminder(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	reminderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}

	var req UpdateReminderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := bson.M{"updated_at": time.Now()}
	unset := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.DueDate != nil {
		set["due_date"] = *req.DueDate
	}
	if req.GearID != nil {
		if *req.GearID == "" {
			unset["gear_id"] = ""
		} else {
			resolved, ok := resolveReminderGear(r, w, *req.GearID)
			if !ok {
				return
			}
			set["gear_id"] = *resolved
		}
	}
	if req.IsRecurring != nil {
		set["is_recurring"] = *req.IsRecurring
	}
	if req.RecurrencePattern != nil {
		set["recurrence_pattern"] = req.RecurrencePattern
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	ctx, cancel := dbContext()
	defer cancel()

	var reminder models.Reminder
	err = database.DB.Collection(database.RemindersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": reminderID, "user_id": user.ID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reminder)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	if err != nil {
		serverError(w, "update reminder", err)
		return
	}

	writeJSON(w, http.StatusOK, reminder)
}

// DeleteReminder removes an owned reminder.
func DeleteReminder(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	reminderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	result, err := database.DB.Collection(database.RemindersCollection).
		DeleteOne(ctx, bson.M{"_id": reminderID, "user_id": user.ID})
	if err != nil {
		serverError(w, "delete reminder", err)
		return
	}
	if result.DeletedCount == 0 {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Reminder deleted successfully"})
}

// CompleteReminder marks an owned reminder done, stamping the completion time.
func CompleteReminder(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())

	reminderID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	now := time.Now()
	var reminder models.Reminder
	err = database.DB.Collection(database.RemindersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": reminderID, "user_id": user.ID},
		bson.M{"$set": bson.M{
			"is_completed": true,
			"completed_at": now,
			"updated_at":   now,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&reminder)
	if err == mongo.ErrNoDocuments {
		writeError(w, http.StatusNotFound, "Reminder not found")
		return
	}
	if err != nil {
		serverError(w, "complete reminder", err)
		return
	}

	writeJSON(w, http.StatusOK, reminder)
}
