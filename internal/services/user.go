package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mreyes/gearvault-backend/internal/database"
	"github.com/mreyes/gearvault-backend/internal/models"
)

// ResetTokenValidity is how long a password reset token stays redeemable.
const ResetTokenValidity = time.Hour

var ErrUserNotFound = errors.New("user not found")

// NormalizeEmail lowercases and trims an email so lookups and the unique
// index agree on a single form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindUserByEmail returns the user with the given email, or ErrUserNotFound.
func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := database.DB.Collection(database.UsersCollection).
		FindOne(ctx, bson.M{"email": NormalizeEmail(email)}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID resolves a hex user id to a live user record.
func GetUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	var user models.User
	err = database.DB.Collection(database.UsersCollection).
		FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user and fills in id and timestamps.
func CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.Email = NormalizeEmail(user.Email)

	_, err := database.DB.Collection(database.UsersCollection).InsertOne(ctx, user)
	return err
}

// SetResetToken stores a reset token on the user with a fresh expiry window.
func SetResetToken(ctx context.Context, userID primitive.ObjectID, token string) error {
	expires := time.Now().Add(ResetTokenValidity)
	_, err := database.DB.Collection(database.UsersCollection).UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"reset_password_token":   token,
			"reset_password_expires": expires,
			"updated_at":             time.Now(),
		}})
	return err
}

// RedeemResetToken swaps in a new password hash for the user holding an
// unexpired reset token, clearing the token in the same write. The single
// FindOneAndUpdate makes the token single-use even under concurrent redeems.
func RedeemResetToken(ctx context.Context, token, newHash string) error {
	filter := bson.M{
		"reset_password_token":   token,
		"reset_password_expires": bson.M{"$gt": time.Now()},
	}
	update := bson.M{
		"$set": bson.M{
			"password":   newHash,
			"updated_at": time.Now(),
		},
		"$unset": bson.M{
			"reset_password_token":   "",
			"reset_password_expires": "",
		},
	}

	err := database.DB.Collection(database.UsersCollection).
		FindOneAndUpdate(ctx, filter, update).Err()
	if err == mongo.ErrNoDocuments {
		return ErrUserNotFound
	}
	return err
}
