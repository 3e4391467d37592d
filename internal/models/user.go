package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mreyes/gearvault-backend/pkg/utils"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // Don't return password hash in JSON

	// Password reset: single-use token with a hard expiry. Cleared on redeem.
	ResetPasswordToken   string     `bson:"reset_password_token,omitempty" json:"-"`
	ResetPasswordExpires *time.Time `bson:"reset_password_expires,omitempty" json:"-"`
}

// SetPassword hashes the plaintext and stores the hash. Every write to the
// password field must go through here so the stored value is never plaintext.
func (u *User) SetPassword(plaintext string) error {
	hashed, err := utils.HashPassword(plaintext)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	ok, err := utils.VerifyPassword(plaintext, u.Password)
	return err == nil && ok
}

// Public returns the fields safe to embed in API responses.
func (u *User) Public() map[string]interface{} {
	return map[string]interface{}{
		"id":    u.ID.Hex(),
		"name":  u.Name,
		"email": u.Email,
	}
}
