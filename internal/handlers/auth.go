package handlers

import (
	"net/http"

	"github.com/mreyes/gearvault-backend/internal/middleware"
	"github.com/mreyes/gearvault-backend/internal/models"
	"github.com/mreyes/gearvault-backend/internal/services"
	"github.com/mreyes/gearvault-backend/internal/validation"
	"github.com/mreyes/gearvault-backend/pkg/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a user with a hashed password and returns a signed token.
func Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
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

	_, err := services.FindUserByEmail(ctx, req.Email)
	if err == nil {
		writeError(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != services.ErrUserNotFound {
		serverError(w, "register: email lookup", err)
		return
	}

	user := models.User{Name: req.Name, Email: req.Email}
	if err := user.SetPassword(req.Password); err != nil {
		serverError(w, "register: hash password", err)
		return
	}
	if err := services.CreateUser(ctx, &user); err != nil {
		serverError(w, "register: create user", err)
		return
	}

	token, err := services.GenerateToken(user.ID.Hex(), jwtSecret)
	if err != nil {
		serverError(w, "register: sign token", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the identical message.
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
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

	user, err := services.FindUserByEmail(ctx, req.Email)
	if err == services.ErrUserNotFound {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		serverError(w, "login: email lookup", err)
		return
	}

	if !user.CheckPassword(req.Password) {
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := services.GenerateToken(user.ID.Hex(), jwtSecret)
	if err != nil {
		serverError(w, "login: sign token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// ForgotPassword stores a time-bounded reset token on the account. A real
// deployment would deliver it by email; here it is returned in the response.
func ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req ForgotPasswordRequest
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

	user, err := services.FindUserByEmail(ctx, req.Email)
	if err == services.ErrUserNotFound {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		serverError(w, "forgot password: email lookup", err)
		return
	}

	resetToken, err := utils.GenerateResetToken()
	if err != nil {
		serverError(w, "forgot password: generate token", err)
		return
	}
	if err := services.SetResetToken(ctx, user.ID, resetToken); err != nil {
		serverError(w, "forgot password: store token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "Password reset email sent",
		"resetToken": resetToken,
	})
}

// ResetPassword redeems a reset token. The token match, hash swap and token
// clear happen in one write, so a token can only ever be used once.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	newHash, err := utils.HashPassword(req.Password)
	if err != nil {
		serverError(w, "reset password: hash password", err)
		return
	}

	ctx, cancel := dbContext()
	defer cancel()

	err = services.RedeemResetToken(ctx, req.Token, newHash)
	if err == services.ErrUserNotFound {
		writeError(w, http.StatusBadRequest, "Invalid or expired token")
		return
	}
	if err != nil {
		serverError(w, "reset password: redeem token", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset successful"})
}

// GetMe returns the authenticated user's profile.
func GetMe(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFrom(r.Context())
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}
