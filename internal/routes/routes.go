package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mreyes/gearvault-backend/internal/config"
	"github.com/mreyes/gearvault-backend/internal/handlers"
	"github.com/mreyes/gearvault-backend/internal/middleware"
	"github.com/mreyes/gearvault-backend/internal/services"
)

func SetupRoutes(r chi.Router, cfg *config.Config) {
	requireAuth := middleware.Auth(cfg.JWTSecret, services.GetUserByID)

	// Auth routes
	r.Post("/api/auth/register", handlers.Register)
	r.Post("/api/auth/login", handlers.Login)
	r.Post("/api/auth/forgot-password", handlers.ForgotPassword)
	r.Post("/api/auth/reset-password", handlers.ResetPassword)
	r.With(requireAuth).Get("/api/auth/me", handlers.GetMe)

	// Gear routes
	r.Route("/api/gear", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", handlers.GetAllGear)
		r.Post("/", handlers.CreateGear)
		r.Get("/{id}", handlers.GetGearByID)
		r.Put("/{id}", handlers.UpdateGear)
		r.Delete("/{id}", handlers.DeleteGear)
		r.Post("/{id}/images", handlers.UploadGearImages)
	})

	// Maintenance routes
	r.Route("/api/maintenance", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/{gearId}", handlers.GetMaintenanceByGearID)
		r.Post("/", handlers.CreateMaintenance)
		r.Put("/{id}", handlers.UpdateMaintenance)
		r.Delete("/{id}", handlers.DeleteMaintenance)
	})

	// Reminder routes
	r.Route("/api/reminders", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/", handlers.GetAllReminders)
		r.Post("/", handlers.CreateReminder)
		r.Put("/{id}", handlers.UpdateReminder)
		r.Delete("/{id}", handlers.DeleteReminder)
		r.Put("/{id}/complete", handlers.CompleteReminder)
	})
}
