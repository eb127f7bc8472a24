package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Syed-faiz05/portfolio-backend/internal/handlers"
	"github.com/Syed-faiz05/portfolio-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/login", handlers.Login)
	r.With(middleware.Protect).Put("/api/auth/profile", handlers.UpdateAdminProfile)
	r.With(middleware.Protect).Get("/api/auth/me", handlers.Me)

	// Profile routes (singleton, self-healing read)
	r.Get("/api/profile", handlers.GetProfile)
	r.With(middleware.Protect).Put("/api/profile", handlers.UpdateProfile)

	// Project routes
	r.Get("/api/projects", handlers.ListProjects)
	r.With(middleware.Protect).Post("/api/projects", handlers.CreateProject)
	r.With(middleware.Protect).Put("/api/projects/{id}", handlers.UpdateProject)
	r.With(middleware.Protect).Delete("/api/projects/{id}", handlers.DeleteProject)

	// Skill routes
	r.Get("/api/skills", handlers.ListSkills)
	r.With(middleware.Protect).Post("/api/skills", handlers.CreateSkill)
	r.With(middleware.Protect).Put("/api/skills/{id}", handlers.UpdateSkill)
	r.With(middleware.Protect).Delete("/api/skills/{id}", handlers.DeleteSkill)

	// About / timeline routes
	r.Get("/api/about", handlers.ListVisibleTimelineItems)
	r.With(middleware.Protect).Get("/api/about/all", handlers.ListAllTimelineItems)
	r.With(middleware.Protect).Post("/api/about", handlers.CreateTimelineItem)
	r.With(middleware.Protect).Put("/api/about/{id}", handlers.UpdateTimelineItem)
	r.With(middleware.Protect).Delete("/api/about/{id}", handlers.DeleteTimelineItem)

	// Message routes (contact form is public, reading is admin-only)
	r.With(middleware.Protect).Get("/api/messages", handlers.ListMessages)
	r.Post("/api/messages", handlers.CreateMessage)
	r.With(middleware.Protect).Put("/api/messages/{id}", handlers.UpdateMessage)
	r.With(middleware.Protect).Delete("/api/messages/{id}", handlers.DeleteMessage)

	// Dashboard aggregation
	r.With(middleware.Protect).Get("/api/dashboard/stats", handlers.DashboardStats)

	// LeetCode proxy
	r.Get("/api/leetcode/{username}", handlers.LeetCodeStats)

	// Health check
	r.Get("/api/health", handlers.Health)

	// Catch-all so undefined API routes never fall back to HTML
	r.NotFound(handlers.NotFound)
}
