package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"giftrequests/internal/handlers"
	"giftrequests/internal/handlers/api"
	"giftrequests/internal/middleware"
	"giftrequests/internal/workflow"
)

// Store is the submission persistence the routes need.
type Store interface {
	workflow.SubmissionStore
	workflow.ModerationStore
}

// Deps are the collaborators the routes are built from.
type Deps struct {
	Store  Store
	Drafts workflow.DraftHolder
	Health handlers.Pinger

	// OnCreate is told about every new submission, OnReview about every
	// approval or rejection.
	OnCreate []workflow.Listener
	OnReview []workflow.StatusListener
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(d Deps) {
	// Workflow
	intake := workflow.NewIntake(d.Store, d.OnCreate...)
	review := workflow.NewReview(d.Drafts, intake)
	listing := workflow.NewListing(d.Store)
	moderation := workflow.NewModeration(d.Store, d.OnReview...)
	gate := workflow.NewAdminGate(s.Cfg.AdminToken)

	// Initialize handlers
	formHandler := handlers.NewFormHandler(d.Drafts, s.Cfg)
	reviewHandler := handlers.NewReviewHandler(review, s.Cfg)
	submissionsHandler := handlers.NewSubmissionsHandler(listing, s.Cfg)
	healthHandler := handlers.NewHealthHandler(d.Health)

	apiSubmissions := api.NewSubmissionsHandler(intake, listing)
	apiAdmin := api.NewAdminHandler(gate, moderation)

	// Frontend routes - every page carries the requester identity
	s.App.Get("/", middleware.RequireRequester, formHandler.Show)
	s.App.Post("/review", middleware.RequireRequester, formHandler.Proceed)
	s.App.Post("/draft/field", middleware.RequireRequester, formHandler.UpdateField)
	s.App.Get("/review", middleware.RequireRequester, reviewHandler.Show)
	s.App.Post("/review/submit", middleware.RequireRequester, reviewHandler.Submit)
	s.App.Get("/review/edit", middleware.RequireRequester, reviewHandler.Edit)
	s.App.Get("/my-submissions", middleware.RequireRequester, submissionsHandler.List)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Get("/submissions", apiSubmissions.List)
	apiGroup.Post("/submissions", apiSubmissions.Create)
	apiGroup.Post("/admin/authenticate", apiAdmin.Authenticate)
	apiGroup.Post("/admin/logout", apiAdmin.Logout)
	apiGroup.Get("/admin/submissions", middleware.RequireAdmin, apiAdmin.List)
	apiGroup.Post("/admin/submissions/:id/approve", middleware.RequireAdmin, apiAdmin.Approve)
	apiGroup.Post("/admin/submissions/:id/reject", middleware.RequireAdmin, apiAdmin.Reject)

	// Operations
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
