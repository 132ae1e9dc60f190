package applicationapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobhubapp/jobhub/marketplace/application"
	"github.com/jobhubapp/jobhub/marketplace/application/applicationsrv"
	"github.com/jobhubapp/jobhub/marketplace/auth"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// Handlers provides HTTP handlers for applications
type Handlers struct {
	service *applicationsrv.ApplicationService
}

// NewHandlers creates a new application handlers instance
func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Apply submits an application to an open posting
// POST /api/applications
func (h *Handlers) Apply(c *fiber.Ctx) error {
	applicantID, ok := auth.GetUserID(c)
	if !ok {
		return application.ErrNotApplicationOwner()
	}

	var req application.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	a, err := h.service.Apply(c.Context(), applicantID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(a)
}

// ListMyApplications lists the seeker's applications
// GET /api/applications?page=&page_size=
func (h *Handlers) ListMyApplications(c *fiber.Ctx) error {
	applicantID, ok := auth.GetUserID(c)
	if !ok {
		return application.ErrNotApplicationOwner()
	}

	response, err := h.service.ListMyApplications(c.Context(), applicantID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ListPostingApplications lists candidates for an employer's posting
// GET /api/postings/:id/applications?page=&page_size=
func (h *Handlers) ListPostingApplications(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return application.ErrNotApplicationOwner()
	}

	response, err := h.service.ListPostingApplications(
		c.Context(), employerID, kernel.NewPostingID(c.Params("id")), parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// Accept accepts a pending application and records the hire
// POST /api/applications/:id/accept
func (h *Handlers) Accept(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return application.ErrNotApplicationOwner()
	}

	var req application.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	response, err := h.service.Accept(c.Context(), employerID, kernel.NewApplicationID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// Reject rejects a pending application
// POST /api/applications/:id/reject
func (h *Handlers) Reject(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return application.ErrNotApplicationOwner()
	}

	var req application.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	a, err := h.service.Reject(c.Context(), employerID, kernel.NewApplicationID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(a)
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all application routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokenService *auth.TokenService) {
	authenticated := auth.Middleware(tokenService)

	seeker := app.Group("/api/applications", authenticated)
	seeker.Post("/", auth.RequireRole(kernel.RoleJobSeeker), handlers.Apply)
	seeker.Get("/", auth.RequireRole(kernel.RoleJobSeeker), handlers.ListMyApplications)
	seeker.Post("/:id/accept", auth.RequireRole(kernel.RoleEmployer), handlers.Accept)
	seeker.Post("/:id/reject", auth.RequireRole(kernel.RoleEmployer), handlers.Reject)

	postings := app.Group("/api/postings/:id/applications", authenticated, auth.RequireRole(kernel.RoleEmployer))
	postings.Get("/", handlers.ListPostingApplications)
}
