package postingapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobhubapp/jobhub/marketplace/auth"
	"github.com/jobhubapp/jobhub/marketplace/posting"
	"github.com/jobhubapp/jobhub/marketplace/posting/postingsrv"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// Handlers provides HTTP handlers for job postings
type Handlers struct {
	service *postingsrv.PostingService
}

// NewHandlers creates a new posting handlers instance
func NewHandlers(service *postingsrv.PostingService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreatePosting publishes a new job posting
// POST /api/postings
func (h *Handlers) CreatePosting(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return posting.ErrNotPostingOwner()
	}

	var req posting.CreatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return posting.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	response, err := h.service.CreatePosting(c.Context(), employerID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// ListMyPostings lists the employer's postings with application counts
// GET /api/postings?page=&page_size=
func (h *Handlers) ListMyPostings(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return posting.ErrNotPostingOwner()
	}

	response, err := h.service.ListMyPostings(c.Context(), employerID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// GetPosting retrieves one of the employer's postings
// GET /api/postings/:id
func (h *Handlers) GetPosting(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return posting.ErrNotPostingOwner()
	}

	response, err := h.service.GetPosting(c.Context(), employerID, kernel.NewPostingID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// UpdatePosting edits an existing posting
// PUT /api/postings/:id
func (h *Handlers) UpdatePosting(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return posting.ErrNotPostingOwner()
	}

	var req posting.UpdatePostingRequest
	if err := c.BodyParser(&req); err != nil {
		return posting.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	response, err := h.service.UpdatePosting(c.Context(), employerID, kernel.NewPostingID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ClosePosting manually closes a posting
// POST /api/postings/:id/close
func (h *Handlers) ClosePosting(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return posting.ErrNotPostingOwner()
	}

	response, err := h.service.ClosePosting(c.Context(), employerID, kernel.NewPostingID(c.Params("id")))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// DeletePosting soft-deletes a posting
// DELETE /api/postings/:id
func (h *Handlers) DeletePosting(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return posting.ErrNotPostingOwner()
	}

	if err := h.service.DeletePosting(c.Context(), employerID, kernel.NewPostingID(c.Params("id"))); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// BrowseOpenPostings lists open postings for job seekers
// GET /api/jobs?query=&location=&job_type=&min_salary=&page=&page_size=
func (h *Handlers) BrowseOpenPostings(c *fiber.Ctx) error {
	req := posting.SearchPostingsRequest{
		Query:      c.Query("query"),
		Location:   c.Query("location"),
		JobType:    kernel.JobType(c.Query("job_type")),
		MinSalary:  kernel.Money(c.QueryInt("min_salary", 0)),
		Pagination: parsePaginationOptions(c),
	}

	response, err := h.service.BrowseOpenPostings(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(response)
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

// RegisterRoutes registers all posting routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokenService *auth.TokenService) {
	authenticated := auth.Middleware(tokenService)

	postings := app.Group("/api/postings", authenticated, auth.RequireRole(kernel.RoleEmployer))
	postings.Post("/", handlers.CreatePosting)
	postings.Get("/", handlers.ListMyPostings)
	postings.Get("/:id", handlers.GetPosting)
	postings.Put("/:id", handlers.UpdatePosting)
	postings.Post("/:id/close", handlers.ClosePosting)
	postings.Delete("/:id", handlers.DeletePosting)

	jobs := app.Group("/api/jobs", authenticated, auth.RequireRole(kernel.RoleJobSeeker))
	jobs.Get("/", handlers.BrowseOpenPostings)
}
