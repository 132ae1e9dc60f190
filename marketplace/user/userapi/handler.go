package userapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobhubapp/jobhub/marketplace/auth"
	"github.com/jobhubapp/jobhub/marketplace/user"
	"github.com/jobhubapp/jobhub/marketplace/user/usersrv"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// Handlers provides HTTP handlers for profiles and seeker browsing
type Handlers struct {
	service *usersrv.UserService
}

// NewHandlers creates a new user handlers instance
func NewHandlers(service *usersrv.UserService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// GetProfile returns the caller's profile with completion percentage
// GET /api/profile
func (h *Handlers) GetProfile(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return user.ErrUserNotFound()
	}

	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// UpdateProfile applies a partial update to the caller's profile
// PUT /api/profile
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return user.ErrUserNotFound()
	}

	var req user.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return user.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	profile, err := h.service.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return err
	}

	return c.JSON(profile)
}

// BrowseSeekers lists job seekers with complete profiles
// GET /api/seekers?skill=&city=&page=&page_size=
func (h *Handlers) BrowseSeekers(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return user.ErrUserNotFound()
	}

	req := user.SearchSeekersRequest{
		Skill:      c.Query("skill"),
		City:       c.Query("city"),
		Pagination: parsePaginationOptions(c),
	}

	seekers, err := h.service.BrowseSeekers(c.Context(), employerID, req)
	if err != nil {
		return err
	}

	return c.JSON(seekers)
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

// RegisterRoutes registers profile and seeker-browsing routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokenService *auth.TokenService) {
	authenticated := auth.Middleware(tokenService)

	profile := app.Group("/api/profile", authenticated)
	profile.Get("/", handlers.GetProfile)
	profile.Put("/", handlers.UpdateProfile)

	seekers := app.Group("/api/seekers", authenticated, auth.RequireRole(kernel.RoleEmployer))
	seekers.Get("/", handlers.BrowseSeekers)
}
