package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jobhubapp/jobhub/marketplace/user"
)

// Handlers provides HTTP handlers for authentication
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new auth handlers instance
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Signup registers a new user
// POST /auth/signup
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.Signup(c.Context(), req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// Login authenticates a user
// POST /auth/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	session, err := h.service.Login(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(session)
}

// Me returns the authenticated user's profile
// GET /auth/me
func (h *Handlers) Me(c *fiber.Ctx) error {
	userID, ok := GetUserID(c)
	if !ok {
		return ErrInvalidToken()
	}

	userEntity, err := h.service.CurrentUser(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(user.ProfileResponse{
		User:              userEntity,
		ProfileCompletion: userEntity.ProfileCompletion(),
	})
}

// RegisterRoutes registers all auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokenService *TokenService) {
	api := app.Group("/auth")

	api.Post("/signup", handlers.Signup)
	api.Post("/login", handlers.Login)
	api.Get("/me", Middleware(tokenService), handlers.Me)
}
