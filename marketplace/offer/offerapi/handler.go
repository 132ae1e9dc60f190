package offerapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jobhubapp/jobhub/marketplace/auth"
	"github.com/jobhubapp/jobhub/marketplace/offer"
	"github.com/jobhubapp/jobhub/marketplace/offer/offersrv"
	"github.com/jobhubapp/jobhub/pkg/kernel"
)

// Handlers provides HTTP handlers for direct job offers
type Handlers struct {
	service *offersrv.OfferService
}

// NewHandlers creates a new offer handlers instance
func NewHandlers(service *offersrv.OfferService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// SendOffer sends a direct offer to a job seeker
// POST /api/offers
func (h *Handlers) SendOffer(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return offer.ErrNotOfferSender()
	}

	var req offer.SendOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return offer.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	o, err := h.service.SendOffer(c.Context(), employerID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(o)
}

// ListSentOffers lists offers sent by the employer
// GET /api/offers/sent?page=&page_size=
func (h *Handlers) ListSentOffers(c *fiber.Ctx) error {
	employerID, ok := auth.GetUserID(c)
	if !ok {
		return offer.ErrNotOfferSender()
	}

	response, err := h.service.ListSentOffers(c.Context(), employerID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// ListMyOffers lists offers received by the seeker
// GET /api/offers?page=&page_size=
func (h *Handlers) ListMyOffers(c *fiber.Ctx) error {
	seekerID, ok := auth.GetUserID(c)
	if !ok {
		return offer.ErrNotOfferRecipient()
	}

	response, err := h.service.ListMyOffers(c.Context(), seekerID, parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(response)
}

// AcceptOffer accepts a pending, unexpired offer
// POST /api/offers/:id/accept
func (h *Handlers) AcceptOffer(c *fiber.Ctx) error {
	seekerID, ok := auth.GetUserID(c)
	if !ok {
		return offer.ErrNotOfferRecipient()
	}

	var req offer.RespondOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return offer.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	o, err := h.service.AcceptOffer(c.Context(), seekerID, kernel.NewOfferID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(o)
}

// RejectOffer rejects a pending, unexpired offer
// POST /api/offers/:id/reject
func (h *Handlers) RejectOffer(c *fiber.Ctx) error {
	seekerID, ok := auth.GetUserID(c)
	if !ok {
		return offer.ErrNotOfferRecipient()
	}

	var req offer.RespondOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return offer.ErrValidationFailed().WithDetail("parse_error", err.Error())
	}

	o, err := h.service.RejectOffer(c.Context(), seekerID, kernel.NewOfferID(c.Params("id")), req)
	if err != nil {
		return err
	}

	return c.JSON(o)
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

// RegisterRoutes registers all offer routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, tokenService *auth.TokenService) {
	authenticated := auth.Middleware(tokenService)

	offers := app.Group("/api/offers", authenticated)
	offers.Post("/", auth.RequireRole(kernel.RoleEmployer), handlers.SendOffer)
	offers.Get("/sent", auth.RequireRole(kernel.RoleEmployer), handlers.ListSentOffers)
	offers.Get("/", auth.RequireRole(kernel.RoleJobSeeker), handlers.ListMyOffers)
	offers.Post("/:id/accept", auth.RequireRole(kernel.RoleJobSeeker), handlers.AcceptOffer)
	offers.Post("/:id/reject", auth.RequireRole(kernel.RoleJobSeeker), handlers.RejectOffer)
}
