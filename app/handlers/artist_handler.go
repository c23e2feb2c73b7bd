package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/app/services"
	businessflow "github.com/stagedoor/stagedoor/business_flow"
)

// ArtistHandler handles artist endpoints
type ArtistHandler struct {
	flow  businessflow.ArtistFlow
	flash services.FlashService
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(flow businessflow.ArtistFlow, flash services.FlashService) *ArtistHandler {
	return &ArtistHandler{flow: flow, flash: flash}
}

// List handles GET /artists
func (h *ArtistHandler) List(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	resp, err := h.flow.ListArtists(ctx)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", resp)
}

// Search handles POST /artists/search
func (h *ArtistHandler) Search(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	resp, err := h.flow.SearchArtists(ctx, searchTerm(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Artist search completed", resp)
}

// Get handles GET /artists/:id
func (h *ArtistHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	resp, err := h.flow.GetArtist(ctx, id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	message := "Artist retrieved successfully"
	if flash, _ := h.flash.Pop(ctx, flashKey(c)); flash != "" {
		message = flash
	}
	return SuccessResponse(c, fiber.StatusOK, message, resp)
}

// CreateForm handles GET /artists/create
func (h *ArtistHandler) CreateForm(c fiber.Ctx) error {
	return SuccessResponse(c, fiber.StatusOK, "Artist form", dto.FormResponse{Fields: dto.ArtistFormSchema})
}

// Create handles POST /artists/create
func (h *ArtistHandler) Create(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	payload := dto.NormalizeArtistForm(formValues(c))

	resp, err := h.flow.CreateArtist(ctx, payload)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	_ = h.flash.Set(ctx, flashKey(c), resp.Message)
	return seeOther(c, fmt.Sprintf("/artists/%d", resp.ID), resp.Message, resp)
}

// EditForm handles GET /artists/:id/edit
func (h *ArtistHandler) EditForm(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	values, err := h.flow.ArtistFormValues(ctx, id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Artist form", dto.FormResponse{
		Fields: dto.ArtistFormSchema,
		Values: values,
	})
}

// Edit handles POST /artists/:id/edit
func (h *ArtistHandler) Edit(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	payload := dto.NormalizeArtistForm(formValues(c))

	resp, err := h.flow.UpdateArtist(ctx, id, payload)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	_ = h.flash.Set(ctx, flashKey(c), resp.Message)
	return seeOther(c, fmt.Sprintf("/artists/%d", resp.ID), resp.Message, resp)
}
