package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/app/services"
	businessflow "github.com/stagedoor/stagedoor/business_flow"
)

// VenueHandler handles venue endpoints
type VenueHandler struct {
	flow  businessflow.VenueFlow
	flash services.FlashService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(flow businessflow.VenueFlow, flash services.FlashService) *VenueHandler {
	return &VenueHandler{flow: flow, flash: flash}
}

// List handles GET /venues
func (h *VenueHandler) List(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	resp, err := h.flow.ListVenues(ctx)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	message := "Venues retrieved successfully"
	if flash, _ := h.flash.Pop(ctx, flashKey(c)); flash != "" {
		message = flash
	}
	return SuccessResponse(c, fiber.StatusOK, message, resp)
}

// Search handles POST /venues/search
func (h *VenueHandler) Search(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	resp, err := h.flow.SearchVenues(ctx, searchTerm(c))
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Venue search completed", resp)
}

// Get handles GET /venues/:id
func (h *VenueHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	resp, err := h.flow.GetVenue(ctx, id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	message := "Venue retrieved successfully"
	if flash, _ := h.flash.Pop(ctx, flashKey(c)); flash != "" {
		message = flash
	}
	return SuccessResponse(c, fiber.StatusOK, message, resp)
}

// CreateForm handles GET /venues/create
func (h *VenueHandler) CreateForm(c fiber.Ctx) error {
	return SuccessResponse(c, fiber.StatusOK, "Venue form", dto.FormResponse{Fields: dto.VenueFormSchema})
}

// Create handles POST /venues/create
func (h *VenueHandler) Create(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	payload := dto.NormalizeVenueForm(formValues(c))

	resp, err := h.flow.CreateVenue(ctx, payload)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	_ = h.flash.Set(ctx, flashKey(c), resp.Message)
	return seeOther(c, fmt.Sprintf("/venues/%d", resp.ID), resp.Message, resp)
}

// EditForm handles GET /venues/:id/edit
func (h *VenueHandler) EditForm(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	values, err := h.flow.VenueFormValues(ctx, id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Venue form", dto.FormResponse{
		Fields: dto.VenueFormSchema,
		Values: values,
	})
}

// Edit handles POST /venues/:id/edit
func (h *VenueHandler) Edit(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	payload := dto.NormalizeVenueForm(formValues(c))

	resp, err := h.flow.UpdateVenue(ctx, id, payload)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	_ = h.flash.Set(ctx, flashKey(c), resp.Message)
	return seeOther(c, fmt.Sprintf("/venues/%d", resp.ID), resp.Message, resp)
}

// Delete handles DELETE /venues/:id
func (h *VenueHandler) Delete(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	resp, err := h.flow.DeleteVenue(ctx, id)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	_ = h.flash.Set(ctx, flashKey(c), resp.Message)
	return seeOther(c, "/", resp.Message, resp)
}
