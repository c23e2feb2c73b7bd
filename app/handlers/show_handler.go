package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/app/services"
	businessflow "github.com/stagedoor/stagedoor/business_flow"
)

// ShowHandler handles show endpoints
type ShowHandler struct {
	flow      businessflow.ShowFlow
	flash     services.FlashService
	validator *validator.Validate
}

// NewShowHandler creates a new show handler
func NewShowHandler(flow businessflow.ShowFlow, flash services.FlashService) *ShowHandler {
	return &ShowHandler{
		flow:      flow,
		flash:     flash,
		validator: validator.New(),
	}
}

// showFormRequest mirrors the raw show form for structural validation
// before the values are parsed
type showFormRequest struct {
	ArtistID  string `validate:"required,number"`
	VenueID   string `validate:"required,number"`
	StartTime string `validate:"required"`
}

// List handles GET /shows
func (h *ShowHandler) List(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	resp, err := h.flow.ListShows(ctx)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	message := "Shows retrieved successfully"
	if flash, _ := h.flash.Pop(ctx, flashKey(c)); flash != "" {
		message = flash
	}
	return SuccessResponse(c, fiber.StatusOK, message, resp)
}

// Get handles GET /shows/:id
func (h *ShowHandler) Get(c fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", err.Error(), nil)
	}

	ctx := createRequestContext(c)
	resp, err := h.flow.GetShow(ctx, id)
	if err != nil {
		return businessErrorResponse(c, err)
	}
	return SuccessResponse(c, fiber.StatusOK, "Show retrieved successfully", resp)
}

// CreateForm handles GET /shows/create
func (h *ShowHandler) CreateForm(c fiber.Ctx) error {
	return SuccessResponse(c, fiber.StatusOK, "Show form", dto.FormResponse{Fields: dto.ShowFormSchema})
}

// Create handles POST /shows/create
func (h *ShowHandler) Create(c fiber.Ctx) error {
	ctx := createRequestContext(c)
	form := formValues(c)

	req := showFormRequest{
		ArtistID:  form.Get("artist_id"),
		VenueID:   form.Get("venue_id"),
		StartTime: form.Get("start_time"),
	}
	if err := h.validator.Struct(req); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR",
			"An error occurred. Show could not be listed.", validationDetails(err))
	}

	payload, vErr := dto.NormalizeShowForm(form)
	if vErr != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "VALIDATION_ERROR",
			"An error occurred. Show could not be listed.", vErr.Fields)
	}

	resp, err := h.flow.CreateShow(ctx, payload)
	if err != nil {
		return businessErrorResponse(c, err)
	}

	_ = h.flash.Set(ctx, flashKey(c), resp.Message)
	return seeOther(c, fmt.Sprintf("/shows/%d", resp.ID), resp.Message, resp)
}

// validationDetails flattens validator errors into a field-to-reason map
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return details
	}
	for _, fe := range errs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "required"
		case "number":
			details[fe.Field()] = "must be a number"
		default:
			details[fe.Field()] = "invalid"
		}
	}
	return details
}
