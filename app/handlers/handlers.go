// Package handlers provides HTTP request handlers for the booking API
package handlers

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	businessflow "github.com/stagedoor/stagedoor/business_flow"
	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/utils"
)

// flashCookieName identifies the client for one-shot confirmation
// messages across the redirect after a mutation
const flashCookieName = "flash_token"

// SuccessResponse sends a successful API response
func SuccessResponse(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error API response
func ErrorResponse(c fiber.Ctx, statusCode int, code, message string, details interface{}) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: &dto.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// businessErrorResponse maps a flow error onto an HTTP status: missing
// entities become 404, everything else a business flow reports is a 400
func businessErrorResponse(c fiber.Ctx, err error) error {
	var be *businessflow.BusinessError
	if errors.As(err, &be) {
		status := fiber.StatusBadRequest
		if businessflow.IsNotFound(err) {
			status = fiber.StatusNotFound
		}
		return ErrorResponse(c, status, be.Code, be.Message, nil)
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
}

// createRequestContext builds a context carrying client metadata for
// the business flows
func createRequestContext(c fiber.Ctx) context.Context {
	rid, _ := c.Locals("requestid").(string)
	if rid == "" {
		rid = uuid.New().String()
	}
	ctx := context.WithValue(c.Context(), utils.RequestIDKey, rid)
	ctx = context.WithValue(ctx, utils.IPAddressKey, c.IP())
	ctx = context.WithValue(ctx, utils.UserAgentKey, c.Get(fiber.HeaderUserAgent))
	ctx = context.WithValue(ctx, utils.EndpointKey, c.Path())
	return ctx
}

// formValues collects the submitted form as url.Values, preserving
// repeated keys such as multi-valued genres. URL-encoded and multipart
// bodies are both supported.
func formValues(c fiber.Ctx) url.Values {
	values := url.Values{}
	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for key, vs := range form.Value {
			for _, v := range vs {
				values.Add(key, v)
			}
		}
	}
	return values
}

// parseIDParam parses the :id route parameter
func parseIDParam(c fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}

// searchTerm extracts the search term from the form body or the query
// string. An absent term is the empty string, which matches everything.
func searchTerm(c fiber.Ctx) string {
	if term := formValues(c).Get("search_term"); term != "" {
		return term
	}
	return c.Query("search_term")
}

// flashKey returns the client's flash token, assigning one via cookie
// on first use
func flashKey(c fiber.Ctx) string {
	if token := c.Cookies(flashCookieName); token != "" {
		return token
	}
	token := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     flashCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return token
}

// seeOther issues the post-mutation redirect: 303 with the target in
// the Location header and the confirmation in the body
func seeOther(c fiber.Ctx, location, message string, data interface{}) error {
	c.Set(fiber.HeaderLocation, location)
	return c.Status(fiber.StatusSeeOther).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}
