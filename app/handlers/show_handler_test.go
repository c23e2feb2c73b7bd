package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagedoor/stagedoor/app/dto"
	"github.com/stagedoor/stagedoor/app/services"
)

// stubShowFlow answers every operation from memory so the handler can
// be exercised without a database
type stubShowFlow struct {
	nextID uint
}

func (s *stubShowFlow) ListShows(ctx context.Context) (*dto.ListShowsResponse, error) {
	return &dto.ListShowsResponse{Shows: []dto.ShowListItem{}}, nil
}

func (s *stubShowFlow) GetShow(ctx context.Context, id uint) (*dto.ListShowsResponse, error) {
	return &dto.ListShowsResponse{Shows: []dto.ShowListItem{}}, nil
}

func (s *stubShowFlow) CreateShow(ctx context.Context, payload *dto.ShowPayload) (*dto.MutationResponse, error) {
	return &dto.MutationResponse{ID: s.nextID, Message: "Show was successfully listed!"}, nil
}

func postShowForm(t *testing.T, flow *stubShowFlow, form url.Values) *http.Response {
	t.Helper()
	handler := NewShowHandler(flow, services.NewMemoryFlashService())
	app := fiber.New()
	app.Post("/shows/create", handler.Create)

	req := httptest.NewRequest(fiber.MethodPost, "/shows/create", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestShowCreateRedirectsToNewShow(t *testing.T) {
	resp := postShowForm(t, &stubShowFlow{nextID: 42}, url.Values{
		"artist_id":  {"4"},
		"venue_id":   {"1"},
		"start_time": {"2026-10-01 20:00:00"},
	})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/shows/42", resp.Header.Get(fiber.HeaderLocation))
}

func TestShowCreateRejectsIncompleteForm(t *testing.T) {
	resp := postShowForm(t, &stubShowFlow{nextID: 1}, url.Values{"artist_id": {"4"}})
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderLocation))
}
