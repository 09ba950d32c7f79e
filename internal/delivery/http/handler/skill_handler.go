package handler

import (
	"context"
	"errors"

	"tradeaskill/internal/delivery/http/dto"
	"tradeaskill/internal/delivery/http/middleware"
	"tradeaskill/internal/pkg/response"
	"tradeaskill/internal/render"
	"tradeaskill/internal/search"
	"tradeaskill/internal/usecase/catalog"

	"github.com/gofiber/fiber/v3"
)

const msgSkillsUnavailable = "Error loading skills. Please ensure the JSON server is running."

type SkillBrowser interface {
	Browse(ctx context.Context, q catalog.Query) (catalog.Page, error)
}

type SkillHandler struct {
	browser SkillBrowser
}

func NewSkillHandler(browser SkillBrowser) *SkillHandler {
	return &SkillHandler{browser: browser}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.List)
}

// List serves the dashboard. Every control is a query parameter; nothing
// about the filter survives the request.
func (h *SkillHandler) List(c fiber.Ctx) error {
	q := catalog.Query{
		Filter: search.FilterState{
			Term:     c.Query("q"),
			Category: c.Query("category"),
			Level:    c.Query("level"),
			Sort:     search.ParseSortKey(c.Query("sort")),
		},
		View: render.ParseViewMode(c.Query("view")),
	}

	page, err := h.browser.Browse(c.Context(), q)
	if err != nil {
		if errors.Is(err, catalog.ErrUpstream) {
			return middleware.NewAppError(fiber.StatusBadGateway, msgSkillsUnavailable, nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SkillsResponse{
		Page: page,
		Query: dto.SkillsQuery{
			Search:   q.Filter.Term,
			Category: q.Filter.Category,
			Level:    q.Filter.Level,
			Sort:     page.Sort,
			View:     string(q.View),
		},
	})
}
