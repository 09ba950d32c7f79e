package handler

import (
	"context"
	"errors"
	"time"

	"tradeaskill/internal/delivery/http/dto"
	"tradeaskill/internal/delivery/http/middleware"
	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/pkg/response"
	"tradeaskill/internal/render"
	"tradeaskill/internal/usecase/profile"

	"github.com/gofiber/fiber/v3"
)

type ProfileService interface {
	Load(ctx context.Context, sessionID string) (user.Profile, error)
	Update(ctx context.Context, sessionID string, p user.Profile, e profile.Edit) (user.Profile, error)
	AddSkill(ctx context.Context, sessionID string, p user.Profile, list profile.SkillList, text string) (user.Profile, error)
	RemoveSkill(ctx context.Context, sessionID string, p user.Profile, list profile.SkillList, text string) (user.Profile, error)
	IsLoggedIn(ctx context.Context, sessionID string) (bool, error)
	SignOut(ctx context.Context, sessionID string) error
}

type ProfileHandler struct {
	profiles ProfileService
	today    func() string
}

func NewProfileHandler(profiles ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		today:    func() string { return time.Now().Format(time.DateOnly) },
	}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/profile", h.Get)
	r.Put("/profile", h.Update)
	r.Post("/profile/skills/:list", h.AddSkill)
	r.Delete("/profile/skills/:list", h.RemoveSkill)
	r.Post("/auth/signout", h.SignOut)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	sid := middleware.SessionID(c)
	p, err := h.profiles.Load(c.Context(), sid)
	if err != nil {
		return profileError(err)
	}
	return h.respond(c, "", sid, p)
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sid := middleware.SessionID(c)
	current, err := h.profiles.Load(c.Context(), sid)
	if err != nil {
		return profileError(err)
	}
	updated, err := h.profiles.Update(c.Context(), sid, current, profile.Edit{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Bio:       req.Bio,
	})
	if err != nil {
		return profileError(err)
	}
	return h.respond(c, "Profile updated successfully!", sid, updated)
}

func (h *ProfileHandler) AddSkill(c fiber.Ctx) error {
	list, err := profile.ParseSkillList(c.Params("list"))
	if err != nil {
		return profileError(err)
	}
	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	sid := middleware.SessionID(c)
	current, err := h.profiles.Load(c.Context(), sid)
	if err != nil {
		return profileError(err)
	}
	updated, err := h.profiles.AddSkill(c.Context(), sid, current, list, req.Skill)
	if err != nil {
		return profileError(err)
	}
	return h.respond(c, "", sid, updated)
}

func (h *ProfileHandler) RemoveSkill(c fiber.Ctx) error {
	list, err := profile.ParseSkillList(c.Params("list"))
	if err != nil {
		return profileError(err)
	}

	sid := middleware.SessionID(c)
	current, err := h.profiles.Load(c.Context(), sid)
	if err != nil {
		return profileError(err)
	}
	updated, err := h.profiles.RemoveSkill(c.Context(), sid, current, list, c.Query("skill"))
	if err != nil {
		return profileError(err)
	}
	return h.respond(c, "", sid, updated)
}

func (h *ProfileHandler) SignOut(c fiber.Ctx) error {
	sid := middleware.SessionID(c)
	if err := h.profiles.SignOut(c.Context(), sid); err != nil {
		return profileError(err)
	}
	return h.respond(c, "Signed out", sid, user.GuestProfile())
}

func (h *ProfileHandler) respond(c fiber.Ctx, msg, sid string, p user.Profile) error {
	loggedIn, err := h.profiles.IsLoggedIn(c.Context(), sid)
	if err != nil {
		return profileError(err)
	}
	return response.Success(c, fiber.StatusOK, msg, dto.ProfileResponse{
		Profile: p,
		View:    render.Profile(p, loggedIn, h.today()),
	})
}

func profileError(err error) error {
	switch {
	case errors.Is(err, profile.ErrUnknownList):
		return middleware.NewAppError(fiber.StatusNotFound, "Unknown skill list", nil, err)
	case errors.Is(err, profile.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
