package handler

import (
	"context"
	"errors"

	"tradeaskill/internal/delivery/http/middleware"
	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/pkg/response"
	"tradeaskill/internal/render"
	"tradeaskill/internal/usecase/signup"
	"tradeaskill/internal/validation"

	"github.com/gofiber/fiber/v3"
)

type SignupService interface {
	Register(ctx context.Context, sessionID string, form validation.SignupForm) (user.Profile, validation.Report, error)
	CheckField(form validation.SignupForm, name string) (validation.FieldStatus, error)
}

type SignupHandler struct {
	svc SignupService
}

func NewSignupHandler(svc SignupService) *SignupHandler {
	return &SignupHandler{svc: svc}
}

func (h *SignupHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/signup")
	grp.Post("/", h.Register)
	grp.Post("/validate", h.ValidateField)
}

func (h *SignupHandler) Register(c fiber.Ctx) error {
	var form validation.SignupForm
	if err := c.Bind().Body(&form); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	p, report, err := h.svc.Register(c.Context(), middleware.SessionID(c), form)
	if err != nil {
		switch {
		case errors.Is(err, signup.ErrValidation):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Please fix the errors in the form.", report, err)
		case errors.Is(err, signup.ErrEmailTaken):
			return middleware.NewAppError(fiber.StatusConflict, "An account with this email already exists.", report, err)
		case errors.Is(err, signup.ErrUpstream):
			return middleware.NewAppError(fiber.StatusBadGateway, "Failed to create account. Please try again.", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, "Account created successfully!", render.Profile(p, true, p.DateJoined))
}

// ValidateField checks one field against the submitted values, as on blur.
func (h *SignupHandler) ValidateField(c fiber.Ctx) error {
	var form validation.SignupForm
	if err := c.Bind().Body(&form); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	st, err := h.svc.CheckField(form, c.Query("field"))
	if err != nil {
		if errors.Is(err, validation.ErrUnknownField) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown field", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
