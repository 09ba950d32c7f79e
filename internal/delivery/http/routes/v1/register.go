package v1

import (
	"tradeaskill/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, skills *handler.SkillHandler, profile *handler.ProfileHandler, signup *handler.SignupHandler) {
	if r == nil {
		return
	}

	if skills != nil {
		skills.RegisterRoutes(r)
	}
	if profile != nil {
		profile.RegisterRoutes(r)
	}
	if signup != nil {
		signup.RegisterRoutes(r)
	}
}
