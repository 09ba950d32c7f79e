package routes

import (
	v1 "tradeaskill/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	v1.Register(r, h.Skills, h.Profile, h.Signup)
}
