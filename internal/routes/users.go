package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bankline/bankline/internal/middleware"
	"github.com/bankline/bankline/internal/user"
)

// RegisterUserRoutes wires the public onboarding endpoint. When Redis is
// available the endpoint is idempotent: a retried registration replays the
// first response instead of re-running the writes.
func RegisterUserRoutes(r fiber.Router, h *user.Handler, d Deps) {
	if d.Cache != nil {
		r.Post("/users", middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger), h.Register)
		return
	}
	r.Post("/users", h.Register)
}
