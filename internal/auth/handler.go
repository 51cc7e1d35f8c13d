package auth

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the login endpoint.
type Handler struct {
	service *Service
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login validates credentials and returns an access token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	token, err := h.service.Authenticate(c.UserContext(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredential) {
			return fiber.NewError(http.StatusUnauthorized, ErrInvalidCredential.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "operation failed")
	}
	return c.Status(http.StatusOK).JSON(token)
}
