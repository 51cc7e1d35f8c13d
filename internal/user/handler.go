package user

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes user endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a user HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	CPF      string `json:"cpf"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type profileResponse struct {
	Login string `json:"login"`
	Name  string `json:"name"`
}

// Register handles user onboarding.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	profile, err := h.service.Register(c.UserContext(), RegisterInput{
		CPF:      req.CPF,
		Login:    req.Login,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return HTTPError(err)
	}
	return c.Status(http.StatusCreated).JSON(profileResponse{Login: profile.Login, Name: profile.Name})
}

// FindByID returns the visible profile of a user.
func (h *Handler) FindByID(c *fiber.Ctx) error {
	profile, err := h.service.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return HTTPError(err)
	}
	return c.Status(http.StatusOK).JSON(profileResponse{Login: profile.Login, Name: profile.Name})
}

type changePasswordRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ChangePassword stores a new password for an existing user.
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if err := h.service.ChangePassword(c.UserContext(), req.Login, req.Password); err != nil {
		return HTTPError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// HTTPError maps the domain error taxonomy to HTTP statuses. Dependency
// failures are rendered without internal detail.
func HTTPError(err error) error {
	var (
		validation *ValidationError
		duplicate  *DuplicateError
		notFound   *NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return fiber.NewError(http.StatusBadRequest, validation.Error())
	case errors.As(err, &duplicate):
		return fiber.NewError(http.StatusConflict, duplicate.Error())
	case errors.As(err, &notFound):
		return fiber.NewError(http.StatusNotFound, notFound.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, "operation failed")
	}
}
