package api

import (
	"errors"

	"github.com/labstack/echo/v4"

	"shop-service/internal/entity"
	"shop-service/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser creates a new user --> POST /users/
func (h *UserHandler) CreateUser(c echo.Context) error {
	req := entity.UserCreate{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(422, map[string]string{"error": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(422, map[string]string{"error": "Invalid request payload"})
	}

	createdUser, err := h.userService.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	// Echo the submitted identity only, never the id or the hash.
	return c.JSON(200, map[string]string{
		"name":  createdUser.Name,
		"email": createdUser.Email,
	})
}

// ListUsers lists all users --> GET /users/
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, users)
}

// Login exchanges form credentials for a bearer token --> POST /token
func (h *UserHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	token, err := h.userService.Login(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(401, map[string]string{"error": err.Error()})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	return c.JSON(200, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}
