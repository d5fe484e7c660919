package handlers

import (
	"net/http"

	"github.com/anonto42/social-crud/backend/internal/models"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const userNotFound = "User not found"

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(e *echo.Echo) {
	e.GET("/users", h.GetUsers)
	e.GET("/users/:id", h.GetUser)
	e.POST("/users", h.CreateUser)
	e.PUT("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)
}

// GetUsers lists every user
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return lookupError(err, userNotFound)
	}
	return c.JSON(http.StatusOK, user)
}

// CreateUser creates a user. is_active defaults to true when omitted.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user := &models.User{
		Username:  req.Username,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
		IsActive:  true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := h.userRepository.CreateUser(c.Request().Context(), user); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, user)
}

// UpdateUser overwrites only the fields present in the body
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	user, err := h.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return lookupError(err, userNotFound)
	}

	var req models.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Apply(user)

	if err := h.userRepository.UpdateUser(ctx, user); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "user")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if _, err := h.userRepository.GetUserByID(ctx, id); err != nil {
		return lookupError(err, userNotFound)
	}
	if err := h.userRepository.DeleteUser(ctx, id); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted"})
}
