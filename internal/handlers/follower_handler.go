package handlers

import (
	"net/http"

	"github.com/anonto42/social-crud/backend/internal/models"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowerHandler handles follower edge requests
type FollowerHandler struct {
	followerRepository repositories.FollowerRepository
}

// NewFollowerHandler creates a new FollowerHandler
func NewFollowerHandler(followerRepo repositories.FollowerRepository) *FollowerHandler {
	return &FollowerHandler{followerRepository: followerRepo}
}

// RegisterFollowerRoutes registers follower routes. Edges have no id, so
// there is no single-item GET or PUT and DELETE takes the pair in the body.
func (h *FollowerHandler) RegisterFollowerRoutes(e *echo.Echo) {
	e.GET("/followers", h.GetFollowers)
	e.POST("/followers", h.AddFollower)
	e.DELETE("/followers", h.DeleteFollower)
}

func (h *FollowerHandler) GetFollowers(c echo.Context) error {
	followers, err := h.followerRepository.GetFollowers(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, followers)
}

// AddFollower creates the edge user_from_id -> user_to_id. A repeated pair is a 409.
func (h *FollowerHandler) AddFollower(c echo.Context) error {
	var req models.FollowerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	follower := &models.Follower{
		UserFromID: req.UserFromID,
		UserToID:   req.UserToID,
	}
	if err := h.followerRepository.CreateFollower(c.Request().Context(), follower); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, follower)
}

func (h *FollowerHandler) DeleteFollower(c echo.Context) error {
	var req models.FollowerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()

	follower, err := h.followerRepository.GetFollower(ctx, req.UserFromID, req.UserToID)
	if err != nil {
		return lookupError(err, "Follower relationship not found")
	}
	if err := h.followerRepository.DeleteFollower(ctx, follower); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Follower relationship deleted"})
}
