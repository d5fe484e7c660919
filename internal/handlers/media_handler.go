package handlers

import (
	"net/http"

	"github.com/anonto42/social-crud/backend/internal/models"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const mediaNotFound = "Media not found"

// MediaHandler handles HTTP requests for media attached to posts
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository) *MediaHandler {
	return &MediaHandler{mediaRepository: mediaRepo}
}

// RegisterMediaRoutes registers media routes
func (h *MediaHandler) RegisterMediaRoutes(e *echo.Echo) {
	e.GET("/media", h.GetAllMedia)
	e.GET("/media/:id", h.GetMedia)
	e.POST("/media", h.CreateMedia)
	e.PUT("/media/:id", h.UpdateMedia)
	e.DELETE("/media/:id", h.DeleteMedia)
}

func (h *MediaHandler) GetAllMedia(c echo.Context) error {
	items, err := h.mediaRepository.GetAllMedia(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MediaHandler) GetMedia(c echo.Context) error {
	id, err := parseID(c, "media")
	if err != nil {
		return err
	}
	media, err := h.mediaRepository.GetMediaByID(c.Request().Context(), id)
	if err != nil {
		return lookupError(err, mediaNotFound)
	}
	return c.JSON(http.StatusOK, media)
}

// CreateMedia attaches an image or video to a post. Any other type is rejected with 400.
func (h *MediaHandler) CreateMedia(c echo.Context) error {
	var req models.CreateMediaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	media := &models.Media{
		Type:   req.Type,
		URL:    req.URL,
		PostID: req.PostID,
	}
	if err := h.mediaRepository.CreateMedia(c.Request().Context(), media); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) UpdateMedia(c echo.Context) error {
	id, err := parseID(c, "media")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	media, err := h.mediaRepository.GetMediaByID(ctx, id)
	if err != nil {
		return lookupError(err, mediaNotFound)
	}

	var req models.UpdateMediaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Apply(media)

	if err := h.mediaRepository.UpdateMedia(ctx, media); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	id, err := parseID(c, "media")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if _, err := h.mediaRepository.GetMediaByID(ctx, id); err != nil {
		return lookupError(err, mediaNotFound)
	}
	if err := h.mediaRepository.DeleteMedia(ctx, id); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Media deleted"})
}
