package handlers

import (
	"net/http"

	"github.com/anonto42/social-crud/backend/internal/models"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const commentNotFound = "Comment not found"

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{commentRepository: commentRepo}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo) {
	e.GET("/comments", h.GetComments)
	e.GET("/comments/:id", h.GetComment)
	e.POST("/comments", h.CreateComment)
	e.PUT("/comments/:id", h.UpdateComment)
	e.DELETE("/comments/:id", h.DeleteComment)
}

func (h *CommentHandler) GetComments(c echo.Context) error {
	comments, err := h.commentRepository.GetComments(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := parseID(c, "comment")
	if err != nil {
		return err
	}
	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), id)
	if err != nil {
		return lookupError(err, commentNotFound)
	}
	return c.JSON(http.StatusOK, comment)
}

// CreateComment creates a new comment. The author and post are not looked up;
// the foreign keys reject dangling references.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment := &models.Comment{
		CommentText: req.CommentText,
		AuthorID:    req.AuthorID,
		PostID:      req.PostID,
	}
	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) UpdateComment(c echo.Context) error {
	id, err := parseID(c, "comment")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	comment, err := h.commentRepository.GetCommentByID(ctx, id)
	if err != nil {
		return lookupError(err, commentNotFound)
	}

	var req models.UpdateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Apply(comment)

	if err := h.commentRepository.UpdateComment(ctx, comment); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := parseID(c, "comment")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if _, err := h.commentRepository.GetCommentByID(ctx, id); err != nil {
		return lookupError(err, commentNotFound)
	}
	if err := h.commentRepository.DeleteComment(ctx, id); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
}
