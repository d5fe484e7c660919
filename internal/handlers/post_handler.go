package handlers

import (
	"net/http"

	"github.com/anonto42/social-crud/backend/internal/models"
	"github.com/anonto42/social-crud/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const postNotFound = "Post not found"

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo) {
	e.GET("/posts", h.GetPosts)
	e.GET("/posts/:id", h.GetPost)
	e.POST("/posts", h.CreatePost)
	e.PUT("/posts/:id", h.UpdatePost)
	e.DELETE("/posts/:id", h.DeletePost)
}

// GetPosts retrieves all posts
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetPosts(c.Request().Context())
	if err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseID(c, "post")
	if err != nil {
		return err
	}
	post, err := h.postRepository.GetPostByID(c.Request().Context(), id)
	if err != nil {
		return lookupError(err, postNotFound)
	}
	return c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post owned by user_id
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post := &models.Post{UserID: req.UserID}
	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusCreated, post)
}

// UpdatePost updates an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c, "post")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	post, err := h.postRepository.GetPostByID(ctx, id)
	if err != nil {
		return lookupError(err, postNotFound)
	}

	var req models.UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.Apply(post)

	if err := h.postRepository.UpdatePost(ctx, post); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post. Posts that still have comments or media are kept and a 409 is returned.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c, "post")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if _, err := h.postRepository.GetPostByID(ctx, id); err != nil {
		return lookupError(err, postNotFound)
	}
	if err := h.postRepository.DeletePost(ctx, id); err != nil {
		return storeError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted"})
}
