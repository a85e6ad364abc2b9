package handler

import (
	"log/slog"
	"net/http"

	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/response"
	"yap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment and thread handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type createCommentRequest struct {
	Content  string     `json:"content" validate:"required"`
	ParentID *uuid.UUID `json:"parentId"`
}

// GetComments returns the top-level comments of a post.
func (h *CommentHandler) GetComments(c echo.Context) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	views, err := h.uc.GetComments(c.Request().Context(), postID, middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Comments retrieved successfully")
}

// CreateComment adds a comment to a post, optionally as a reply to another
// comment on the same post.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment input")
	}

	view, err := h.uc.CreateComment(c.Request().Context(), &usecase.CreateCommentInput{
		UserID:   middleware.UserID(c),
		PostID:   postID,
		ParentID: req.ParentID,
		Content:  req.Content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Comment created successfully")
}

// GetThread returns a comment with its full ancestor chain and direct replies.
func (h *CommentHandler) GetThread(c echo.Context) error {
	commentID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	view, err := h.uc.GetThread(c.Request().Context(), commentID, middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Thread retrieved successfully")
}

// DeleteComment removes the caller's own comment.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	if err := h.uc.DeleteComment(c.Request().Context(), middleware.UserID(c), commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Comment deleted"}, "Comment deleted successfully")
}

// ToggleLike flips the caller's like on a comment.
func (h *CommentHandler) ToggleLike(c echo.Context) error {
	commentID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment ID")
	}

	liked, err := h.uc.ToggleLike(c.Request().Context(), middleware.UserID(c), commentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Like toggled successfully")
}
