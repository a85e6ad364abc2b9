package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"yap/internal/delivery/http/middleware"
	"yap/internal/delivery/http/response"
	"yap/internal/domain/entity"
	"yap/internal/domain/service"
	"yap/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post and feed handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{uc: uc, logger: logger}
}

// CreatePost handles the multipart post creation request. The text lives in
// the "content" field and images in repeated "images" file parts.
func (h *PostHandler) CreatePost(c echo.Context) error {
	input := &usecase.CreatePostInput{
		UserID:  middleware.UserID(c),
		Content: c.FormValue("content"),
	}

	form, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	}

	if form != nil {
		files := form.File["images"]
		if len(files) > entity.MaxPostImages {
			return response.BadRequest(c, "VALIDATION_FAILED", "Too many images")
		}

		for _, fileHeader := range files {
			file, err := fileHeader.Open()
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Unreadable image upload")
			}
			defer file.Close()

			input.Images = append(input.Images, service.ImageUpload{
				Filename:    fileHeader.Filename,
				ContentType: fileHeader.Header.Get("Content-Type"),
				Reader:      file,
			})
		}
	}

	view, err := h.uc.CreatePost(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Post created successfully")
}

// GetPost returns one post with the caller's like metadata.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	view, err := h.uc.GetPost(c.Request().Context(), postID, middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Post retrieved successfully")
}

// DeletePost removes the caller's own post.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	if err := h.uc.DeletePost(c.Request().Context(), middleware.UserID(c), postID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "Post deleted successfully")
}

// ToggleLike flips the caller's like on a post.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	postID, err := paramUUID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid post ID")
	}

	liked, err := h.uc.ToggleLike(c.Request().Context(), middleware.UserID(c), postID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "Like toggled successfully")
}

// GetFeed returns the caller's home feed, newest first, cursor-paginated via
// the "before" timestamp.
func (h *PostHandler) GetFeed(c echo.Context) error {
	var before time.Time
	if raw := c.QueryParam("before"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid before cursor, expected RFC 3339")
		}
		before = parsed
	}

	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		limit = parsed
	}

	views, err := h.uc.GetFeed(c.Request().Context(), middleware.UserID(c), before, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Feed retrieved successfully")
}
