package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{uc: uc, logger: logger}
}

type commentBodyRequest struct {
	Body string `json:"body" validate:"required"`
}

// Create adds a comment to a public blog.
func (h *CommentHandler) Create(c echo.Context) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	var req commentBodyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.Create(c.Request().Context(), usecase.CreateCommentInput{
		AuthorID: userID,
		BlogID:   blogID,
		Body:     req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCommentView(comment), "Comment created successfully")
}

// List returns a page of a public blog's comments with author info.
func (h *CommentHandler) List(c echo.Context) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}

	output, err := h.uc.ListByBlog(c.Request().Context(), blogID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"comments":   toCommentViews(output.Comments),
		"pagination": output.Pagination,
	}, "")
}

// Update edits the caller's own comment.
func (h *CommentHandler) Update(c echo.Context) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	var req commentBodyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.uc.Update(c.Request().Context(), usecase.UpdateCommentInput{
		CommentID: commentID,
		BlogID:    blogID,
		AuthorID:  userID,
		Body:      req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCommentView(comment), "Comment updated successfully")
}

// Delete removes the caller's own comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "commentId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	if err := h.uc.Delete(c.Request().Context(), commentID, blogID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
