package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/delivery/http/response"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc     usecase.BlogUsecase
	logger *slog.Logger
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{uc: uc, logger: logger}
}

// pathID parses a numeric :id style path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " parameter")
	}

	return id, nil
}

// pageFromQuery reads ?page and ?limit.
func pageFromQuery(c echo.Context) usecase.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.Page{Page: page, Limit: limit}.Normalize()
}

type createBlogRequest struct {
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	IsPublic *bool  `json:"isPublic"`
}

// Create handles blog creation. Visibility defaults to public.
func (h *BlogHandler) Create(c echo.Context) error {
	userID, _ := deliverycontext.GetUserID(c)

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	blog, err := h.uc.Create(c.Request().Context(), usecase.CreateBlogInput{
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
		IsPublic: isPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBlogView(blog), "Blog created successfully")
}

// ListOwn lists the caller's blogs, public and private, paginated.
func (h *BlogHandler) ListOwn(c echo.Context) error {
	userID, _ := deliverycontext.GetUserID(c)

	output, err := h.uc.ListOwn(c.Request().Context(), userID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"blogs":      toBlogViews(output.Blogs),
		"pagination": output.Pagination,
	}, "")
}

// GetPublic retrieves a public blog. An authenticated viewer additionally
// gets likedByMe personalization through the optional guard.
func (h *BlogHandler) GetPublic(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	viewerID, _ := deliverycontext.GetUserID(c)

	output, err := h.uc.GetPublic(c.Request().Context(), blogID, viewerID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := toBlogView(output.Blog)
	view.LikeCount = &output.LikeCount
	if viewerID != 0 {
		view.LikedByMe = &output.LikedByMe
	}

	return response.Success(c, http.StatusOK, view, "")
}

// GetPrivate retrieves one of the caller's own private blogs.
func (h *BlogHandler) GetPrivate(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	output, err := h.uc.GetPrivate(c.Request().Context(), blogID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := toBlogView(output.Blog)
	view.LikeCount = &output.LikeCount

	return response.Success(c, http.StatusOK, view, "")
}

type updateBlogRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	IsPublic *bool   `json:"isPublic"`
}

// Update applies a partial edit to the caller's own blog.
func (h *BlogHandler) Update(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	blog, err := h.uc.Update(c.Request().Context(), usecase.UpdateBlogInput{
		BlogID:   blogID,
		AuthorID: userID,
		Title:    req.Title,
		Body:     req.Body,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBlogView(blog), "Blog updated successfully")
}

// Delete removes the caller's own blog.
func (h *BlogHandler) Delete(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	if err := h.uc.Delete(c.Request().Context(), blogID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog deleted successfully")
}
