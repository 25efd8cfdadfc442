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

// LikeHandler holds dependencies for like-related handlers.
type LikeHandler struct {
	uc     usecase.LikeUsecase
	logger *slog.Logger
}

// NewLikeHandler is the constructor for LikeHandler, injected by Fx.
func NewLikeHandler(uc usecase.LikeUsecase, logger *slog.Logger) *LikeHandler {
	return &LikeHandler{uc: uc, logger: logger}
}

// Like records the caller's like on a public blog.
func (h *LikeHandler) Like(c echo.Context) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	if err := h.uc.Like(c.Request().Context(), userID, blogID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Blog liked successfully")
}

// Unlike removes the caller's like.
func (h *LikeHandler) Unlike(c echo.Context) error {
	blogID, err := pathID(c, "blogId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	if err := h.uc.Unlike(c.Request().Context(), userID, blogID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog unliked successfully")
}
