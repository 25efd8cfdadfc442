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

// FollowHandler holds dependencies for follow-related handlers.
type FollowHandler struct {
	uc     usecase.FollowUsecase
	logger *slog.Logger
}

// NewFollowHandler is the constructor for FollowHandler, injected by Fx.
func NewFollowHandler(uc usecase.FollowUsecase, logger *slog.Logger) *FollowHandler {
	return &FollowHandler{uc: uc, logger: logger}
}

// Follow creates a follow relation from the caller to the target user.
func (h *FollowHandler) Follow(c echo.Context) error {
	followingID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	if err := h.uc.Follow(c.Request().Context(), userID, followingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Followed successfully")
}

// Unfollow removes the relation.
func (h *FollowHandler) Unfollow(c echo.Context) error {
	followingID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	userID, _ := deliverycontext.GetUserID(c)

	if err := h.uc.Unfollow(c.Request().Context(), userID, followingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Unfollowed successfully")
}

// Followers lists the caller's followers.
func (h *FollowHandler) Followers(c echo.Context) error {
	userID, _ := deliverycontext.GetUserID(c)

	output, err := h.uc.Followers(c.Request().Context(), userID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users":      toUserViews(output.Users),
		"pagination": output.Pagination,
	}, "")
}

// Followings lists the users the caller follows.
func (h *FollowHandler) Followings(c echo.Context) error {
	userID, _ := deliverycontext.GetUserID(c)

	output, err := h.uc.Followings(c.Request().Context(), userID, pageFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"users":      toUserViews(output.Users),
		"pagination": output.Pagination,
	}, "")
}
