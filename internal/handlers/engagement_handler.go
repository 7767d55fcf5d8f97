package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/skillsphere-app/backend/internal/models"
	"github.com/skillsphere-app/backend/internal/services"
)

// EngagementHandler handles HTTP requests for likes and comments
type EngagementHandler struct {
	engagementService *services.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(engagementService *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService}
}

// RegisterEngagementRoutes registers like and comment routes
func (h *EngagementHandler) RegisterEngagementRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.ToggleLike)
	g.GET("/posts/:post_id/likes/count", h.GetLikeCount)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatus)
	g.POST("/posts/:post_id/comments", h.AddComment)
	g.GET("/posts/:post_id/comments", h.GetComments)
	g.PUT("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// ToggleLike flips the caller's like state on a post
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	liked, err := h.engagementService.ToggleLike(c.Request().Context(), postID, identity.UserID, identity.Username)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liked": liked})
}

// GetLikeCount returns the number of likes on a post
func (h *EngagementHandler) GetLikeCount(c echo.Context) error {
	postID := c.Param("post_id")

	count, err := h.engagementService.GetLikeCount(c.Request().Context(), postID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "likes_count": count})
}

// GetUserLikeStatus reports whether the caller has liked a post
func (h *EngagementHandler) GetUserLikeStatus(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	liked, err := h.engagementService.GetUserLikeStatus(c.Request().Context(), postID, identity.UserID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "liked": liked})
}

// AddComment creates a new comment on a post
func (h *EngagementHandler) AddComment(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.engagementService.AddComment(c.Request().Context(), postID, identity.UserID, identity.Username, req.Content)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments retrieves all comments for a post, oldest first
func (h *EngagementHandler) GetComments(c echo.Context) error {
	postID := c.Param("post_id")

	comments, err := h.engagementService.GetComments(c.Request().Context(), postID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, comments)
}

// UpdateComment replaces the text of the caller's comment
func (h *EngagementHandler) UpdateComment(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.engagementService.UpdateComment(c.Request().Context(), uint(commentID), identity.UserID, req.Content); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Comment updated successfully"})
}

// DeleteComment removes the caller's comment
func (h *EngagementHandler) DeleteComment(c echo.Context) error {
	identity, ok := identityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.engagementService.DeleteComment(c.Request().Context(), uint(commentID), identity.UserID); err != nil {
		return mapServiceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// mapServiceError translates service sentinel errors into HTTP errors.
// Unknown errors are reported as 500 so the caller can retry.
func mapServiceError(err error) error {
	switch {
	case errors.Is(err, services.ErrEmptyComment):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrCommentNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrNotCommentOwner),
		errors.Is(err, services.ErrNotNotificationOwner):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// identityFromContext extracts the authenticated identity placed in the
// context by the auth middleware.
func identityFromContext(c echo.Context) (models.Identity, bool) {
	identity, ok := c.Get("identity").(models.Identity)
	if !ok || identity.UserID == "" {
		return models.Identity{}, false
	}
	return identity, true
}
