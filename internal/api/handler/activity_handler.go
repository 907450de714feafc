package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

type activityResponse struct {
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ActivityHandler exposes the audit trail to administrators.
type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List handles GET /api/activities?limit=n. The route is admin-gated by the
// role middleware; no further per-record scoping applies.
func (h *ActivityHandler) List(c echo.Context) error {
	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
	}

	activities, err := h.service.Recent(c.Request().Context(), limit)
	if err != nil {
		return err
	}

	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return c.JSON(http.StatusOK, out)
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ActorID:   a.ActorID,
		Action:    a.Action,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Timestamp: a.Timestamp,
	}
}
