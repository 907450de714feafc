package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

// GroupHandler handles HTTP requests for groups and membership.
type GroupHandler struct {
	service ports.GroupService
}

func NewGroupHandler(service ports.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// List handles GET /api/groups.
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.service.ListGroups(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]groupResponse, 0, len(groups))
	for i := range groups {
		out = append(out, toGroupResponse(&groups[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/groups/:id.
func (h *GroupHandler) Get(c echo.Context) error {
	group, err := h.service.GetGroup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGroupResponse(group))
}

// Create handles POST /api/groups. The caller becomes owner and first member.
func (h *GroupHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.service.CreateGroup(c.Request().Context(), ident, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGroupResponse(group))
}

// Rename handles PUT /api/groups/:id.
func (h *GroupHandler) Rename(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req renameGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.RenameGroup(c.Request().Context(), ident, c.Param("id"), req.Name); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "group renamed"})
}

// Delete handles DELETE /api/groups/:id.
func (h *GroupHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteGroup(c.Request().Context(), ident, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddMember handles POST /api/groups/:id/members.
func (h *GroupHandler) AddMember(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AddMember(c.Request().Context(), ident, c.Param("id"), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user added to group"})
}

// RemoveMember handles DELETE /api/groups/:id/members/:userId.
func (h *GroupHandler) RemoveMember(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.RemoveMember(c.Request().Context(), ident, c.Param("id"), c.Param("userId")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user removed from group"})
}

// TogglePin handles PUT /api/groups/:id/pin.
func (h *GroupHandler) TogglePin(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	pinned, err := h.service.TogglePin(c.Request().Context(), ident, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pinResponse{Pinned: pinned})
}

func toGroupResponse(group *domain.Group) groupResponse {
	members := make([]memberResponse, 0, len(group.Members))
	for _, m := range group.Members {
		members = append(members, memberResponse{ID: m.UserID, Name: m.Name, JoinedAt: m.JoinedAt})
	}
	return groupResponse{
		ID:        group.ID,
		Name:      group.Name,
		Pinned:    group.Pinned,
		CreatedBy: groupOwnerResponse{ID: group.OwnerID, Name: group.OwnerName},
		CreatedAt: group.CreatedAt,
		Members:   members,
	}
}
