package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/domain"
	"github.com/vipulmaurya2223/expense-splitter-api/internal/core/ports"
)

type stubGroupService struct {
	listFn         func(ctx context.Context) ([]domain.Group, error)
	getFn          func(ctx context.Context, id string) (*domain.Group, error)
	createFn       func(ctx context.Context, ident ports.Identity, name string) (*domain.Group, error)
	renameFn       func(ctx context.Context, ident ports.Identity, id, name string) error
	deleteFn       func(ctx context.Context, ident ports.Identity, id string) error
	addMemberFn    func(ctx context.Context, ident ports.Identity, groupID, email string) error
	removeMemberFn func(ctx context.Context, ident ports.Identity, groupID, userID string) error
	togglePinFn    func(ctx context.Context, ident ports.Identity, groupID string) (bool, error)
}

func (s *stubGroupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return s.listFn(ctx)
}

func (s *stubGroupService) GetGroup(ctx context.Context, id string) (*domain.Group, error) {
	return s.getFn(ctx, id)
}

func (s *stubGroupService) CreateGroup(ctx context.Context, ident ports.Identity, name string) (*domain.Group, error) {
	return s.createFn(ctx, ident, name)
}

func (s *stubGroupService) RenameGroup(ctx context.Context, ident ports.Identity, id, name string) error {
	return s.renameFn(ctx, ident, id, name)
}

func (s *stubGroupService) DeleteGroup(ctx context.Context, ident ports.Identity, id string) error {
	return s.deleteFn(ctx, ident, id)
}

func (s *stubGroupService) AddMember(ctx context.Context, ident ports.Identity, groupID, email string) error {
	return s.addMemberFn(ctx, ident, groupID, email)
}

func (s *stubGroupService) RemoveMember(ctx context.Context, ident ports.Identity, groupID, userID string) error {
	return s.removeMemberFn(ctx, ident, groupID, userID)
}

func (s *stubGroupService) TogglePin(ctx context.Context, ident ports.Identity, groupID string) (bool, error) {
	return s.togglePinFn(ctx, ident, groupID)
}

var callerIdent = ports.Identity{UserID: "user-1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}

func withIdentity(c echo.Context) echo.Context {
	c.Set("identity", callerIdent)
	return c
}

func TestGroupHandler_Create(t *testing.T) {
	svc := &stubGroupService{
		createFn: func(_ context.Context, ident ports.Identity, name string) (*domain.Group, error) {
			return &domain.Group{
				ID:        "group-1",
				Name:      name,
				OwnerID:   ident.UserID,
				OwnerName: ident.Name,
				Members:   []domain.GroupMember{{UserID: ident.UserID, Name: ident.Name}},
			}, nil
		},
	}
	h := NewGroupHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/api/groups", `{"name":"Trip"}`)
	withIdentity(c)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var resp groupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "group-1" || resp.Name != "Trip" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if resp.CreatedBy.ID != callerIdent.UserID || resp.CreatedBy.Name != callerIdent.Name {
		t.Fatalf("created_by should carry the owner's id and name: %+v", resp.CreatedBy)
	}
	if len(resp.Members) != 1 || resp.Members[0].ID != callerIdent.UserID {
		t.Fatalf("creator should appear as first member: %+v", resp.Members)
	}
}

func TestGroupHandler_Create_MissingName(t *testing.T) {
	h := NewGroupHandler(&stubGroupService{})

	c, _ := newJSONContext(http.MethodPost, "/api/groups", `{}`)
	withIdentity(c)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestGroupHandler_Create_NoIdentity(t *testing.T) {
	h := NewGroupHandler(&stubGroupService{})

	c, _ := newJSONContext(http.MethodPost, "/api/groups", `{"name":"Trip"}`)
	err := h.Create(c)

	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %v", err)
	}
}

func TestGroupHandler_List(t *testing.T) {
	svc := &stubGroupService{
		listFn: func(context.Context) ([]domain.Group, error) {
			return []domain.Group{
				{ID: "group-1", Name: "Trip"},
				{ID: "group-2", Name: "Flat", Pinned: true},
			}, nil
		},
	}
	h := NewGroupHandler(svc)

	c, rec := newJSONContext(http.MethodGet, "/api/groups", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp []groupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || !resp[1].Pinned {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestGroupHandler_AddMember(t *testing.T) {
	var gotGroupID, gotEmail string
	svc := &stubGroupService{
		addMemberFn: func(_ context.Context, _ ports.Identity, groupID, email string) error {
			gotGroupID, gotEmail = groupID, email
			return nil
		},
	}
	h := NewGroupHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/api/groups/group-1/members", `{"email":"nina@example.com"}`)
	withIdentity(c)
	c.SetParamNames("id")
	c.SetParamValues("group-1")

	if err := h.AddMember(c); err != nil {
		t.Fatalf("add member failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotGroupID != "group-1" || gotEmail != "nina@example.com" {
		t.Fatalf("service called with %q %q", gotGroupID, gotEmail)
	}
}

func TestGroupHandler_RemoveMember(t *testing.T) {
	var gotGroupID, gotUserID string
	svc := &stubGroupService{
		removeMemberFn: func(_ context.Context, _ ports.Identity, groupID, userID string) error {
			gotGroupID, gotUserID = groupID, userID
			return nil
		},
	}
	h := NewGroupHandler(svc)

	c, rec := newJSONContext(http.MethodDelete, "/api/groups/group-1/members/user-7", "")
	withIdentity(c)
	c.SetParamNames("id", "userId")
	c.SetParamValues("group-1", "user-7")

	if err := h.RemoveMember(c); err != nil {
		t.Fatalf("remove member failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotGroupID != "group-1" || gotUserID != "user-7" {
		t.Fatalf("service called with %q %q", gotGroupID, gotUserID)
	}
}

func TestGroupHandler_Delete(t *testing.T) {
	svc := &stubGroupService{
		deleteFn: func(context.Context, ports.Identity, string) error { return nil },
	}
	h := NewGroupHandler(svc)

	c, rec := newJSONContext(http.MethodDelete, "/api/groups/group-1", "")
	withIdentity(c)
	c.SetParamNames("id")
	c.SetParamValues("group-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestGroupHandler_Delete_ForbiddenPassthrough(t *testing.T) {
	svc := &stubGroupService{
		deleteFn: func(context.Context, ports.Identity, string) error { return domain.ErrForbidden },
	}
	h := NewGroupHandler(svc)

	c, _ := newJSONContext(http.MethodDelete, "/api/groups/group-1", "")
	withIdentity(c)
	c.SetParamNames("id")
	c.SetParamValues("group-1")

	if err := h.Delete(c); err != domain.ErrForbidden {
		t.Fatalf("domain error must flow to the error handler, got %v", err)
	}
}

func TestGroupHandler_TogglePin(t *testing.T) {
	svc := &stubGroupService{
		togglePinFn: func(context.Context, ports.Identity, string) (bool, error) { return true, nil },
	}
	h := NewGroupHandler(svc)

	c, rec := newJSONContext(http.MethodPut, "/api/groups/group-1/pin", "")
	withIdentity(c)
	c.SetParamNames("id")
	c.SetParamValues("group-1")

	if err := h.TogglePin(c); err != nil {
		t.Fatalf("toggle pin failed: %v", err)
	}

	var resp pinResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Pinned {
		t.Fatalf("expected pinned=true in response")
	}
}
