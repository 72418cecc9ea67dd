package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/cuemby/weaviate-client-go/pkg/types"
)

// wireSelector is the nested resource selector of one authz wire
// permission. Empty fields marshal away; the server reads "*" for "all".
type wireSelector struct {
	Collection string `json:"collection,omitempty"`
	Tenant     string `json:"tenant,omitempty"`
	Role       string `json:"role,omitempty"`
	Users      string `json:"users,omitempty"`
	Backend    string `json:"backend,omitempty"`
	Node       string `json:"node,omitempty"`
	Shard      string `json:"shard,omitempty"`
}

// wirePermission nests the selector under the action's domain, which is how
// /v1/authz speaks. The flat types.Permission is the client-facing form.
type wirePermission struct {
	Action      types.PermissionAction `json:"action"`
	Collections *wireSelector          `json:"collections,omitempty"`
	Data        *wireSelector          `json:"data,omitempty"`
	Roles       *wireSelector          `json:"roles,omitempty"`
	Users       *wireSelector          `json:"users,omitempty"`
	Backups     *wireSelector          `json:"backups,omitempty"`
	Nodes       *wireSelector          `json:"nodes,omitempty"`
}

type wireRole struct {
	Name        string           `json:"name"`
	Permissions []wirePermission `json:"permissions"`
}

// permissionDomain is the selector slot an action addresses, taken from the
// action's trailing word (read_collections -> collections).
func permissionDomain(action types.PermissionAction) string {
	s := string(action)
	if i := strings.LastIndex(s, "_"); i >= 0 {
		return s[i+1:]
	}
	return s
}

func encodePermission(p types.Permission) wirePermission {
	w := wirePermission{Action: p.Action}
	sel := &wireSelector{
		Collection: orStar(p.Collection),
		Tenant:     p.Tenant,
		Role:       p.Role,
		Users:      p.User,
		Backend:    p.Backend,
		Node:       p.Node,
		Shard:      p.Shard,
	}
	switch permissionDomain(p.Action) {
	case "collections":
		w.Collections = sel
	case "data":
		w.Data = sel
	case "roles":
		w.Roles = sel
	case "users":
		w.Users = sel
	case "backups":
		w.Backups = sel
	case "nodes":
		w.Nodes = sel
	}
	return w
}

func orStar(s string) string {
	if s == "" {
		return "*"
	}
	return s
}

func unStar(s string) string {
	if s == "*" {
		return ""
	}
	return s
}

func decodePermission(w wirePermission) types.Permission {
	p := types.Permission{Action: w.Action}
	for _, sel := range []*wireSelector{w.Collections, w.Data, w.Roles, w.Users, w.Backups, w.Nodes} {
		if sel == nil {
			continue
		}
		p.Collection = unStar(sel.Collection)
		p.Tenant = unStar(sel.Tenant)
		p.Role = unStar(sel.Role)
		p.User = unStar(sel.Users)
		p.Backend = unStar(sel.Backend)
		p.Node = unStar(sel.Node)
		p.Shard = unStar(sel.Shard)
		break
	}
	return p
}

func encodeRole(r types.Role) wireRole {
	w := wireRole{Name: r.Name, Permissions: make([]wirePermission, len(r.Permissions))}
	for i, p := range r.Permissions {
		w.Permissions[i] = encodePermission(p)
	}
	return w
}

func decodeRole(w wireRole) types.Role {
	r := types.Role{Name: w.Name, Permissions: make([]types.Permission, len(w.Permissions))}
	for i, p := range w.Permissions {
		r.Permissions[i] = decodePermission(p)
	}
	return r
}

// Roles manages role-based access control over /v1/authz.
type Roles struct {
	c *Client
}

// Roles returns the RBAC role surface.
func (c *Client) Roles() *Roles { return &Roles{c: c} }

// List fetches all roles.
func (r *Roles) List(ctx context.Context) ([]types.Role, error) {
	if err := r.c.ready(); err != nil {
		return nil, err
	}
	resp, err := r.c.rest.Send(ctx, http.MethodGet, "/authz/roles", nil, nil,
		[]int{http.StatusOK}, "list roles")
	if err != nil {
		return nil, err
	}
	var wire []wireRole
	if err := resp.Into(&wire); err != nil {
		return nil, err
	}
	out := make([]types.Role, len(wire))
	for i, w := range wire {
		out[i] = decodeRole(w)
	}
	return out, nil
}

// Get fetches one role. A missing role is not an error; the second return
// value reports existence.
func (r *Roles) Get(ctx context.Context, name string) (*types.Role, bool, error) {
	if err := r.c.ready(); err != nil {
		return nil, false, err
	}
	resp, err := r.c.rest.Send(ctx, http.MethodGet, "/authz/roles/"+name, nil, nil,
		[]int{http.StatusOK, http.StatusNotFound}, "get role")
	if err != nil {
		return nil, false, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	var w wireRole
	if err := resp.Into(&w); err != nil {
		return nil, false, err
	}
	role := decodeRole(w)
	return &role, true, nil
}

// Create registers a new role.
func (r *Roles) Create(ctx context.Context, role types.Role) error {
	if err := r.c.ready(); err != nil {
		return err
	}
	_, err := r.c.rest.Send(ctx, http.MethodPost, "/authz/roles", encodeRole(role), nil,
		[]int{http.StatusCreated}, "create role")
	return err
}

// Delete removes a role.
func (r *Roles) Delete(ctx context.Context, name string) error {
	if err := r.c.ready(); err != nil {
		return err
	}
	_, err := r.c.rest.Send(ctx, http.MethodDelete, "/authz/roles/"+name, nil, nil,
		[]int{http.StatusNoContent}, "delete role")
	return err
}

// AddPermissions extends a role in place.
func (r *Roles) AddPermissions(ctx context.Context, name string, perms ...types.Permission) error {
	return r.mutatePermissions(ctx, name, "add-permissions", perms)
}

// RemovePermissions shrinks a role in place.
func (r *Roles) RemovePermissions(ctx context.Context, name string, perms ...types.Permission) error {
	return r.mutatePermissions(ctx, name, "remove-permissions", perms)
}

func (r *Roles) mutatePermissions(ctx context.Context, name, op string, perms []types.Permission) error {
	if err := r.c.ready(); err != nil {
		return err
	}
	wire := make([]wirePermission, len(perms))
	for i, p := range perms {
		wire[i] = encodePermission(p)
	}
	body := map[string]any{"permissions": wire}
	_, err := r.c.rest.Send(ctx, http.MethodPost, "/authz/roles/"+name+"/"+op, body, nil,
		[]int{http.StatusOK}, op)
	return err
}

// AssignedUsers lists the user IDs holding a role.
func (r *Roles) AssignedUsers(ctx context.Context, name string) ([]string, error) {
	if err := r.c.ready(); err != nil {
		return nil, err
	}
	resp, err := r.c.rest.Send(ctx, http.MethodGet, "/authz/roles/"+name+"/users", nil, nil,
		[]int{http.StatusOK}, "list role users")
	if err != nil {
		return nil, err
	}
	var users []string
	if err := resp.Into(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// Users manages role assignments of users and groups.
type Users struct {
	c *Client
}

// Users returns the RBAC assignment surface.
func (c *Client) Users() *Users { return &Users{c: c} }

// RolesOf lists the roles assigned to a user.
func (u *Users) RolesOf(ctx context.Context, userID string) ([]types.Role, error) {
	if err := u.c.ready(); err != nil {
		return nil, err
	}
	resp, err := u.c.rest.Send(ctx, http.MethodGet, "/authz/users/"+userID+"/roles", nil, nil,
		[]int{http.StatusOK}, "list user roles")
	if err != nil {
		return nil, err
	}
	var wire []wireRole
	if err := resp.Into(&wire); err != nil {
		return nil, err
	}
	out := make([]types.Role, len(wire))
	for i, w := range wire {
		out[i] = decodeRole(w)
	}
	return out, nil
}

// AssignRoles grants roles to a user.
func (u *Users) AssignRoles(ctx context.Context, userID string, roles ...string) error {
	return u.mutateRoles(ctx, "users", userID, "assign", roles)
}

// RevokeRoles removes roles from a user.
func (u *Users) RevokeRoles(ctx context.Context, userID string, roles ...string) error {
	return u.mutateRoles(ctx, "users", userID, "revoke", roles)
}

// AssignGroupRoles grants roles to an OIDC group.
func (u *Users) AssignGroupRoles(ctx context.Context, groupID string, roles ...string) error {
	return u.mutateRoles(ctx, "groups", groupID, "assign", roles)
}

// RevokeGroupRoles removes roles from an OIDC group.
func (u *Users) RevokeGroupRoles(ctx context.Context, groupID string, roles ...string) error {
	return u.mutateRoles(ctx, "groups", groupID, "revoke", roles)
}

func (u *Users) mutateRoles(ctx context.Context, kind, id, op string, roles []string) error {
	if err := u.c.ready(); err != nil {
		return err
	}
	body := map[string]any{"roles": roles}
	_, err := u.c.rest.Send(ctx, http.MethodPost,
		"/authz/"+kind+"/"+id+"/"+op, body, nil,
		[]int{http.StatusOK}, op+" roles")
	return err
}
