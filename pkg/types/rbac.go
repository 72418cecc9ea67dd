package types

// PermissionAction is a single grantable action, scoped to a domain by its
// prefix (e.g. read_collections, create_data, manage_roles).
type PermissionAction string

const (
	ActionCreateCollections PermissionAction = "create_collections"
	ActionReadCollections   PermissionAction = "read_collections"
	ActionUpdateCollections PermissionAction = "update_collections"
	ActionDeleteCollections PermissionAction = "delete_collections"

	ActionCreateData PermissionAction = "create_data"
	ActionReadData   PermissionAction = "read_data"
	ActionUpdateData PermissionAction = "update_data"
	ActionDeleteData PermissionAction = "delete_data"

	ActionCreateRoles PermissionAction = "create_roles"
	ActionReadRoles   PermissionAction = "read_roles"
	ActionUpdateRoles PermissionAction = "update_roles"
	ActionDeleteRoles PermissionAction = "delete_roles"

	ActionCreateUsers PermissionAction = "create_users"
	ActionReadUsers   PermissionAction = "read_users"
	ActionUpdateUsers PermissionAction = "update_users"
	ActionDeleteUsers PermissionAction = "delete_users"
	ActionAssignRoles PermissionAction = "assign_and_revoke_users"

	ActionReadCluster   PermissionAction = "read_cluster"
	ActionReadNodes     PermissionAction = "read_nodes"
	ActionManageBackups PermissionAction = "manage_backups"
)

// Permission grants one action over one resource selector. On input,
// permissions are sent to the server individually; on output the server
// groups them by domain and the client flattens them back.
type Permission struct {
	Action PermissionAction `json:"action"`

	// Selectors; which one applies follows from the action's domain. Empty
	// means "all" ("*" on the wire).
	Collection string `json:"collection,omitempty"`
	Tenant     string `json:"tenant,omitempty"`
	Role       string `json:"role,omitempty"`
	User       string `json:"user,omitempty"`
	Backend    string `json:"backend,omitempty"`
	Node       string `json:"node,omitempty"`
	Shard      string `json:"shard,omitempty"`
}

// Role bundles zero or more permissions under a name.
type Role struct {
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// UserType distinguishes database-managed users from OIDC identities.
type UserType string

const (
	UserTypeDB   UserType = "db"
	UserTypeOIDC UserType = "oidc"
)

// User is an identity known to the server.
type User struct {
	ID       string   `json:"userId"`
	Type     UserType `json:"dbUserType,omitempty"`
	Active   bool     `json:"active,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// GroupType distinguishes the grouping backends for role assignment.
type GroupType string

const (
	GroupTypeOIDC GroupType = "oidc"
)
