package permission

// Role names issued by the backend. The set is open in principle; unknown
// names simply map to no permissions.
const (
	RoleSystemAdmin = "SYSTEM_ADMIN"
	RoleTenantAdmin = "TENANT_ADMIN"
	RoleAgent       = "AGENT"
	RoleUser        = "USER"
)

// Permission names. These mirror the backend's permission entities one to one.
const (
	TenantCreate = "TENANT_CREATE"
	TenantRead   = "TENANT_READ"
	TenantUpdate = "TENANT_UPDATE"
	TenantDelete = "TENANT_DELETE"

	UserCreate = "USER_CREATE"
	UserRead   = "USER_READ"
	UserUpdate = "USER_UPDATE"
	UserDelete = "USER_DELETE"

	TicketCreate = "TICKET_CREATE"
	TicketRead   = "TICKET_READ"
	TicketUpdate = "TICKET_UPDATE"
	TicketDelete = "TICKET_DELETE"
	TicketAssign = "TICKET_ASSIGN"

	CommentCreate = "COMMENT_CREATE"
	CommentRead   = "COMMENT_READ"
	CommentUpdate = "COMMENT_UPDATE"
	CommentDelete = "COMMENT_DELETE"

	SystemAdmin = "SYSTEM_ADMIN"
	TenantAdmin = "TENANT_ADMIN"
)

// rolePermissions is the authoritative role→permission table. Each role lists
// its full set explicitly; the hierarchy is informal and not enforced as set
// inclusion.
var rolePermissions = map[string][]string{
	RoleSystemAdmin: {
		SystemAdmin,
		TenantCreate, TenantRead, TenantUpdate, TenantDelete,
		UserCreate, UserRead, UserUpdate, UserDelete,
		TicketCreate, TicketRead, TicketUpdate, TicketDelete, TicketAssign,
		CommentCreate, CommentRead, CommentUpdate, CommentDelete,
	},
	RoleTenantAdmin: {
		TenantAdmin,
		TenantRead, TenantUpdate,
		UserCreate, UserRead, UserUpdate, UserDelete,
		TicketCreate, TicketRead, TicketUpdate, TicketDelete, TicketAssign,
		CommentCreate, CommentRead, CommentUpdate, CommentDelete,
	},
	RoleAgent: {
		TicketCreate, TicketRead, TicketUpdate, TicketAssign,
		CommentCreate, CommentRead, CommentUpdate,
		UserRead,
	},
	RoleUser: {
		TicketCreate, TicketRead,
		CommentCreate, CommentRead,
	},
}

// roleOrder fixes iteration order so that union results are deterministic.
var roleOrder = []string{RoleSystemAdmin, RoleTenantAdmin, RoleAgent, RoleUser}

// Roles returns the role names known to the catalog.
func Roles() []string {
	out := make([]string, len(roleOrder))
	copy(out, roleOrder)
	return out
}

// RolePermissions returns a copy of the permission set for one role, or nil
// for an unknown role.
func RolePermissions(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reports whether any of roles maps to a set containing perm.
// Unknown role names contribute nothing.
func HasPermission(roles []string, perm string) bool {
	for _, role := range roles {
		for _, p := range rolePermissions[role] {
			if p == perm {
				return true
			}
		}
	}
	return false
}

// HasAnyPermission reports whether roles satisfy at least one of perms.
func HasAnyPermission(roles []string, perms []string) bool {
	for _, perm := range perms {
		if HasPermission(roles, perm) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether roles satisfy every one of perms.
// An empty perms list is trivially satisfied.
func HasAllPermissions(roles []string, perms []string) bool {
	for _, perm := range perms {
		if !HasPermission(roles, perm) {
			return false
		}
	}
	return true
}

// UserPermissions returns the de-duplicated union of the permission sets for
// roles, in catalog order. Unknown roles are skipped.
func UserPermissions(roles []string) []string {
	want := make(map[string]bool, len(roles))
	for _, role := range roles {
		want[role] = true
	}

	seen := make(map[string]bool)
	var out []string
	for _, role := range roleOrder {
		if !want[role] {
			continue
		}
		for _, perm := range rolePermissions[role] {
			if seen[perm] {
				continue
			}
			seen[perm] = true
			out = append(out, perm)
		}
	}
	return out
}

// IsSystemAdmin reports whether roles contains SYSTEM_ADMIN.
func IsSystemAdmin(roles []string) bool {
	return containsRole(roles, RoleSystemAdmin)
}

// IsTenantAdmin reports whether roles contains TENANT_ADMIN. A system admin
// implicitly satisfies the check.
func IsTenantAdmin(roles []string) bool {
	return containsRole(roles, RoleTenantAdmin) || IsSystemAdmin(roles)
}

// IsAgent reports whether roles contains AGENT. A tenant admin (and therefore
// a system admin) implicitly satisfies the check.
func IsAgent(roles []string) bool {
	return containsRole(roles, RoleAgent) || IsTenantAdmin(roles)
}

// CanAccessAdmin reports whether roles grant access to admin surfaces:
// system admin or tenant admin.
func CanAccessAdmin(roles []string) bool {
	return IsSystemAdmin(roles) || IsTenantAdmin(roles)
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
