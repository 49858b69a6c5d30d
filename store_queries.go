package sessionauth

import (
	"github.com/inticky/sessionauth/permission"
)

// Capability queries are pure reads over the current user's role names,
// delegating to the static catalog in package permission. Every query
// answers false/empty when no user is present.

// UserRoles returns the current user's role names, empty when anonymous.
func (s *Store) UserRoles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.RoleNames()
}

// UserPermissions returns the de-duplicated union of catalog permissions for
// the current user's roles.
func (s *Store) UserPermissions() []string {
	return permission.UserPermissions(s.UserRoles())
}

// HasRole reports whether the current user holds the named role.
func (s *Store) HasRole(role string) bool {
	for _, r := range s.UserRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the current user holds at least one of roles.
func (s *Store) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if s.HasRole(role) {
			return true
		}
	}
	return false
}

// HasPermission reports whether the current user's roles grant perm.
func (s *Store) HasPermission(perm string) bool {
	return permission.HasPermission(s.UserRoles(), perm)
}

// HasAnyPermission reports whether the current user's roles grant at least
// one of perms.
func (s *Store) HasAnyPermission(perms ...string) bool {
	return permission.HasAnyPermission(s.UserRoles(), perms)
}

// HasAllPermissions reports whether the current user's roles grant every one
// of perms.
func (s *Store) HasAllPermissions(perms ...string) bool {
	return permission.HasAllPermissions(s.UserRoles(), perms)
}

// IsSystemAdmin reports whether the current user is a system admin.
func (s *Store) IsSystemAdmin() bool {
	return permission.IsSystemAdmin(s.UserRoles())
}

// IsTenantAdmin reports whether the current user is a tenant admin; system
// admins satisfy the check implicitly.
func (s *Store) IsTenantAdmin() bool {
	return permission.IsTenantAdmin(s.UserRoles())
}

// IsAgent reports whether the current user is an agent; tenant and system
// admins satisfy the check implicitly.
func (s *Store) IsAgent() bool {
	return permission.IsAgent(s.UserRoles())
}

// CanAccessAdmin reports whether the current user may enter admin surfaces.
func (s *Store) CanAccessAdmin() bool {
	return permission.CanAccessAdmin(s.UserRoles())
}

// TenantID returns the current user's tenant id, "" when anonymous.
func (s *Store) TenantID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tenantIDLocked()
}

// CurrentUser returns a copy of the current user, nil when anonymous.
func (s *Store) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	out := *s.user
	out.Roles = make([]Role, len(s.user.Roles))
	copy(out.Roles, s.user.Roles)
	return &out
}

// Token returns the current session token, "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether the session is Authenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// IsLoading reports whether a login or refresh is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the user-visible message of the most recent interactive
// failure, "" when none.
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError discards the user-visible error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}
