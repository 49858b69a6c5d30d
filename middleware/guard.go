package middleware

import (
	"fmt"
	"html"
	"net/http"
	"net/url"

	sessionauth "github.com/inticky/sessionauth"
	"github.com/inticky/sessionauth/permission"
)

// Options declares the access requirements for a guarded route.
type Options struct {
	// RequireAuth gates the route on an authenticated session. Guards built
	// from [DefaultOptions] require authentication; a zero Options does not.
	RequireAuth bool

	// RequiredRoles lists role names the session must hold. With
	// RequireAnyRole set, one match suffices; otherwise all are required.
	RequiredRoles []string

	// RequiredPermissions lists permissions the session must hold. With
	// RequireAnyPermission set, one match suffices; otherwise all are
	// required.
	RequiredPermissions []string

	RequireAnyRole       bool
	RequireAnyPermission bool

	// FallbackPath is where unauthenticated requests are redirected.
	// Defaults to "/login".
	FallbackPath string
}

// DefaultOptions returns the baseline gate: authentication required, no role
// or permission constraints, fallback to /login.
func DefaultOptions() Options {
	return Options{RequireAuth: true, FallbackPath: "/login"}
}

// Guard wraps handlers with the access gate described by opts, evaluated
// against store on every request.
func Guard(store *sessionauth.Store, opts Options) func(http.Handler) http.Handler {
	if opts.FallbackPath == "" {
		opts.FallbackPath = "/login"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store.IsLoading() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session loading", http.StatusServiceUnavailable)
				return
			}

			if opts.RequireAuth && !store.IsAuthenticated() {
				redirectToFallback(w, r, opts.FallbackPath)
				return
			}

			if len(opts.RequiredRoles) > 0 {
				ok := store.HasAnyRole(opts.RequiredRoles...)
				if !opts.RequireAnyRole {
					ok = hasAllRoles(store, opts.RequiredRoles)
				}
				if !ok {
					writeAccessDenied(w, "You do not have the required role to access this page.")
					return
				}
			}

			if len(opts.RequiredPermissions) > 0 {
				ok := store.HasAnyPermission(opts.RequiredPermissions...)
				if !opts.RequireAnyPermission {
					ok = store.HasAllPermissions(opts.RequiredPermissions...)
				}
				if !ok {
					writeAccessDenied(w, "You do not have the required permissions to access this page.")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Admin gates a route on any administrative role.
func Admin(store *sessionauth.Store) func(http.Handler) http.Handler {
	return Guard(store, Options{
		RequireAuth:    true,
		RequiredRoles:  []string{permission.RoleSystemAdmin, permission.RoleTenantAdmin},
		RequireAnyRole: true,
		FallbackPath:   "/login",
	})
}

// SystemAdmin gates a route on the SYSTEM_ADMIN role.
func SystemAdmin(store *sessionauth.Store) func(http.Handler) http.Handler {
	return Guard(store, Options{
		RequireAuth:   true,
		RequiredRoles: []string{permission.RoleSystemAdmin},
		FallbackPath:  "/login",
	})
}

// TenantAdmin gates a route on tenant administration, which SYSTEM_ADMIN
// also satisfies.
func TenantAdmin(store *sessionauth.Store) func(http.Handler) http.Handler {
	return Guard(store, Options{
		RequireAuth:    true,
		RequiredRoles:  []string{permission.RoleSystemAdmin, permission.RoleTenantAdmin},
		RequireAnyRole: true,
		FallbackPath:   "/login",
	})
}

// Agent gates a route on support-agent access, which both admin roles also
// satisfy.
func Agent(store *sessionauth.Store) func(http.Handler) http.Handler {
	return Guard(store, Options{
		RequireAuth:    true,
		RequiredRoles:  []string{permission.RoleSystemAdmin, permission.RoleTenantAdmin, permission.RoleAgent},
		RequireAnyRole: true,
		FallbackPath:   "/login",
	})
}

func hasAllRoles(store *sessionauth.Store, roles []string) bool {
	for _, role := range roles {
		if !store.HasRole(role) {
			return false
		}
	}
	return true
}

func redirectToFallback(w http.ResponseWriter, r *http.Request, fallback string) {
	from := r.URL.RequestURI()
	http.Redirect(w, r, fallback+"?from="+url.QueryEscape(from), http.StatusFound)
}

func writeAccessDenied(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusForbidden)
	fmt.Fprintf(w, accessDeniedPage, html.EscapeString(message))
}

const accessDeniedPage = `<!doctype html>
<html>
<head><title>Access Denied</title></head>
<body>
<h1>Access Denied</h1>
<p>%s</p>
<p><a href="/dashboard">Go to Dashboard</a></p>
</body>
</html>
`
