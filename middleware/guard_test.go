package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sessionauth "github.com/inticky/sessionauth"
	"github.com/inticky/sessionauth/permission"
)

type stubService struct {
	user  sessionauth.User
	token string
}

func (s *stubService) Login(ctx context.Context, creds sessionauth.Credentials) (*sessionauth.LoginResponse, error) {
	return &sessionauth.LoginResponse{Token: s.token, User: s.user}, nil
}

func (s *stubService) ValidateToken(ctx context.Context, token string) (*sessionauth.ValidationResult, error) {
	return &sessionauth.ValidationResult{Valid: true}, nil
}

func (s *stubService) RefreshToken(ctx context.Context, token string) (*sessionauth.LoginResponse, error) {
	return &sessionauth.LoginResponse{Token: s.token, User: s.user}, nil
}

func storeWithRoles(t *testing.T, roles ...string) *sessionauth.Store {
	t.Helper()

	user := sessionauth.User{ID: "u1", Email: "user@example.com", Status: sessionauth.StatusActive}
	for _, role := range roles {
		user.Roles = append(user.Roles, sessionauth.Role{ID: role, Name: role})
	}

	store, err := sessionauth.New(sessionauth.Config{Service: &stubService{user: user, token: "tok-" + strings.Join(roles, "-")}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(store.Close)

	if len(roles) > 0 {
		if err := store.Login(context.Background(), sessionauth.Credentials{Email: user.Email, Password: "pw"}); err != nil {
			t.Fatalf("Login: %v", err)
		}
	}
	return store
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuardRedirectsAnonymous(t *testing.T) {
	store := storeWithRoles(t)

	handler := Guard(store, DefaultOptions())(okHandler())
	req := httptest.NewRequest(http.MethodGet, "/tickets/42?tab=history", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	loc := rec.Header().Get("Location")
	if loc != "/login?from=%2Ftickets%2F42%3Ftab%3Dhistory" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestGuardAllowsAuthenticated(t *testing.T) {
	store := storeWithRoles(t, permission.RoleUser)

	handler := Guard(store, DefaultOptions())(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGuardDeniesInsufficientRoleWithoutRedirect(t *testing.T) {
	store := storeWithRoles(t, permission.RoleAgent)

	handler := Admin(store)(okHandler())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("unexpected redirect to %q", loc)
	}
	if !strings.Contains(rec.Body.String(), "Access Denied") {
		t.Fatalf("body missing access denied page: %q", rec.Body.String())
	}
}

func TestGuardRoleAllOfSemantics(t *testing.T) {
	store := storeWithRoles(t, permission.RoleTenantAdmin)

	both := Guard(store, Options{
		RequireAuth:   true,
		RequiredRoles: []string{permission.RoleTenantAdmin, permission.RoleAgent},
	})(okHandler())
	rec := httptest.NewRecorder()
	both.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("all-of: status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	either := Guard(store, Options{
		RequireAuth:    true,
		RequiredRoles:  []string{permission.RoleTenantAdmin, permission.RoleAgent},
		RequireAnyRole: true,
	})(okHandler())
	rec = httptest.NewRecorder()
	either.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("any-of: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGuardPermissionCheck(t *testing.T) {
	store := storeWithRoles(t, permission.RoleUser)

	allowed := Guard(store, Options{
		RequireAuth:         true,
		RequiredPermissions: []string{permission.TicketRead, permission.CommentCreate},
	})(okHandler())
	rec := httptest.NewRecorder()
	allowed.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tickets", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("allowed: status = %d, want %d", rec.Code, http.StatusOK)
	}

	denied := Guard(store, Options{
		RequireAuth:         true,
		RequiredPermissions: []string{permission.TenantDelete},
	})(okHandler())
	rec = httptest.NewRecorder()
	denied.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tenants", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("denied: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestGuardPresets(t *testing.T) {
	sysadmin := storeWithRoles(t, permission.RoleSystemAdmin)
	agent := storeWithRoles(t, permission.RoleAgent)

	cases := []struct {
		name  string
		guard func(*sessionauth.Store) func(http.Handler) http.Handler
		store *sessionauth.Store
		want  int
	}{
		{"system admin passes SystemAdmin", SystemAdmin, sysadmin, http.StatusOK},
		{"agent fails SystemAdmin", SystemAdmin, agent, http.StatusForbidden},
		{"system admin passes TenantAdmin", TenantAdmin, sysadmin, http.StatusOK},
		{"agent passes Agent", Agent, agent, http.StatusOK},
		{"system admin passes Agent", Agent, sysadmin, http.StatusOK},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.guard(tc.store)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}
