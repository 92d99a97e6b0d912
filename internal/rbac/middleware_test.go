package rbac_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk/internal/rbac"
	"github.com/staffdesk/staffdesk/internal/token"
)

type stubSource struct {
	perms map[string]rbac.PermissionSet
	err   error
	calls int
}

func (s *stubSource) PermissionsForRole(ctx context.Context, role string) (rbac.PermissionSet, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	perms, ok := s.perms[role]
	if !ok {
		return nil, rbac.ErrRoleNotFound
	}
	return perms, nil
}

func newGate(t *testing.T, source rbac.PermissionSource) (rbac.Middleware, *token.Service) {
	t.Helper()
	tokens := token.NewService([]byte("gate-test-secret"), 0)
	return rbac.Middleware{Tokens: tokens, Permissions: source}, tokens
}

// okHandler records whether the protected handler ran.
type okHandler struct {
	called bool
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	w.WriteHeader(http.StatusOK)
}

func messageOf(t *testing.T, res *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	return body.Message
}

func TestAuthenticateMissingHeader(t *testing.T) {
	source := &stubSource{}
	gate, _ := newGate(t, source)
	handler := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
	res := httptest.NewRecorder()
	gate.Authenticate(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Empty Authorization Header", messageOf(t, res))
	assert.False(t, handler.called)
	assert.Zero(t, source.calls, "permission lookup must not run for unauthenticated requests")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	gate, tokens := newGate(t, &stubSource{})
	signed, err := tokens.Issue(1, "viewer")
	require.NoError(t, err)

	for _, header := range []string{
		"Bearer",
		"Bearer " + signed + " extra",
		"bearer " + signed,
		"Basic " + signed,
		signed,
	} {
		handler := &okHandler{}
		req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
		req.Header.Set("Authorization", header)
		res := httptest.NewRecorder()
		gate.Authenticate(handler).ServeHTTP(res, req)

		assert.Equal(t, http.StatusUnauthorized, res.Code, "header %q", header)
		assert.False(t, handler.called, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	gate, _ := newGate(t, &stubSource{})
	handler := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	res := httptest.NewRecorder()
	gate.Authenticate(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid Token", messageOf(t, res))
	assert.False(t, handler.called)
}

func TestAuthenticateMissingRoleRecordIsIntegrityFault(t *testing.T) {
	gate, tokens := newGate(t, &stubSource{perms: map[string]rbac.PermissionSet{}})
	signed, err := tokens.Issue(5, "ghost-role")
	require.NoError(t, err)

	handler := &okHandler{}
	req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	gate.Authenticate(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "Internal Server Error", messageOf(t, res))
	assert.False(t, handler.called)
}

func TestAuthenticateAttachesPrincipal(t *testing.T) {
	perms := rbac.PermissionSet{"employee-page": {rbac.ActionRead: true}}
	source := &stubSource{perms: map[string]rbac.PermissionSet{"viewer": perms}}
	gate, tokens := newGate(t, source)
	signed, err := tokens.Issue(9, "viewer")
	require.NoError(t, err)

	var got *rbac.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = rbac.PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	gate.Authenticate(next).ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), got.UserID)
	assert.Equal(t, "viewer", got.Role)
	assert.Equal(t, perms, got.Permissions)
}

func TestRequireDeniesWithoutGrant(t *testing.T) {
	gate, _ := newGate(t, &stubSource{})
	handler := &okHandler{}

	principal := &rbac.Principal{
		Role:        "viewer",
		Permissions: rbac.PermissionSet{"employee-page": {rbac.ActionRead: true}},
	}
	req := httptest.NewRequest(http.MethodDelete, "/employees/employee-page/1", nil)
	req = req.WithContext(rbac.ContextWithPrincipal(req.Context(), principal))
	res := httptest.NewRecorder()
	gate.Require("employee-page", rbac.ActionDelete)(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Equal(t, "Forbidden", messageOf(t, res))
	assert.False(t, handler.called)
}

func TestRequireAllowsExplicitGrant(t *testing.T) {
	gate, _ := newGate(t, &stubSource{})
	handler := &okHandler{}

	principal := &rbac.Principal{
		Role:        "viewer",
		Permissions: rbac.PermissionSet{"employee-page": {rbac.ActionRead: true}},
	}
	req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
	req = req.WithContext(rbac.ContextWithPrincipal(req.Context(), principal))
	res := httptest.NewRecorder()
	gate.Require("employee-page", rbac.ActionRead)(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, handler.called)
}

func TestRequireWithoutPrincipalIsUnauthenticated(t *testing.T) {
	gate, _ := newGate(t, &stubSource{})
	handler := &okHandler{}

	req := httptest.NewRequest(http.MethodGet, "/employees/employee-page", nil)
	res := httptest.NewRecorder()
	gate.Require("employee-page", rbac.ActionRead)(handler).ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, handler.called)
}

func TestGateStagesCompose(t *testing.T) {
	perms := rbac.PermissionSet{"employee-page": {rbac.ActionRead: true}}
	source := &stubSource{perms: map[string]rbac.PermissionSet{"viewer": perms}}
	gate, tokens := newGate(t, source)
	signed, err := tokens.Issue(2, "viewer")
	require.NoError(t, err)

	handler := &okHandler{}
	chain := gate.Authenticate(gate.Require("employee-page", rbac.ActionCreate)(handler))

	// Authenticated viewer lacking the create grant: stage 1 passes,
	// stage 2 denies, the handler never runs.
	req := httptest.NewRequest(http.MethodPost, "/employees/employee-page", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	chain.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.False(t, handler.called)
}
