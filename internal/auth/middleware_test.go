package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	tm := NewTokenMaker("secret-secret-secret-secret-secret", time.Minute)

	var seen Claims
	h := RequireRole(tm, RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	call := func(authz string) int {
		req := httptest.NewRequest(http.MethodPost, "/products", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, call(""))
	assert.Equal(t, http.StatusUnauthorized, call("Basic abc"))
	assert.Equal(t, http.StatusUnauthorized, call("Bearer nope"))

	viewer, err := tm.New(User{ID: "u_2", Role: "viewer"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call("Bearer "+viewer))

	noID, err := tm.New(User{Role: RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer "+noID))

	admin, err := tm.New(User{ID: "u_1", Username: "admin", Role: RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, call("Bearer "+admin))
	assert.Equal(t, "u_1", seen.UserID)
}
