package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro-boss/internal/data/entity"
	"bistro-boss/pkg/middleware"
	"bistro-boss/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func bearer(t *testing.T, tokens *utils.TokenManager, email string) string {
	t.Helper()
	token, _, err := tokens.Generate(email)
	require.NoError(t, err)
	return "Bearer " + token
}

// echoEmail reports the identity the guards let through.
var echoEmail = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	email, _ := utils.GetEmailFromContext(r.Context())
	utils.ResponseText(w, http.StatusOK, email)
})

func decodeKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	kind, _ := body["error"].(string)
	return kind
}

func TestVerifyToken(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)
	handler := middleware.VerifyToken(tokens, zap.NewNop())(echoEmail)

	t.Run("Should pass the token email to the next handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/isadmin/a@x.io", nil)
		req.Header.Set("Authorization", bearer(t, tokens, "a@x.io"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "a@x.io", rec.Body.String())
	})

	t.Run("Should accept a lowercase scheme", func(t *testing.T) {
		token, _, err := tokens.Generate("a@x.io")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	cases := []struct {
		name   string
		header string
	}{
		{name: "Should reject a missing header", header: ""},
		{name: "Should reject a header without scheme", header: "abc.def.ghi"},
		{name: "Should reject a garbage token", header: "Bearer abc.def.ghi"},
		{name: "Should reject a token signed elsewhere", header: bearer(t, utils.NewTokenManager("other", time.Hour), "a@x.io")},
		{
			name: "Should reject an expired token",
			header: bearer(t, tokens.WithClock(func() time.Time {
				return time.Now().Add(-2 * time.Hour)
			}), "a@x.io"),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, string(utils.KindUnauthenticated), decodeKind(t, rec))
		})
	}
}

func TestAdmin(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour)

	guarded := func(users *MockUserRepository) http.Handler {
		return middleware.VerifyToken(tokens, zap.NewNop())(
			middleware.Admin(users, zap.NewNop())(echoEmail),
		)
	}

	t.Run("Should let an admin through", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "boss@x.io").Return(newUser("boss@x.io", entity.RoleAdmin), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", bearer(t, tokens, "boss@x.io"))
		rec := httptest.NewRecorder()

		guarded(users).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		users.AssertNumberOfCalls(t, "FindByEmail", 1)
	})

	t.Run("Should forbid a regular user", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "a@x.io").Return(newUser("a@x.io", ""), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", bearer(t, tokens, "a@x.io"))
		rec := httptest.NewRecorder()

		guarded(users).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, string(utils.KindForbidden), decodeKind(t, rec))
		users.AssertExpectations(t)
	})

	t.Run("Should forbid a token whose user no longer exists", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "gone@x.io").Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", bearer(t, tokens, "gone@x.io"))
		rec := httptest.NewRecorder()

		guarded(users).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Should report a store failure as 500", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByEmail", mock.Anything, "boss@x.io").Return(nil, errors.New("connection refused")).Once()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", bearer(t, tokens, "boss@x.io"))
		rec := httptest.NewRecorder()

		guarded(users).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, string(utils.KindUpstream), decodeKind(t, rec))
	})

	t.Run("Should not reach the store without a token", func(t *testing.T) {
		users := new(MockUserRepository)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()

		guarded(users).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Should refuse when no identity is in context", func(t *testing.T) {
		users := new(MockUserRepository)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()

		middleware.Admin(users, zap.NewNop())(echoEmail).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRecover(t *testing.T) {
	t.Run("Should turn a panic into a 500 body", func(t *testing.T) {
		panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})
		rec := httptest.NewRecorder()

		middleware.Recover(zap.NewNop())(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, string(utils.KindUpstream), decodeKind(t, rec))
	})
}
