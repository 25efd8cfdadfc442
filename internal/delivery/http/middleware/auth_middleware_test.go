package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/service"
	mockSvc "quill/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	claims := &service.Claims{UserID: 7, Email: "user@example.com"}

	t.Run("valid token reaches the handler with identity set", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("VerifyAccessToken", "good-token").Return(claims, nil)

		c, rec := newAuthTestContext(t, "Bearer good-token")

		var gotUserID int64
		handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
			userID, ok := deliverycontext.GetUserID(c)
			require.True(t, ok)
			gotUserID = userID

			return okHandler(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(7), gotUserID)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)

		c, rec := newAuthTestContext(t, "")

		handler := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header is unauthorized", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)

		c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

		handler := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("VerifyAccessToken", "bad-token").Return(nil, jwt.ErrTokenExpired)

		c, rec := newAuthTestContext(t, "Bearer bad-token")

		handler := NewAuthMiddleware(tokenSvc).Authenticate(okHandler)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_AuthenticateOptional(t *testing.T) {
	claims := &service.Claims{UserID: 7, Email: "user@example.com"}

	t.Run("valid token sets identity", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("VerifyAccessToken", "good-token").Return(claims, nil)

		c, rec := newAuthTestContext(t, "Bearer good-token")

		handler := NewAuthMiddleware(tokenSvc).AuthenticateOptional(func(c echo.Context) error {
			userID, ok := deliverycontext.GetUserID(c)
			require.True(t, ok)
			assert.Equal(t, int64(7), userID)

			return okHandler(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header proceeds anonymously", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)

		c, rec := newAuthTestContext(t, "")

		handler := NewAuthMiddleware(tokenSvc).AuthenticateOptional(func(c echo.Context) error {
			_, ok := deliverycontext.GetUserID(c)
			assert.False(t, ok)

			return okHandler(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid token proceeds anonymously", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.On("VerifyAccessToken", "bad-token").Return(nil, jwt.ErrTokenExpired)

		c, rec := newAuthTestContext(t, "Bearer bad-token")

		handler := NewAuthMiddleware(tokenSvc).AuthenticateOptional(func(c echo.Context) error {
			_, ok := deliverycontext.GetUserID(c)
			assert.False(t, ok)

			return okHandler(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
