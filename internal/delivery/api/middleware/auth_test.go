package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"callbell/config"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/service"
	mockSvc "callbell/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T, enabled bool, roles ...string) (*AuthMiddleware, *mockSvc.MockTokenService) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{Auth: &config.AuthConfig{Enabled: enabled, Roles: roles}}

	return NewAuthMiddleware(AuthMiddlewareParams{
		TokenSvc: tokenSvc,
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), tokenSvc
}

func runAuth(m *AuthMiddleware, authorization string) (*service.StationClaims, bool, error) {
	req := httptest.NewRequest(http.MethodPost, "/claim-call", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var claims *service.StationClaims
	var reached bool
	err := m.Authenticate(func(c echo.Context) error {
		reached = true
		claims, _ = GetStation(c)

		return nil
	})(c)

	return claims, reached, err
}

func TestAuthMiddleware_DisabledPassesThrough(t *testing.T) {
	m, _ := newAuthMiddleware(t, false)

	_, reached, err := runAuth(m, "")
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestAuthMiddleware_AcceptsAllowedRole(t *testing.T) {
	m, tokenSvc := newAuthMiddleware(t, true, "staff")
	tokenSvc.EXPECT().ValidateStationKey("key-1").
		Return(&service.StationClaims{Role: "staff", RegisteredClaims: jwt.RegisteredClaims{Subject: "floor-tablet"}}, nil).Once()

	claims, reached, err := runAuth(m, "Bearer key-1")
	require.NoError(t, err)
	assert.True(t, reached)
	require.NotNil(t, claims)
	assert.Equal(t, "floor-tablet", claims.Subject)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, true)

		_, reached, err := runAuth(m, "")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.False(t, reached)
	})

	t.Run("invalid key", func(t *testing.T) {
		m, tokenSvc := newAuthMiddleware(t, true)
		tokenSvc.EXPECT().ValidateStationKey("forged").Return(nil, errors.New("signature is invalid")).Once()

		_, reached, err := runAuth(m, "Bearer forged")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.False(t, reached)
	})

	t.Run("role not allowed", func(t *testing.T) {
		m, tokenSvc := newAuthMiddleware(t, true, "table")
		tokenSvc.EXPECT().ValidateStationKey("key-2").
			Return(&service.StationClaims{Role: "staff", RegisteredClaims: jwt.RegisteredClaims{Subject: "kitchen"}}, nil).Once()

		_, reached, err := runAuth(m, "Bearer key-2")
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		assert.False(t, reached)
	})
}
