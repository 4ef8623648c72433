package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"callbell/config"
	deliverycontext "callbell/internal/delivery/context"
	domainerrors "callbell/internal/domain/errors"
	"callbell/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const stationContextKey = "station"

// AuthMiddleware verifies station keys on the POST endpoints.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	enabled  bool
	roles    []string
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenSvc service.TokenService `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{
		tokenSvc: params.TokenSvc,
		logger:   params.Logger,
	}
	if params.Config.Auth != nil {
		m.enabled = params.Config.Auth.Enabled
		m.roles = params.Config.Auth.Roles
	}

	return m
}

// Authenticate validates the bearer station key and, when roles are configured,
// requires the key's role to be one of them. It is a pass-through when auth is disabled.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" || m.tokenSvc == nil {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateStationKey(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Debug("Rejected station key",
				slog.Any("error", err),
			)

			return domainerrors.ErrUnauthorized
		}

		if len(m.roles) > 0 && !slices.Contains(m.roles, claims.Role) {
			return domainerrors.ErrUnauthorized.WithDetails("role " + claims.Role + " not allowed")
		}

		c.Set(stationContextKey, claims)
		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), m.logger,
			slog.String("station", claims.Subject),
			slog.String("station_role", claims.Role),
		)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetStation returns the verified station claims, if auth ran for this request.
func GetStation(c echo.Context) (*service.StationClaims, bool) {
	claims, ok := c.Get(stationContextKey).(*service.StationClaims)

	return claims, ok
}
