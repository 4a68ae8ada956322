package middleware

import (
	"strings"

	"pushreg/internal/delivery/api/response"
	"pushreg/internal/domain/entity"
	domainerrors "pushreg/internal/domain/errors"
	"pushreg/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	contextKeySubject = "auth_subject"
	contextKeyRoles   = "auth_roles"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware verifies agent bearer tokens
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: params.TokenService,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the token's subject and roles
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return unauthorized(c)
		}

		claims, err := m.tokenService.ValidateToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			return unauthorized(c)
		}

		c.Set(contextKeySubject, claims.Subject)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole allows the request only when the authenticated token carries role
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok || !roles.Contains(role) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

// GetSubject returns the authenticated token subject
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(contextKeySubject).(string)

	return subject, ok && subject != ""
}

// GetRoles returns the authenticated token roles
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrAgentTokenInvalid.ErrorCode(), domainerrors.ErrAgentTokenInvalid.Message())
}
