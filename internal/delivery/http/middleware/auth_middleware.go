package middleware

import (
	"log/slog"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/session"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the caller's bearer credential into a session
// and stores it on the request context. The backend remains the authority
// on token validity; this layer only short-circuits requests that carry no
// usable credential at all.
type SessionMiddleware struct {
	parser *session.Parser
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(parser *session.Parser, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{parser: parser, logger: logger}
}

// Authenticate parses the Authorization header into a session. Requests
// without a credential are rejected before any backend call.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if strings.TrimSpace(authHeader) == "" {
			return domainerrors.ErrUnauthenticated
		}

		sess, err := m.parser.ParseBearer(authHeader)
		if err != nil {
			m.logger.Warn("rejected bearer credential",
				slog.String("path", c.Request().URL.Path),
				slog.Any("error", err),
			)

			return domainerrors.ErrUnauthenticated
		}

		ctx := session.WithSession(c.Request().Context(), sess)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole gates a route group on the session's role. It must be used
// after Authenticate.
func (m *SessionMiddleware) RequireRole(required entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := session.FromContext(c.Request().Context())
			if sess == nil || sess.Role != required {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
