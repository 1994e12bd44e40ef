package handler

import (
	"net/http"

	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/session"

	"github.com/labstack/echo/v4"
)

// SessionView is the JSON shape of the caller's resolved session.
type SessionView struct {
	FullName string `json:"fullName"`
	RoleName string `json:"roleName"`
	IsAdmin  bool   `json:"isAdmin"`
}

// GetSession returns the display attributes read from the caller's bearer
// credential.
func GetSession(c echo.Context) error {
	sess := session.FromContext(c.Request().Context())
	if !sess.Authenticated() {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, SessionView{
		FullName: sess.FullName,
		RoleName: string(sess.Role),
		IsAdmin:  sess.IsAdmin(),
	}, "Session retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
