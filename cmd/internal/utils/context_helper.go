package utils

import (
	"comparution/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func GetSubFromContext(c echo.Context) (string, apierror.ErrorResponse) {
	val := c.Get("sub")
	if val == nil {
		log.Warnf("route %s attempted to read nil sub from context", c.Request().URL)
		return "", apierror.UnauthorizedError
	}

	sub, ok := val.(string)
	if !ok || sub == "" {
		log.Warnf("expected string at 'sub' context key, got %v", val)
		return "", apierror.InternalServerError
	}
	return sub, nil
}
