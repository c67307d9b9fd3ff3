package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RouteSkipper exempts the given routes from a middleware. Matching is on
// the registered route path, not the raw request URI.
func RouteSkipper(routes []string) middleware.Skipper {
	exempt := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		exempt[route] = struct{}{}
	}

	return func(ec echo.Context) bool {
		_, ok := exempt[ec.Path()]
		return ok
	}
}
