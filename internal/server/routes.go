package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

var ErrUnknownRoute = errors.New("unknown route")

// routeResolver builds absolute URLs from echo's named routes.
type routeResolver struct {
	echo    *echo.Echo
	baseURL string
}

func newRouteResolver(e *echo.Echo, baseURL string) *routeResolver {
	return &routeResolver{
		echo:    e,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *routeResolver) URLFor(name string) (string, error) {
	path := r.echo.Reverse(name)
	if path == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	if strings.Contains(path, "/:") || strings.Contains(path, "*") {
		return "", fmt.Errorf("%w: %q needs path parameters (%s)", ErrUnknownRoute, name, path)
	}
	return r.baseURL + path, nil
}
