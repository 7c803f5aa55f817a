package asset

import (
	"errors"
	"net/url"
	"strings"
)

var ErrEmptyName = errors.New("asset name is empty")

// Resolver maps logical asset names to the URLs they are served from.
type Resolver struct {
	// Prefix is the path assets are mounted under, e.g. "/assets".
	Prefix string
	// Host is prepended when assets live on another origin (CDN).
	Host string
}

func NewResolver(prefix, host string) *Resolver {
	return &Resolver{
		Prefix: "/" + strings.Trim(prefix, "/"),
		Host:   strings.TrimRight(host, "/"),
	}
}

// AssetPath returns absolute URLs and root-relative paths untouched, and
// joins anything else under the host and prefix.
func (r *Resolver) AssetPath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}

	u, err := url.Parse(name)
	if err != nil {
		return "", err
	}
	if u.IsAbs() || strings.HasPrefix(name, "/") {
		return name, nil
	}

	prefix := strings.TrimRight(r.Prefix, "/")
	return r.Host + prefix + "/" + strings.TrimLeft(name, "/"), nil
}
