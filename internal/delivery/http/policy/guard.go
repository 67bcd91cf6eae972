package policy

import (
	"net/url"
	"strings"

	"koostory/config"
	"koostory/internal/domain/entity"
)

// devToolsProbe is the well-known URI Chrome DevTools polls on every page load.
const devToolsProbe = "/.well-known/appspecific/com.chrome.devtools"

// Guard protects everything under one path prefix.
type Guard struct {
	ProtectedPrefix string
	LoginPath       string
}

// NewGuard builds the guard from the site config.
func NewGuard(cfg *config.Config) Guard {
	return Guard{
		ProtectedPrefix: cfg.Site.ProtectedPrefix,
		LoginPath:       cfg.Site.LoginPath,
	}
}

// Authorize requires a user for the protected prefix and its subtree. Anonymous
// requests there are sent to the login page with the requested path as return target.
func (g Guard) Authorize(path string, user *entity.User) Decision {
	if user != nil || !g.Protects(path) {
		return Allow()
	}

	return RedirectTo(g.LoginPath + "?redirect=" + url.QueryEscape(path))
}

// Protects reports whether path lies under the protected prefix. "/administrator"
// is not under "/admin".
func (g Guard) Protects(path string) bool {
	if g.ProtectedPrefix == "" {
		return false
	}

	return path == g.ProtectedPrefix || strings.HasPrefix(path, g.ProtectedPrefix+"/")
}

// IsDevToolsProbe reports whether path is the browser devtools probe.
func IsDevToolsProbe(path string) bool {
	return strings.Contains(path, devToolsProbe)
}
