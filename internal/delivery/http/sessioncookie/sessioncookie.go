// Package sessioncookie maps session identifiers to and from the session cookie.
// The cookie value is the raw identifier; nothing else travels in it.
package sessioncookie

import (
	"net/http"
	"time"

	"koostory/config"
)

// maxValueLength bounds accepted identifiers. Issued ids are 36-byte UUIDs.
const maxValueLength = 255

// Config holds every attribute the session cookie is issued with.
type Config struct {
	Name     string
	Path     string
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
	// MaxAge is the session lifetime. It caps the Max-Age of issued cookies, which
	// otherwise follows the session's own expiry.
	MaxAge time.Duration
}

// ConfigFrom builds the cookie attributes from the service config.
// The cookie is host-only: no Domain is ever set.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Name:     cfg.Session.CookieName,
		Path:     "/",
		Secure:   cfg.IsProduction(),
		HTTPOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   cfg.Session.Lifetime,
	}
}

// Codec encodes and decodes the session cookie.
type Codec struct {
	cfg Config
	now func() time.Time
}

// New creates a codec for the given attributes.
func New(cfg Config) *Codec {
	return &Codec{cfg: cfg, now: time.Now}
}

// NewFromConfig is the fx constructor.
func NewFromConfig(cfg *config.Config) *Codec {
	return New(ConfigFrom(cfg))
}

// Name returns the cookie name.
func (c *Codec) Name() string {
	return c.cfg.Name
}

// Encode issues the cookie for a session that expires at expiresAt. Expires and
// Max-Age both describe that instant; a session already past it gets a deleting cookie.
func (c *Codec) Encode(id string, expiresAt time.Time) *http.Cookie {
	cookie := c.base()
	cookie.Value = id
	cookie.Expires = expiresAt.UTC()
	cookie.MaxAge = c.maxAge(expiresAt)

	return cookie
}

func (c *Codec) maxAge(expiresAt time.Time) int {
	remaining := expiresAt.Sub(c.now())
	if c.cfg.MaxAge > 0 && remaining > c.cfg.MaxAge {
		remaining = c.cfg.MaxAge
	}
	if remaining <= 0 {
		return -1
	}

	// Round up so a session with half a second left is not dropped early
	return int((remaining + time.Second - 1) / time.Second)
}

// Blank issues a cookie that makes the client drop the session cookie.
func (c *Codec) Blank() *http.Cookie {
	cookie := c.base()
	cookie.Value = ""
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0).UTC()

	return cookie
}

// Decode returns the identifier held in a raw cookie value. Empty, oversized or
// malformed values yield ("", false).
func (c *Codec) Decode(raw string) (string, bool) {
	if raw == "" || len(raw) > maxValueLength {
		return "", false
	}
	for i := 0; i < len(raw); i++ {
		if !validValueByte(raw[i]) {
			return "", false
		}
	}

	return raw, true
}

// Read decodes the session cookie of r.
func (c *Codec) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.cfg.Name)
	if err != nil {
		return "", false
	}

	return c.Decode(cookie.Value)
}

// Present reports whether r carries a session cookie at all, decodable or not.
func (c *Codec) Present(r *http.Request) bool {
	_, err := r.Cookie(c.cfg.Name)

	return err == nil
}

func (c *Codec) base() *http.Cookie {
	return &http.Cookie{
		Name:     c.cfg.Name,
		Path:     c.cfg.Path,
		Secure:   c.cfg.Secure,
		HttpOnly: c.cfg.HTTPOnly,
		SameSite: c.cfg.SameSite,
	}
}

// validValueByte implements the cookie-octet rule of RFC 6265 section 4.1.1.
func validValueByte(b byte) bool {
	return b == 0x21 ||
		(b >= 0x23 && b <= 0x2b) ||
		(b >= 0x2d && b <= 0x3a) ||
		(b >= 0x3c && b <= 0x5b) ||
		(b >= 0x5d && b <= 0x7e)
}
