// Package policy decides, per request path, whether a request may proceed, must be
// redirected, or does not exist. It performs no I/O; the middleware turns a Decision
// into the actual response.
package policy

// Kind enumerates the possible outcomes of a policy check.
type Kind int

const (
	// KindAllow lets the request continue to its handler.
	KindAllow Kind = iota
	// KindRedirect answers with 302 and Location.
	KindRedirect
	// KindNotFound answers with 404.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindAllow:
		return "allow"
	case KindRedirect:
		return "redirect"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Decision is the result of a policy check. Location is set only for KindRedirect.
type Decision struct {
	Kind     Kind
	Location string
}

// Allow lets the request through.
func Allow() Decision {
	return Decision{Kind: KindAllow}
}

// RedirectTo sends the client elsewhere.
func RedirectTo(location string) Decision {
	return Decision{Kind: KindRedirect, Location: location}
}

// NotFound rejects the path as nonexistent.
func NotFound() Decision {
	return Decision{Kind: KindNotFound}
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Kind == KindAllow
}
