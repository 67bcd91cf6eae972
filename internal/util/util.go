package util

import (
	"fmt"
	"strings"
	"time"
)

// NormalizeEmail trims and lowercases an email address for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsLocalPath reports whether target is a same-origin absolute path ("/admin/cms"),
// rejecting protocol-relative ("//evil.com") and backslash variants browsers treat the same way.
func IsLocalPath(target string) bool {
	if !strings.HasPrefix(target, "/") {
		return false
	}
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return false
	}

	return !strings.ContainsAny(target, "\r\n")
}

// SafeRedirect returns target when it is a local path, otherwise fallback.
func SafeRedirect(target, fallback string) string {
	if IsLocalPath(target) {
		return target
	}

	return fallback
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
