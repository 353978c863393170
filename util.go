package rdapexpiry

import (
	"net/url"
	"path"
)

// joinURL appends path segments to a base URL, preserving any path prefix
// the RDAP base already carries.
func joinURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	parts := append([]string{u.Path}, segments...)
	u.Path = path.Join(parts...)
	return u.String()
}

// hostPort extracts the host and port of a URL for diagnostics, defaulting
// the port from the scheme when absent.
func hostPort(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, ""
	}
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "http":
			port = "80"
		default:
			port = "443"
		}
	}
	return host, port
}

// toStringSlice converts an interface{} holding a []any into []string (best-effort).
func toStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, x := range arr {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
