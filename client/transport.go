package client

import (
	"net/http"
	"net/url"
	"strings"
)

// legacyRewrite redirects the two legacy paths, /api/users and /api/user, to
// the alternate deployment host, dropping the /api prefix. Everything else
// passes through untouched.
type legacyRewrite struct {
	target *url.URL
	next   http.RoundTripper
}

func newLegacyRewrite(legacyBaseURL string, next http.RoundTripper) http.RoundTripper {
	target, err := url.Parse(legacyBaseURL)
	if err != nil {
		return next
	}
	return &legacyRewrite{target: target, next: next}
}

func (t *legacyRewrite) RoundTrip(req *http.Request) (*http.Response, error) {
	path := req.URL.Path
	if path != "/api/users" && path != "/api/user" {
		return t.next.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.URL.Scheme = t.target.Scheme
	clone.URL.Host = t.target.Host
	clone.URL.Path = strings.TrimPrefix(path, "/api")
	clone.Host = t.target.Host
	return t.next.RoundTrip(clone)
}
