package client

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyRewriteRedirectsLegacyPaths(t *testing.T) {
	legacy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "legacy:"+r.URL.Path)
	}))
	defer legacy.Close()

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "primary:"+r.URL.Path)
	}))
	defer primary.Close()

	httpClient := &http.Client{Transport: newLegacyRewrite(legacy.URL, http.DefaultTransport)}

	fetch := func(path string) string {
		resp, err := httpClient.Get(primary.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(body)
	}

	assert.Equal(t, "legacy:/users", fetch("/api/users"))
	assert.Equal(t, "legacy:/user", fetch("/api/user"))
	assert.Equal(t, "primary:/products", fetch("/products"))
	assert.Equal(t, "primary:/api/usersX", fetch("/api/usersX"))
}

func TestLegacyRewriteBadTargetFallsThrough(t *testing.T) {
	next := http.DefaultTransport
	got := newLegacyRewrite("://not-a-url", next)
	assert.Equal(t, next, got)
}
