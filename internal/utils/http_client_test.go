package utils

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := NewHTTPClient(
		WithBaseURL("http://localhost:8000"),
		WithTimeout(3*time.Second),
		WithCookieJar(jar),
	)

	assert.Equal(t, "http://localhost:8000", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
	assert.Same(t, jar, client.GetClient().Jar)
}

func TestNewHTTPClient_WithoutRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/login" {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewHTTPClient(WithBaseURL(srv.URL), WithoutRedirects())

	resp, err := client.R().Post("/login")

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode())
	assert.Equal(t, "/dashboard", resp.Header().Get("Location"))
}

func TestNewHTTPClient_WithUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.UserAgent()
	}))
	defer srv.Close()

	_, err := NewHTTPClient(WithUserAgent("go-awl-bridge")).R().Get(srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "go-awl-bridge", got)
}
