package netlify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promptforge/internal/deploy"
)

func TestDeploySuccess(t *testing.T) {
	var siteName string
	var uploadedContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/sites":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			siteName = body["name"]
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{
				"id":  "site-1",
				"url": "http://demo.netlify.app",
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/sites/site-1/deploys":
			uploadedContentType = r.Header.Get("Content-Type")
			json.NewEncoder(w).Encode(map[string]string{
				"ssl_url": "https://demo.netlify.app",
			})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient("token123", srv.URL, time.Second, zap.NewNop())
	got := c.Deploy(context.Background(), "WeatherApp", "const App = () => null;")

	assert.Equal(t, deploy.StatusDeployed, got.Status)
	assert.Equal(t, "https://demo.netlify.app", got.URL)
	assert.Equal(t, "application/zip", uploadedContentType)
	assert.True(t, strings.HasPrefix(siteName, "promptforge-weatherapp-"), "site name %q", siteName)
}

func TestDeployAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"access denied"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient("bad-token", srv.URL, time.Second, zap.NewNop())
	got := c.Deploy(context.Background(), "WeatherApp", "const App = () => null;")

	assert.Equal(t, deploy.StatusFailed, got.Status)
	assert.Contains(t, got.Reason, "401")
	assert.Empty(t, got.URL)
}

func TestDeployTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient("token123", srv.URL, 50*time.Millisecond, zap.NewNop())
	got := c.Deploy(context.Background(), "WeatherApp", "const App = () => null;")

	assert.Equal(t, deploy.StatusFailed, got.Status)
	assert.Equal(t, "timeout", got.Reason)
}

func TestDeployMissingSiteID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"url": "http://x"})
	}))
	defer srv.Close()

	c := NewClient("token123", srv.URL, time.Second, zap.NewNop())
	got := c.Deploy(context.Background(), "WeatherApp", "const App = () => null;")

	assert.Equal(t, deploy.StatusFailed, got.Status)
	assert.Contains(t, got.Reason, "missing site id")
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("token", "", 0, nil)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.NotNil(t, c.logger)
}
