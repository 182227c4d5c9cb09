// Package netlify publishes a generated frontend to Netlify as a static
// site. One deploy is two provider calls: create a site, then upload a zip
// of the rendered bundle.
package netlify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"promptforge/internal/deploy"
)

const (
	DefaultBaseURL = "https://api.netlify.com"
	DefaultTimeout = 30 * time.Second

	siteNamePrefix = "promptforge"

	// Provider error bodies are truncated to this many bytes before they
	// become a failure reason.
	maxErrorBody = 200
)

// Client talks to the Netlify API with a single access token. Every Deploy
// call is one attempt: no retries, bounded by the configured timeout, and
// every provider error is folded into a Failed outcome.
type Client struct {
	token      string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(token, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type site struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	SSLURL string `json:"ssl_url"`
}

// Deploy publishes the frontend artifact and returns the live URL on
// success. The context bounds the whole attempt; caller cancellation
// propagates to the in-flight provider call.
func (c *Client) Deploy(ctx context.Context, appName, frontend string) deploy.Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	bundle, err := buildBundle(appName, frontend)
	if err != nil {
		return deploy.Failed("bundle: " + err.Error())
	}

	siteName := fmt.Sprintf("%s-%s-%s", siteNamePrefix, strings.ToLower(appName), uuid.NewString()[:8])

	created, err := c.createSite(ctx, siteName)
	if err != nil {
		c.logger.Warn("netlify site creation failed", zap.String("site", siteName), zap.Error(err))
		return c.failure(err)
	}

	liveURL, err := c.uploadBundle(ctx, created.ID, bundle)
	if err != nil {
		c.logger.Warn("netlify deploy failed", zap.String("siteId", created.ID), zap.Error(err))
		return c.failure(err)
	}
	if liveURL == "" {
		liveURL = created.URL
	}

	c.logger.Info("deployed to netlify", zap.String("site", siteName), zap.String("url", liveURL))
	return deploy.Deployed(liveURL)
}

// failure maps a provider error to a Failed outcome; timeouts get the fixed
// "timeout" reason.
func (c *Client) failure(err error) deploy.Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return deploy.Failed("timeout")
	}
	return deploy.Failed(err.Error())
}

func (c *Client) createSite(ctx context.Context, name string) (*site, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/sites", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.unwrap(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create site: %s: %s", resp.Status, readSnippet(resp.Body))
	}

	var s site
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, fmt.Errorf("create site: decode response: %w", err)
	}
	if s.ID == "" {
		return nil, errors.New("create site: response missing site id")
	}
	return &s, nil
}

func (c *Client) uploadBundle(ctx context.Context, siteID string, bundle []byte) (string, error) {
	url := fmt.Sprintf("%s/api/v1/sites/%s/deploys", c.baseURL, siteID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bundle))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/zip")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.unwrap(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("deploy: %s: %s", resp.Status, readSnippet(resp.Body))
	}

	var d site
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		return "", fmt.Errorf("deploy: decode response: %w", err)
	}
	if d.SSLURL != "" {
		return d.SSLURL, nil
	}
	return d.URL, nil
}

// unwrap normalizes transport errors so deadline expiry is recognizable
// whether it came from the context or the http client.
func (c *Client) unwrap(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}
