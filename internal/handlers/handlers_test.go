package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/uikit/app/components/ui"
	"github.com/vangoframework/uikit/internal/config"
	"github.com/vangoframework/uikit/internal/handlers"
	"github.com/vangoframework/uikit/internal/metrics"
	"github.com/vangoframework/uikit/internal/middleware"
)

// testConfig creates a minimal config for testing
func testConfig() *config.Config {
	return &config.Config{
		Port:        "8080",
		Environment: "development",
		LogLevel:    slog.LevelError,
		LogFormat:   "text",
	}
}

// testServer starts the full router against a fresh metrics registry
func testServer(t *testing.T) (*httptest.Server, *metrics.Metrics) {
	t.Helper()

	m := metrics.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.New(testConfig(), m, logger)

	server := httptest.NewServer(h.Router())
	t.Cleanup(server.Close)
	return server, m
}

func getJSON(t *testing.T, rawURL string, v any) *http.Response {
	t.Helper()

	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func TestButtonClasses(t *testing.T) {
	server, m := testServer(t)

	q := url.Values{"variant": {"outline"}, "size": {"sm"}, "className": {"extra"}}
	var body handlers.ButtonClassesResponse
	resp := getJSON(t, server.URL+"/api/button-classes?"+q.Encode(), &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "outline", body.Variant)
	assert.Equal(t, "sm", body.Size)
	assert.Equal(t, "extra", body.ClassName)
	assert.Equal(t, ui.ButtonVariants(ui.ButtonVariantsConfig{
		Variant:   ui.ButtonVariantOutline,
		Size:      ui.ButtonSizeSm,
		ClassName: "extra",
	}), body.Class)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions("outline", "sm")))
}

func TestButtonClasses_Unknown(t *testing.T) {
	server, m := testServer(t)

	var body handlers.ButtonClassesResponse
	resp := getJSON(t, server.URL+"/api/button-classes?variant=nonexistent", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nonexistent", body.Variant)
	assert.Equal(t, ui.ButtonVariants(), body.Class)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions("none", "none")))
}

func TestCN(t *testing.T) {
	server, _ := testServer(t)

	var body handlers.CNResponse
	getJSON(t, server.URL+"/api/cn?c=a&c=&c=b&c=&c=c", &body)
	assert.Equal(t, "a b c", body.Class)

	getJSON(t, server.URL+"/api/cn", &body)
	assert.Equal(t, "", body.Class)
}

func TestHome(t *testing.T) {
	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/?className=w-full")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), ui.ButtonVariants(ui.ButtonVariantsConfig{
		Variant:   ui.ButtonVariantSecondary,
		Size:      ui.ButtonSizeIcon,
		ClassName: "w-full",
	}))
}

func TestHealthAndMetrics(t *testing.T) {
	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	resp, err = http.Get(server.URL + "/api/button-classes?variant=link&size=lg")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `uikit_button_class_resolutions_total{size="lg",variant="link"} 1`)
}

func TestNotFound(t *testing.T) {
	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
