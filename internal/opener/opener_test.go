package opener

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(p *Plugin) *fiber.App {
	app := fiber.New()
	app.Post("/plugin/opener/open", p.handleOpen)
	return app
}

func postOpen(t *testing.T, app *fiber.App, body string) (int, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/plugin/opener/open", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestOpenDelegatesToHostHandler(t *testing.T) {
	var opened string
	p := New()
	p.launch = func(target string) error {
		opened = target
		return nil
	}

	status, resp := postOpen(t, newTestApp(p), `{"url":"https://example.com/docs"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "https://example.com/docs", opened, "the exact url must reach the host handler")
}

func TestOpenLauncherFailure(t *testing.T) {
	p := New()
	p.launch = func(target string) error {
		return fmt.Errorf("exec: \"xdg-open\": executable file not found in $PATH")
	}

	status, resp := postOpen(t, newTestApp(p), `{"url":"https://example.com"}`)
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, resp["error"], "xdg-open")
}

func TestOpenRejectsInvalidRequests(t *testing.T) {
	p := New()
	p.launch = func(target string) error {
		t.Errorf("launcher must not be reached for %q", target)
		return nil
	}
	app := newTestApp(p)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"url":`},
		{"missing url", `{}`},
		{"empty url", `{"url":""}`},
		{"file scheme", `{"url":"file:///etc/passwd"}`},
		{"javascript scheme", `{"url":"javascript:alert(1)"}`},
		{"relative url", `{"url":"/local/path"}`},
		{"no host", `{"url":"https://"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _ := postOpen(t, app, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
		})
	}
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, validateURL("http://example.com"))
	assert.NoError(t, validateURL("https://example.com/a/b?c=d"))
	assert.Error(t, validateURL(""))
	assert.Error(t, validateURL("ftp://example.com"))
	assert.Error(t, validateURL("example.com"))
}

func TestPluginName(t *testing.T) {
	assert.Equal(t, "opener", New().Name())
}
