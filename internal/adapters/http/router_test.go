package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averin/Lingua/internal/adapters/ws"
	"github.com/averin/Lingua/internal/app"
	"github.com/averin/Lingua/internal/config"
	"github.com/averin/Lingua/internal/translate"
)

func newTestRouter(t *testing.T) (*httptest.Server, *app.Directory) {
	t.Helper()
	cfg := &config.Config{
		Mode:       "release",
		ReadLimit:  32768,
		PingPeriod: 54 * time.Second,
		Secret:     "test-secret",
	}
	dir := app.NewDirectory()
	translator := translate.NewClient("http://localhost:5000/translate", time.Second)
	ctl := ws.NewController(cfg, app.NewLifecycle(dir), app.NewMessageRouter(dir, translator), app.NewSignalingRelay(dir))

	srv := httptest.NewServer(SetupRouter(t.Context(), cfg, dir, ctl))
	t.Cleanup(srv.Close)
	return srv, dir
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLanguagesEndpoint(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, err := http.Get(srv.URL + "/api/languages")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Languages []struct {
			Code string `json:"code"`
			Name string `json:"name"`
		} `json:"languages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Languages)

	codes := make(map[string]string, len(body.Languages))
	for _, l := range body.Languages {
		codes[l.Code] = l.Name
	}
	assert.Equal(t, "English", codes["en"])
	assert.Equal(t, "Spanish", codes["es"])
}

func TestUserEndpoint(t *testing.T) {
	srv, dir := newTestRouter(t)

	t.Run("unknown user", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/users/ghost")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("registered user", func(t *testing.T) {
		dir.Register("alice", "fr")

		resp, err := http.Get(srv.URL + "/api/users/alice")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			ID       string `json:"id"`
			Language string `json:"language"`
			Status   string `json:"status"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "alice", body.ID)
		assert.Equal(t, "fr", body.Language)
		assert.Equal(t, "online", body.Status)
	})
}

func TestClientTokenCookieIsSet(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == "ct" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "client token cookie should be set")
}
