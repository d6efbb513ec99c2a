package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Translate(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		var body struct {
			Query  string `json:"q"`
			Source string `json:"source"`
			Target string `json:"target"`
			Format string `json:"format"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body.Query)
		assert.Equal(t, "auto", body.Source)
		assert.Equal(t, "es", body.Target)
		assert.Equal(t, "text", body.Format)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":"hola","detectedLanguage":{"language":"en","confidence":97}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	res, err := c.Translate(context.Background(), "hello", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", res.Text)
	assert.Equal(t, "en", res.DetectedLanguage)
	assert.Equal(t, int32(1), requests.Load())
}

func TestClient_UnsupportedLanguageNeverHitsNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Translate(context.Background(), "hello", "tlh")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, int32(0), requests.Load())
}

func TestClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Translate(context.Background(), "hello", "es")
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestClient_EmptyTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"translatedText":""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2*time.Second)
	_, err := c.Translate(context.Background(), "hello", "es")
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Translate(context.Background(), "hello", "es")
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestClient_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := c.Translate(context.Background(), "hello", "es")
	assert.ErrorIs(t, err, ErrProviderFailure)
}
