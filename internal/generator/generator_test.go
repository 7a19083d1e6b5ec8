package generator

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Generate(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"  a polished thought  "}`))
	}))
	defer srv.Close()

	g := NewHTTP(srv.URL, "mistral", 5*time.Second)
	got, err := g.Generate(context.Background(), "raw thought")
	require.NoError(t, err)

	assert.Equal(t, "a polished thought", got)
	assert.Contains(t, gotBody, `"model":"mistral"`)
	assert.Contains(t, gotBody, "raw thought")
}

func TestHTTP_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewHTTP(srv.URL, "", time.Second)
	_, err := g.Generate(context.Background(), "raw")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTP_Generate_Unreachable(t *testing.T) {
	g := NewHTTP("http://127.0.0.1:1", "", time.Second)
	_, err := g.Generate(context.Background(), "raw")
	assert.Error(t, err)
}

func TestHTTP_Defaults(t *testing.T) {
	g := NewHTTP("", "", 0)
	assert.Equal(t, defaultBaseURL, g.BaseURL)
	assert.Equal(t, defaultModel, g.Model)
	assert.Equal(t, defaultTimeout, g.Client.Timeout)
}

func TestStatic_Generate(t *testing.T) {
	g := &Static{
		Responses: map[string]string{"known": "canned"},
		Fallback:  "default",
	}

	got, err := g.Generate(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "canned", got)

	got, err = g.Generate(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Equal(t, "default", got)
}
