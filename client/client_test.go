package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seimoney/seimoney-go/store"
)

func newTestClient(t *testing.T, url string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithStore(store.NewMemStore())}, opts...)
	c, err := New(Config{APIURL: url}, opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RequiresAPIURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)

	_, err = New(Config{APIURL: "not a url"})
	assert.Error(t, err)
}

func TestNew_LeavesSuppliedHTTPClientUntouched(t *testing.T) {
	// A shared client configured with no timeout must stay that way.
	shared := &http.Client{}
	_ = newTestClient(t, "https://api.example", WithHTTPClient(shared))
	assert.Zero(t, shared.Timeout)

	withTimeout := &http.Client{Timeout: 5 * time.Second}
	_ = newTestClient(t, "https://api.example",
		WithHTTPClient(withTimeout), WithTimeout(time.Minute))
	assert.Equal(t, 5*time.Second, withTimeout.Timeout)
}

func TestNew_DefaultClientGetsTimeout(t *testing.T) {
	c := newTestClient(t, "https://api.example")
	assert.Equal(t, defaultTimeout, c.httpClient.Timeout)

	c = newTestClient(t, "https://api.example", WithTimeout(time.Minute))
	assert.Equal(t, time.Minute, c.httpClient.Timeout)
}

func TestSetToken_AttachesBearerHeader(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, c.Get(ctx, "/accounts", nil))

	c.SetToken("tok-1")
	require.NoError(t, c.Get(ctx, "/accounts", nil))

	// Setting the same token twice is idempotent.
	c.SetToken("tok-1")
	require.NoError(t, c.Get(ctx, "/accounts", nil))

	c.SetToken("tok-2")
	require.NoError(t, c.Get(ctx, "/accounts", nil))

	assert.Equal(t, []string{"", "Bearer tok-1", "Bearer tok-1", "Bearer tok-2"}, seen)
}

func TestSetToken_PersistsToStore(t *testing.T) {
	st := store.NewMemStore()
	c, err := New(Config{APIURL: "https://api.example"}, WithStore(st))
	require.NoError(t, err)

	c.SetToken("persist-me")
	v, ok := st.Get(TokenStoreKey)
	assert.True(t, ok)
	assert.Equal(t, "persist-me", v)
}

func TestNew_InstallsTokenFromConfigOrStore(t *testing.T) {
	st := store.NewMemStore()
	require.NoError(t, st.Set(TokenStoreKey, "saved-token"))

	fromStore, err := New(Config{APIURL: "https://api.example"}, WithStore(st))
	require.NoError(t, err)
	assert.Equal(t, "saved-token", fromStore.Token())

	fromConfig, err := New(Config{APIURL: "https://api.example", Token: "cfg-token"}, WithStore(st))
	require.NoError(t, err)
	assert.Equal(t, "cfg-token", fromConfig.Token())
	// The config token replaces the stored one.
	v, _ := st.Get(TokenStoreKey)
	assert.Equal(t, "cfg-token", v)
}

func TestDo_NormalizesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token expired"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Get(context.Background(), "/accounts", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP_401", apiErr.Code)
	assert.Equal(t, "token expired", apiErr.Message)
	assert.Equal(t, `{"message":"token expired"}`, apiErr.Details)
}

func TestDo_HTTPErrorWithoutMessageField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.Get(context.Background(), "/analytics", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP_502", apiErr.Code)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
	assert.Equal(t, "upstream down", apiErr.Details)
}

func TestDo_NormalizesNetworkErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := newTestClient(t, srv.URL)
	err := c.Get(context.Background(), "/accounts", nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeNetworkError, apiErr.Code)
}

func TestDo_NormalizesDecodeFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	var out map[string]string
	err := c.Get(context.Background(), "/accounts", &out)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeUnknownError, apiErr.Code)
}

type pathRecorder struct {
	paths []string
}

func (r *pathRecorder) ObserveRequest(method, path string, status int, duration time.Duration) {
	r.paths = append(r.paths, path)
}

func TestDo_MetricsUseRouteTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rec := &pathRecorder{}
	c := newTestClient(t, srv.URL, WithMetrics(rec))
	ctx := context.Background()

	// Paths embedding resource IDs record the template, not the raw path.
	require.NoError(t, c.Get(ctx, "/files/abc123", nil, WithRoute("/files/{id}")))
	require.NoError(t, c.Get(ctx, "/files/def456", nil, WithRoute("/files/{id}")))
	require.NoError(t, c.Get(ctx, "/files", nil))

	assert.Equal(t, []string{"/files/{id}", "/files/{id}", "/files"}, rec.paths)
}

func TestDo_VerbsAndBodies(t *testing.T) {
	type echo struct {
		Method string `json:"method"`
		Body   string `json:"body"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		rsp, _ := json.Marshal(echo{Method: r.Method, Body: string(body)})
		_, _ = w.Write(rsp)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	ctx := context.Background()
	payload := map[string]string{"k": "v"}

	var out echo
	require.NoError(t, c.Post(ctx, "/x", payload, &out))
	assert.Equal(t, http.MethodPost, out.Method)
	assert.JSONEq(t, `{"k":"v"}`, out.Body)

	require.NoError(t, c.Put(ctx, "/x", payload, &out))
	assert.Equal(t, http.MethodPut, out.Method)

	require.NoError(t, c.Patch(ctx, "/x", payload, &out))
	assert.Equal(t, http.MethodPatch, out.Method)

	require.NoError(t, c.Delete(ctx, "/x", &out))
	assert.Equal(t, http.MethodDelete, out.Method)
}
