package transport

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
)

type staticToken string

func (s staticToken) AuthHeader() (string, bool) { return string(s), s != "" }

func TestSendStatusAllowList(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		okIn       []int
		wantErr    bool
		wantStatus int
	}{
		{name: "allowed 200", status: 200, okIn: []int{200}, wantStatus: 200},
		{name: "allowed 404", status: 404, okIn: []int{200, 404}, wantStatus: 404},
		{name: "other 2xx still rejected", status: 201, okIn: []int{200}, wantErr: true},
		{name: "server error", status: 500, okIn: []int{200}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"ok":true}`))
			}))
			defer srv.Close()

			h, err := NewHTTP(HTTPConfig{BaseURL: srv.URL + "/v1"})
			require.NoError(t, err)
			defer h.Close()

			resp, err := h.Send(context.Background(), http.MethodGet, "/meta", nil, nil, tt.okIn, "get meta")
			if tt.wantErr {
				require.Error(t, err)
				var statusErr *errors.UnexpectedStatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.status, statusErr.StatusCode)
				assert.Equal(t, "get meta", statusErr.Label)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSendHeadersAndAuth(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h, err := NewHTTP(HTTPConfig{
		BaseURL: srv.URL + "/v1",
		Headers: map[string]string{
			"X-OpenAI-Api-Key": "sk-test",
			"Authorization":    "Bearer static-should-lose",
		},
		Auth: staticToken("Bearer fresh-token"),
	})
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Send(context.Background(), http.MethodGet, "/meta", nil, nil, []int{200}, "get meta")
	require.NoError(t, err)

	assert.Equal(t, "sk-test", got.Get("X-OpenAI-Api-Key"))
	assert.Equal(t, "Bearer fresh-token", got.Get("Authorization"),
		"credential provider must override the static Authorization header")
}

func TestDebugLogRedactsAuthorization(t *testing.T) {
	var buf bytes.Buffer
	log.Init(log.Config{Level: log.DebugLevel, JSONOutput: true, Output: &buf})
	defer log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h, err := NewHTTP(HTTPConfig{
		BaseURL: srv.URL + "/v1",
		Auth:    staticToken("Bearer super-secret-token"),
	})
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Send(context.Background(), http.MethodGet, "/meta", nil, nil, []int{200}, "get meta")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "sending request")
	assert.NotContains(t, out, "super-secret-token", "request logging must never carry the raw credential")
	assert.Contains(t, out, log.Redacted)
}

func TestSendQueryParamsAndBody(t *testing.T) {
	var gotPath, gotQuery, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"name":"Article"}`))
	}))
	defer srv.Close()

	h, err := NewHTTP(HTTPConfig{BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	defer h.Close()

	params := url.Values{"consistency_level": []string{"QUORUM"}}
	resp, err := h.Send(context.Background(), http.MethodPost, "/objects",
		map[string]any{"class": "Article"}, params, []int{200}, "create object")
	require.NoError(t, err)

	assert.Equal(t, "/v1/objects", gotPath)
	assert.Equal(t, "consistency_level=QUORUM", gotQuery)
	assert.Equal(t, "application/json", gotContentType)

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, resp.Into(&out))
	assert.Equal(t, "Article", out.Name)
}

func TestSendAfterClose(t *testing.T) {
	h, err := NewHTTP(HTTPConfig{BaseURL: "http://localhost:8080/v1"})
	require.NoError(t, err)
	h.Close()

	_, err = h.Send(context.Background(), http.MethodGet, "/meta", nil, nil, []int{200}, "get meta")
	var closedErr *errors.ClosedClientError
	require.ErrorAs(t, err, &closedErr)
}

func TestSendConnectionRefused(t *testing.T) {
	// Port 1 on loopback is not listening.
	h, err := NewHTTP(HTTPConfig{BaseURL: "http://127.0.0.1:1/v1"})
	require.NoError(t, err)
	defer h.Close()

	_, err = h.Send(context.Background(), http.MethodGet, "/meta", nil, nil, []int{200}, "get meta")
	var connErr *errors.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "get meta", connErr.Label)
}

func TestNewHTTPValidation(t *testing.T) {
	_, err := NewHTTP(HTTPConfig{})
	var inputErr *errors.InvalidInputError
	require.ErrorAs(t, err, &inputErr)

	_, err = NewHTTP(HTTPConfig{BaseURL: "http://localhost:8080/v1", ProxyURL: "://bad"})
	require.ErrorAs(t, err, &inputErr)
}
