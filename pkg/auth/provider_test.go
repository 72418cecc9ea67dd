package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
)

// fakeIDP serves an OIDC discovery chain and a token endpoint.
type fakeIDP struct {
	srv       *httptest.Server
	exchanges atomic.Int64
	refreshes atomic.Int64
	expiresIn int64
	noRefresh bool
}

func newFakeIDP(t *testing.T) *fakeIDP {
	t.Helper()
	idp := &fakeIDP{expiresIn: 3600}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"href":     idp.srv.URL + "/realms/test/.well-known/openid-configuration",
			"clientId": "weaviate-client",
		})
	})
	mux.HandleFunc("/realms/test/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token_endpoint": idp.srv.URL + "/realms/test/token",
		})
	})
	mux.HandleFunc("/realms/test/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		grant := r.Form.Get("grant_type")
		switch grant {
		case "client_credentials", "password":
			idp.exchanges.Add(1)
		case "refresh_token":
			idp.refreshes.Add(1)
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		resp := map[string]any{
			"access_token": fmt.Sprintf("token-%d", idp.exchanges.Load()+idp.refreshes.Load()),
			"expires_in":   idp.expiresIn,
		}
		if !idp.noRefresh {
			resp["refresh_token"] = "refresh-abc"
		}
		json.NewEncoder(w).Encode(resp)
	})
	idp.srv = httptest.NewServer(mux)
	t.Cleanup(idp.srv.Close)
	return idp
}

func (f *fakeIDP) wellKnown() string {
	return f.srv.URL + "/v1/.well-known/openid-configuration"
}

func TestNewAPIKey(t *testing.T) {
	p, err := New(context.Background(), Config{Credentials: ApiKey{Key: "secret-key"}})
	require.NoError(t, err)
	defer p.Close()

	val, ok := p.AuthHeader()
	assert.True(t, ok)
	assert.Equal(t, "Bearer secret-key", val)
}

func TestNewAPIKeyEmpty(t *testing.T) {
	_, err := New(context.Background(), Config{Credentials: ApiKey{}})
	var authErr *errors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
}

func TestNewAnonymous(t *testing.T) {
	p, err := New(context.Background(), Config{})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestClientCredentialsExchange(t *testing.T) {
	idp := newFakeIDP(t)

	p, err := New(context.Background(), Config{
		WellKnownURL: idp.wellKnown(),
		Credentials:  ClientCredentials{ClientSecret: "s3cr3t"},
	})
	require.NoError(t, err)
	defer p.Close()

	val, ok := p.AuthHeader()
	assert.True(t, ok)
	assert.Equal(t, "Bearer token-1", val)
	assert.EqualValues(t, 1, idp.exchanges.Load())
}

func TestBackgroundRefresh(t *testing.T) {
	idp := newFakeIDP(t)
	// Lifetimes at or under the slack clamp the refresh delay to one
	// second, so the refresh lands fast enough to observe.
	idp.expiresIn = 5

	p, err := New(context.Background(), Config{
		WellKnownURL: idp.wellKnown(),
		Credentials:  ClientPassword{Username: "u", Password: "p"},
	})
	require.NoError(t, err)
	defer p.Close()

	require.Eventually(t, func() bool {
		return idp.refreshes.Load() >= 1
	}, 5*time.Second, 50*time.Millisecond, "expected a refresh_token grant")

	require.Eventually(t, func() bool {
		val, ok := p.AuthHeader()
		return ok && val != "Bearer token-1"
	}, 2*time.Second, 50*time.Millisecond, "header must serve the refreshed token")
}

func TestRefreshFallsBackToExchange(t *testing.T) {
	idp := newFakeIDP(t)
	idp.expiresIn = 5
	idp.noRefresh = true

	p, err := New(context.Background(), Config{
		WellKnownURL: idp.wellKnown(),
		Credentials:  ClientCredentials{ClientSecret: "s3cr3t"},
	})
	require.NoError(t, err)
	defer p.Close()

	require.Eventually(t, func() bool {
		return idp.exchanges.Load() >= 2
	}, 5*time.Second, 50*time.Millisecond, "expected a second client_credentials grant")
}

func TestDiscoveryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := New(context.Background(), Config{
		WellKnownURL: srv.URL + "/v1/.well-known/openid-configuration",
		Credentials:  ClientCredentials{ClientSecret: "s3cr3t"},
	})
	var authErr *errors.AuthenticationError
	require.ErrorAs(t, err, &authErr, "grant credentials against a non-OIDC server fail at connect")
	assert.Nil(t, p)
}

func TestDiscoveryHTMLBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body>502 Bad Gateway</body></html>"))
	}))
	defer srv.Close()

	p, err := New(context.Background(), Config{
		WellKnownURL: srv.URL + "/v1/.well-known/openid-configuration",
		Credentials:  ClientPassword{Username: "u", Password: "p"},
	})
	var authErr *errors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Nil(t, p)
}

func TestBearerTokenStaticWithoutOIDC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p, err := New(context.Background(), Config{
		WellKnownURL: srv.URL + "/v1/.well-known/openid-configuration",
		Credentials:  BearerToken{AccessToken: "abc"},
	})
	require.NoError(t, err)
	require.NotNil(t, p)
	defer p.Close()

	val, ok := p.AuthHeader()
	assert.True(t, ok)
	assert.Equal(t, "Bearer abc", val)
}

func TestExpiryFromClaims(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(10 * time.Minute).Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	got := expiryFromClaims(signed)
	assert.InDelta(t, 600, got, 5)

	assert.EqualValues(t, 60, expiryFromClaims("not-a-jwt"))

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)
	assert.EqualValues(t, 60, expiryFromClaims(expired))
}
