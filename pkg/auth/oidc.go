package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
)

// serverOIDCConfig is the server's answer to
// /v1/.well-known/openid-configuration: where the identity provider
// lives and which client ID the deployment was configured with.
type serverOIDCConfig struct {
	Href     string   `json:"href"`
	ClientID string   `json:"clientId"`
	Scopes   []string `json:"scopes"`
}

// providerConfig is the subset of the identity provider's discovery
// document the client needs.
type providerConfig struct {
	TokenEndpoint string `json:"token_endpoint"`
}

// token is one issued token set.
type token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// oidcClient performs discovery and token exchanges against the identity
// provider referenced by the server.
type oidcClient struct {
	http          *http.Client
	clientID      string
	tokenEndpoint string
	scopes        []string
}

// discover fetches the server's OIDC configuration and the provider
// document it points at. A nil, nil return means the server has no OIDC
// configured and the client should proceed anonymously.
func discover(ctx context.Context, wellKnownURL string) (*oidcClient, error) {
	hc := cleanhttp.DefaultPooledClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wellKnownURL, nil)
	if err != nil {
		return nil, &errors.AuthenticationError{Message: "invalid OIDC discovery URL", Err: err}
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, &errors.ConnectionError{Label: "OIDC discovery", Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.ConnectionError{Label: "OIDC discovery", Err: err}
	}

	if resp.StatusCode == http.StatusNotFound {
		log.Debug("server has no OIDC configuration, proceeding without token refresh")
		return nil, nil
	}
	var srvCfg serverOIDCConfig
	if resp.StatusCode != http.StatusOK || json.Unmarshal(raw, &srvCfg) != nil {
		// Some deployments front the endpoint with a proxy that answers
		// with an HTML error page.
		log.Warn("OIDC discovery returned an unusable response, proceeding without token refresh")
		return nil, nil
	}
	if srvCfg.Href == "" {
		log.Warn("OIDC discovery response has no provider href, proceeding without token refresh")
		return nil, nil
	}

	req, err = http.NewRequestWithContext(ctx, http.MethodGet, srvCfg.Href, nil)
	if err != nil {
		return nil, &errors.AuthenticationError{Message: "invalid OIDC provider href", Err: err}
	}
	resp2, err := hc.Do(req)
	if err != nil {
		return nil, &errors.ConnectionError{Label: "OIDC provider discovery", Err: err}
	}
	defer resp2.Body.Close()
	var provCfg providerConfig
	if err := json.NewDecoder(resp2.Body).Decode(&provCfg); err != nil {
		return nil, &errors.AuthenticationError{Message: "failed to decode OIDC provider configuration", Err: err}
	}
	if provCfg.TokenEndpoint == "" {
		return nil, &errors.AuthenticationError{Message: "OIDC provider configuration has no token endpoint"}
	}

	return &oidcClient{
		http:          hc,
		clientID:      srvCfg.ClientID,
		tokenEndpoint: provCfg.TokenEndpoint,
		scopes:        srvCfg.Scopes,
	}, nil
}

// exchange performs the initial grant for the given credentials.
func (o *oidcClient) exchange(ctx context.Context, creds Credentials) (*token, error) {
	form := url.Values{"client_id": []string{o.clientID}}
	switch c := creds.(type) {
	case ClientCredentials:
		form.Set("grant_type", "client_credentials")
		form.Set("client_secret", c.ClientSecret)
		if scope := joinScopes(c.Scopes, o.scopes); scope != "" {
			form.Set("scope", scope)
		}
	case ClientPassword:
		form.Set("grant_type", "password")
		form.Set("username", c.Username)
		form.Set("password", c.Password)
		if scope := joinScopes(c.Scopes, o.scopes); scope != "" {
			form.Set("scope", scope)
		}
	default:
		return nil, &errors.AuthenticationError{Message: fmt.Sprintf("credentials type %T cannot be exchanged", creds)}
	}
	return o.post(ctx, form)
}

// refresh redeems a refresh token for a new token set.
func (o *oidcClient) refresh(ctx context.Context, refreshToken string) (*token, error) {
	form := url.Values{
		"client_id":     []string{o.clientID},
		"grant_type":    []string{"refresh_token"},
		"refresh_token": []string{refreshToken},
	}
	return o.post(ctx, form)
}

func (o *oidcClient) post(ctx context.Context, form url.Values) (*token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.tokenEndpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &errors.AuthenticationError{Message: "failed to build token request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.http.Do(req)
	if err != nil {
		return nil, &errors.ConnectionError{Label: "OIDC token exchange", Err: err}
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.ConnectionError{Label: "OIDC token exchange", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &errors.AuthenticationError{
			Message: fmt.Sprintf("token endpoint returned status %d: %s", resp.StatusCode, snippet(raw)),
		}
	}
	var tok token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, &errors.AuthenticationError{Message: "failed to decode token response", Err: err}
	}
	if tok.AccessToken == "" {
		return nil, &errors.AuthenticationError{Message: "token response has no access token"}
	}
	if tok.ExpiresIn == 0 {
		tok.ExpiresIn = expiryFromClaims(tok.AccessToken)
	}
	return &tok, nil
}

// expiryFromClaims derives a lifetime from the token's exp claim when the
// endpoint omitted expires_in. The token is not verified; only the claim
// is read. Returns 60 when no exp claim is usable.
func expiryFromClaims(accessToken string) int64 {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return 60
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 60
	}
	remaining := exp.Unix() - time.Now().Unix()
	if remaining <= 0 {
		return 60
	}
	return remaining
}

func joinScopes(requested, serverDefault []string) string {
	scopes := requested
	if len(scopes) == 0 {
		scopes = serverDefault
	}
	return strings.Join(scopes, " ")
}

func snippet(body []byte) string {
	if len(body) > 200 {
		body = body[:200]
	}
	return string(body)
}
