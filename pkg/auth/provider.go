package auth

import (
	"context"
	"sync"
	"time"

	"github.com/cuemby/weaviate-client-go/pkg/errors"
	"github.com/cuemby/weaviate-client-go/pkg/log"
	"github.com/cuemby/weaviate-client-go/pkg/metrics"
)

const (
	// refreshSlack is subtracted from the token lifetime so refresh lands
	// before expiry.
	refreshSlack = 30 * time.Second
	// refreshRetryDelay spaces out attempts after a failed refresh.
	refreshRetryDelay = time.Second
	// exchangeTimeout bounds a single token endpoint call.
	exchangeTimeout = 10 * time.Second
)

// Provider supplies the current Authorization header value. It satisfies
// the transport layer's TokenProvider.
type Provider interface {
	AuthHeader() (string, bool)
	// Close stops background refresh. Idempotent.
	Close()
}

// Config configures credential resolution.
type Config struct {
	// WellKnownURL is the server's OIDC discovery endpoint,
	// {base}/v1/.well-known/openid-configuration.
	WellKnownURL string
	// Credentials selects the auth flow. Nil means anonymous.
	Credentials Credentials
}

// New resolves credentials into a Provider. A nil, nil return means the
// client should proceed anonymously. For OIDC flows the initial exchange
// happens here, so misconfigured credentials fail at connect time rather
// than on the first query.
func New(ctx context.Context, cfg Config) (Provider, error) {
	switch creds := cfg.Credentials.(type) {
	case nil:
		return nil, nil
	case ApiKey:
		if creds.Key == "" {
			return nil, &errors.AuthenticationError{Message: "API key is empty"}
		}
		return &staticProvider{value: "Bearer " + creds.Key}, nil
	default:
		return newOIDCProvider(ctx, cfg.WellKnownURL, creds)
	}
}

func newOIDCProvider(ctx context.Context, wellKnownURL string, creds Credentials) (Provider, error) {
	oidc, err := discover(ctx, wellKnownURL)
	if err != nil {
		return nil, err
	}

	if oidc == nil {
		// No OIDC on the server. A caller-provided token is still usable
		// as a static header; grant-based credentials have no token
		// endpoint to exchange against, so they fail here rather than on
		// the first authenticated request.
		if bt, ok := creds.(BearerToken); ok && bt.AccessToken != "" {
			log.Warn("server has no OIDC configuration, bearer token will not be refreshed")
			return &staticProvider{value: "Bearer " + bt.AccessToken}, nil
		}
		return nil, &errors.AuthenticationError{
			Message: "credentials configured but the server has no OIDC setup",
		}
	}

	var initial *token
	switch c := creds.(type) {
	case BearerToken:
		if c.AccessToken == "" {
			return nil, &errors.AuthenticationError{Message: "bearer token is empty"}
		}
		initial = &token{AccessToken: c.AccessToken, RefreshToken: c.RefreshToken, ExpiresIn: c.ExpiresIn}
		if initial.ExpiresIn == 0 {
			initial.ExpiresIn = expiryFromClaims(c.AccessToken)
		}
	default:
		exCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
		initial, err = oidc.exchange(exCtx, creds)
		cancel()
		if err != nil {
			return nil, err
		}
	}
	if initial.RefreshToken == "" {
		if _, static := creds.(BearerToken); static {
			log.Warn("token response has no refresh token, session ends when the access token expires")
		}
	}

	p := &refreshingProvider{
		oidc:    oidc,
		creds:   creds,
		current: initial,
		stopCh:  make(chan struct{}),
	}
	go p.run()
	return p, nil
}

// staticProvider serves a fixed header value.
type staticProvider struct {
	value string
}

func (s *staticProvider) AuthHeader() (string, bool) { return s.value, true }
func (s *staticProvider) Close()                     {}

// refreshingProvider keeps an OIDC token set fresh in the background.
type refreshingProvider struct {
	oidc  *oidcClient
	creds Credentials

	mu      sync.RWMutex
	current *token

	stopCh   chan struct{}
	stopOnce sync.Once
}

func (p *refreshingProvider) AuthHeader() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil || p.current.AccessToken == "" {
		return "", false
	}
	return "Bearer " + p.current.AccessToken, true
}

func (p *refreshingProvider) Close() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *refreshingProvider) run() {
	for {
		p.mu.RLock()
		lifetime := time.Duration(p.current.ExpiresIn) * time.Second
		p.mu.RUnlock()

		delay := lifetime - refreshSlack
		if delay < time.Second {
			delay = time.Second
		}
		if !p.sleep(delay) {
			return
		}

		for {
			ok, retry := p.refreshOnce()
			if ok {
				break
			}
			if !retry {
				return
			}
			if !p.sleep(refreshRetryDelay) {
				return
			}
		}
	}
}

// sleep waits for d unless the provider is closed first.
func (p *refreshingProvider) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-p.stopCh:
		return false
	case <-timer.C:
		return true
	}
}

// refreshOnce attempts one refresh. It reports success and, on failure,
// whether retrying makes sense.
func (p *refreshingProvider) refreshOnce() (ok, retry bool) {
	ctx, cancel := context.WithTimeout(context.Background(), exchangeTimeout)
	defer cancel()

	p.mu.RLock()
	refreshToken := p.current.RefreshToken
	p.mu.RUnlock()

	var (
		tok *token
		err error
	)
	if refreshToken != "" {
		tok, err = p.oidc.refresh(ctx, refreshToken)
	} else {
		switch p.creds.(type) {
		case ClientCredentials, ClientPassword:
			// No refresh token issued; redo the original grant.
			tok, err = p.oidc.exchange(ctx, p.creds)
		default:
			log.Warn("access token expired and no refresh token is available, stopping refresh")
			return false, false
		}
	}
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failure").Inc()
		log.Errorf("failed to refresh access token", err)
		return false, true
	}

	p.mu.Lock()
	p.current = tok
	p.mu.Unlock()
	metrics.TokenRefreshes.WithLabelValues("success").Inc()
	log.Debug("access token refreshed")
	return true, false
}
