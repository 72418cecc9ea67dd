// Package auth resolves client credentials into Authorization header
// values for both transports.
//
// Four credential shapes are supported:
//
//   - ApiKey: static key, sent as a Bearer header, never refreshed
//   - BearerToken: caller-provided access/refresh token pair
//   - ClientCredentials: OIDC client_credentials grant
//   - ClientPassword: OIDC resource-owner password grant
//
// The OIDC flows start from the server's
// /v1/.well-known/openid-configuration document, follow it to the
// identity provider, and exchange the credentials for tokens. A
// background goroutine refreshes tokens before expiry (30 seconds of
// slack, retrying every second on failure) so that long-lived clients
// never present a stale token. Servers without OIDC configured answer
// the discovery endpoint with 404 or an HTML error page; both are
// tolerated with a warning and the client proceeds anonymously.
//
// # Usage
//
//	provider, err := auth.New(ctx, auth.Config{
//		WellKnownURL: "http://localhost:8080/v1/.well-known/openid-configuration",
//		Credentials:  auth.ClientCredentials{ClientSecret: secret},
//	})
//	if provider != nil {
//		defer provider.Close()
//	}
//
// # Integration Points
//
//   - pkg/transport consults Provider.AuthHeader on every request
//   - pkg/metrics counts refresh outcomes
package auth
