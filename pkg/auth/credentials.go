package auth

// Credentials is one of the supported credential shapes. The concrete
// types below are the only implementations.
type Credentials interface {
	isCredentials()
}

// ApiKey authenticates with a static Weaviate API key. No refresh is
// needed or performed.
type ApiKey struct {
	Key string
}

func (ApiKey) isCredentials() {}

// BearerToken authenticates with a token obtained out of band. When a
// RefreshToken is present the provider keeps the session alive; without
// one the access token is used as-is until it expires.
type BearerToken struct {
	AccessToken  string
	RefreshToken string
	// ExpiresIn is the token lifetime in seconds. Zero means unknown; the
	// provider then falls back to the token's exp claim.
	ExpiresIn int64
}

func (BearerToken) isCredentials() {}

// ClientCredentials authenticates with the OIDC client_credentials grant.
// The client ID is taken from the server's OIDC configuration.
type ClientCredentials struct {
	ClientSecret string
	Scopes       []string
}

func (ClientCredentials) isCredentials() {}

// ClientPassword authenticates with the OIDC resource-owner password
// grant.
type ClientPassword struct {
	Username string
	Password string
	Scopes   []string
}

func (ClientPassword) isCredentials() {}
