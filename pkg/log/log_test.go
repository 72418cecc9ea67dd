package log

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRedactHeaders(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		redacted bool
	}{
		{name: "authorization", header: "Authorization", redacted: true},
		{name: "authorization upper case", header: "AUTHORIZATION", redacted: true},
		{name: "cookie", header: "Cookie", redacted: true},
		{name: "set-cookie", header: "Set-Cookie", redacted: true},
		{name: "api key", header: "Api-Key", redacted: true},
		{name: "token", header: "Token", redacted: true},
		{name: "secret prefix", header: "Secret-Access-Key", redacted: true},
		{name: "content type passes through", header: "Content-Type", redacted: false},
		{name: "request id passes through", header: "X-Request-Id", redacted: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := http.Header{}
			in.Set(tt.header, "raw-value")
			out := RedactHeaders(in)

			key := http.CanonicalHeaderKey(tt.header)
			if tt.redacted {
				assert.Equal(t, Redacted, out[key])
			} else {
				assert.Equal(t, "raw-value", out[key])
			}
		})
	}
}

func TestRedactHeadersJoinsValuesAndKeepsInput(t *testing.T) {
	in := http.Header{}
	in.Add("Accept", "application/json")
	in.Add("Accept", "text/plain")
	in.Set("Authorization", "Bearer secret")

	out := RedactHeaders(in)
	assert.Equal(t, "application/json, text/plain", out["Accept"])
	assert.Equal(t, Redacted, out["Authorization"])
	assert.Equal(t, "Bearer secret", in.Get("Authorization"), "the outgoing request keeps the real value")
}

func TestRedactedHeadersNeverRenderRawValues(t *testing.T) {
	in := http.Header{}
	in.Set("Authorization", "Bearer super-secret")
	in.Set("Secret-Access-Key", "AKIA-abc")
	in.Set("X-Request-Id", "req-1")

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	logger.Debug().
		Interface("headers", RedactHeaders(in)).
		Msg("sending request")

	out := buf.String()
	assert.NotContains(t, out, "super-secret")
	assert.NotContains(t, out, "AKIA-abc")
	assert.Contains(t, out, "req-1")
	assert.Contains(t, out, Redacted)
}
