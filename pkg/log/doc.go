/*
Package log provides structured logging for the Weaviate client using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. The log level is taken from the process-wide
WEAVIATE_LOG_LEVEL environment variable, read exactly once at client
construction.

# Levels

WEAVIATE_LOG_LEVEL accepts DEBUG, INFO, WARN and ERROR; unset or invalid
values default to INFO and produce no per-request logs. At DEBUG the transport
logs the request line, headers and bodies of every HTTP request and response.

# Redaction

Header values that can carry credentials (Authorization, Cookie, Set-Cookie,
Api-Key, Token and any Secret-* header) are replaced by the literal [...]
before logging. RedactHeaders copies; the outgoing request is never modified.

# Usage

	log.InitFromEnv()

	transportLog := log.WithComponent("transport")
	transportLog.Debug().
		Str("method", "POST").
		Str("path", "/v1/objects").
		Fields(map[string]interface{}{"headers": log.RedactHeaders(req.Header)}).
		Msg("request")

# Integration Points

This package integrates with:

  - pkg/transport: request/response logging with redacted headers
  - pkg/auth: refresh scheduler lifecycle logs
  - pkg/batch: size controller decisions and retry warnings
  - pkg/client: connect/close lifecycle logs
*/
package log
