/*
Package errors defines the typed error taxonomy of the Weaviate client.

Every error kind the client can surface is a distinct type so callers can
pattern-match with errors.As:

	var status *errors.UnexpectedStatusError
	if errors.As(err, &status) && status.StatusCode == 422 {
		// handle validation rejection
	}

# Error Kinds

  - ConnectionError: transport failure before a response was received
  - UnexpectedStatusError: HTTP status outside the per-call allow-list
  - RPCError: gRPC call failure or error status
  - InvalidInputError: caller-side validation, raised before any I/O
  - ClosedClientError: I/O attempted after Close
  - UnsupportedFeatureError: capability-gate denial with required/actual versions
  - AuthenticationError: credential or OIDC setup failure
  - QueryError: error envelope inside a successful response (GraphQL path)
  - BackupFailedError, BackupCanceledError: terminal backup states

Per-item batch errors are data, not errors: they are carried inside
types.BatchResult and never raised.
*/
package errors
