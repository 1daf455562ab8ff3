/*
Package api defines the shared types for the keyswarm registration exchange.

The exchange has exactly one request shape and one response-handling policy:

  - RegistrationRequest: the {"name", "key"} JSON body posted to a directory
    node's /api/register endpoint.
  - RegistrationOutcome: the classified result of a completed exchange, either
    accepted (2xx, body ignored) or rejected (non-2xx, body captured as a
    Diagnostic).
  - Diagnostic: the rejection payload, decoded as JSON when possible and kept
    as raw text otherwise. Decode order is fixed: JSON first, text fallback.
  - TransportError: returned instead of an outcome when the exchange itself
    failed (connection refused, resolution failure, timeout).

The api.RegistrationProvider interface is implemented over HTTP by the clients
package and by a testify mock for tests.
*/
package api
