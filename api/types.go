package api

import (
	"encoding/json"
	"fmt"
)

// RegistrationRequest is the body posted to the directory node's registration
// endpoint. Name and Key are forwarded verbatim; validating their content is
// the server's responsibility, not the client's.
type RegistrationRequest struct {
	// Name is the identity name being published
	Name string `json:"name"`

	// Key is the base64-encoded public key associated with the name
	Key string `json:"key"`
}

// Diagnostic carries the payload of a rejected registration. It is used only
// for human-facing reporting. The body of a rejection is decoded as JSON
// first; the raw text is kept only when decoding fails, never both.
type Diagnostic struct {
	// Structured reports whether the rejection body decoded as JSON
	Structured bool

	// Value is the decoded JSON value, set only when Structured is true
	Value any

	// Text is the raw rejection body, set only when Structured is false
	Text string
}

// ParseDiagnostic classifies a rejection body, attempting a JSON decode
// before falling back to the raw text.
func ParseDiagnostic(body []byte) Diagnostic {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return Diagnostic{Text: string(body)}
	}
	return Diagnostic{Structured: true, Value: value}
}

// String renders the diagnostic for reporting: structured values are
// re-encoded as JSON, raw text is returned as-is.
func (d Diagnostic) String() string {
	if !d.Structured {
		return d.Text
	}

	encoded, err := json.Marshal(d.Value)
	if err != nil {
		return fmt.Sprintf("%v", d.Value)
	}
	return string(encoded)
}

// RegistrationOutcome is the result of a completed registration exchange.
// It exists only when the server responded; transport failures are surfaced
// as a *TransportError instead.
type RegistrationOutcome struct {
	// OK reports whether the server accepted the registration (2xx status).
	// The body of an accepting response is never inspected.
	OK bool

	// Status is the HTTP status code of the response
	Status int

	// Diagnostic describes the rejection, set only when OK is false
	Diagnostic *Diagnostic
}

// RegistrationProvider abstracts the registration exchange so callers and
// tests can swap the HTTP client for a mock.
type RegistrationProvider interface {
	// Register publishes a name and its public key to the directory.
	// Returns:
	//   - The outcome reported by the server (accepted or rejected)
	//   - A *TransportError if the exchange could not be completed
	Register(name, key string) (*RegistrationOutcome, error)
}

// TransportError reports a failure to complete the request/response exchange:
// connection refused, host resolution failure, or the request deadline
// elapsing. No RegistrationOutcome exists when it is returned.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach registration endpoint: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
