package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDiagnostic_Structured(t *testing.T) {
	diagnostic := ParseDiagnostic([]byte(`{"message":"name taken","detail":null}`))

	require.True(t, diagnostic.Structured)
	assert.Equal(t, map[string]any{"message": "name taken", "detail": nil}, diagnostic.Value)
	assert.Empty(t, diagnostic.Text)
}

func TestParseDiagnostic_TextFallback(t *testing.T) {
	diagnostic := ParseDiagnostic([]byte("internal error"))

	require.False(t, diagnostic.Structured)
	assert.Nil(t, diagnostic.Value)
	assert.Equal(t, "internal error", diagnostic.Text)
}

func TestParseDiagnostic_BareJSONString(t *testing.T) {
	// A quoted string is valid JSON and wins over the raw-text fallback.
	diagnostic := ParseDiagnostic([]byte(`"name taken"`))

	require.True(t, diagnostic.Structured)
	assert.Equal(t, "name taken", diagnostic.Value)
}

func TestDiagnosticString(t *testing.T) {
	structured := ParseDiagnostic([]byte(`{"error":"bad key"}`))
	assert.JSONEq(t, `{"error":"bad key"}`, structured.String())

	text := ParseDiagnostic([]byte("not json"))
	assert.Equal(t, "not json", text.String())
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("registration failed: %w", &TransportError{Err: cause})

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, transportErr.Error(), "connection refused")
}
