package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/keyswarm/registration-client/api"
	"github.com/keyswarm/registration-client/clients"
	"github.com/keyswarm/registration-client/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmdClient(t *testing.T, provider api.RegistrationProvider) (*Client, *bytes.Buffer) {
	t.Helper()

	id, err := identity.New("alice")
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &Client{
		Identity: id,
		Provider: provider,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Out:      out,
	}, out
}

func TestClientRegister_Accepted(t *testing.T) {
	provider := new(clients.MockRegistrationProvider)
	c, out := newTestCmdClient(t, provider)

	provider.On("Register", "alice", c.Identity.PublicKey()).
		Return(&api.RegistrationOutcome{OK: true, Status: 200}, nil)

	require.NoError(t, c.Register())
	assert.Empty(t, out.String())
	provider.AssertExpectations(t)
}

func TestClientRegister_RejectionPrintsAndContinues(t *testing.T) {
	provider := new(clients.MockRegistrationProvider)
	c, out := newTestCmdClient(t, provider)

	diagnostic := api.ParseDiagnostic([]byte(`{"error":"name taken"}`))
	provider.On("Register", "alice", c.Identity.PublicKey()).
		Return(&api.RegistrationOutcome{Status: 400, Diagnostic: &diagnostic}, nil)

	require.NoError(t, c.Register(), "rejection must not be fatal")
	assert.JSONEq(t, `{"error":"name taken"}`, out.String())
	provider.AssertExpectations(t)
}

func TestClientRegister_TransportFailureIsFatal(t *testing.T) {
	provider := new(clients.MockRegistrationProvider)
	c, out := newTestCmdClient(t, provider)

	provider.On("Register", "alice", c.Identity.PublicKey()).
		Return(nil, &api.TransportError{Err: io.ErrUnexpectedEOF})

	err := c.Register()
	require.Error(t, err)

	var transportErr *api.TransportError
	assert.ErrorAs(t, err, &transportErr)
	assert.Empty(t, out.String())
}

func TestKeygen(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, Keygen(out))

	var keypair map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &keypair))

	restored, err := identity.FromSeed("alice", keypair["seed"])
	require.NoError(t, err)
	assert.Equal(t, keypair["public_key"], restored.PublicKey())
}
