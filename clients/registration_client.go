package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/keyswarm/registration-client/api"
	"github.com/stretchr/testify/mock"
)

// RegistrationTimeout bounds the whole exchange, connect included. There is
// no per-phase deadline and no retry.
const RegistrationTimeout = 10 * time.Second

// RegistrationClient implements api.RegistrationProvider for HTTP-based
// communication with a directory node on the local host.
type RegistrationClient struct {
	// ServerAddr is the base URL of the directory node
	ServerAddr string

	httpClient *http.Client
}

// NewRegistrationClient creates a client for the directory node listening on
// the given local port.
//
// Parameters:
//   - port: TCP port of the node on localhost (1-65535)
//   - timeout: request timeout duration (optional, default 10 seconds)
//
// Returns:
//   - Configured RegistrationClient instance
//   - Error if the port is out of range
func NewRegistrationClient(port int, timeout ...time.Duration) (*RegistrationClient, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid directory port %d", port)
	}

	clientTimeout := RegistrationTimeout
	if len(timeout) > 0 {
		clientTimeout = timeout[0]
	}

	return &RegistrationClient{
		ServerAddr: fmt.Sprintf("http://localhost:%d", port),
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}, nil
}

// Register publishes a name and its public key to the directory node. The
// exchange is single-shot and blocks until the server responds or the
// timeout elapses.
//
// A 2xx status yields an accepting outcome; the response body is never read.
// Any other status yields a rejecting outcome whose diagnostic is decoded
// from the body (JSON when possible, raw text otherwise); a rejection is not
// an error. A *api.TransportError is returned when no response arrives.
func (c *RegistrationClient) Register(name, key string) (*api.RegistrationOutcome, error) {
	body, err := json.Marshal(api.RegistrationRequest{Name: name, Key: key})
	if err != nil {
		return nil, fmt.Errorf("could not encode registration request: %w", err)
	}

	registrationReq, err := http.NewRequest(http.MethodPost, c.ServerAddr+"/api/register", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not build registration request: %w", err)
	}
	registrationReq.Header.Set("Content-Type", "application/json")

	registrationResp, err := c.httpClient.Do(registrationReq)
	if err != nil {
		return nil, &api.TransportError{Err: err}
	}
	defer registrationResp.Body.Close()

	if registrationResp.StatusCode >= 200 && registrationResp.StatusCode < 300 {
		return &api.RegistrationOutcome{OK: true, Status: registrationResp.StatusCode}, nil
	}

	bodyBytes, err := io.ReadAll(registrationResp.Body)
	if err != nil {
		return nil, &api.TransportError{Err: fmt.Errorf("reading rejection body: %w", err)}
	}

	diagnostic := api.ParseDiagnostic(bodyBytes)
	return &api.RegistrationOutcome{Status: registrationResp.StatusCode, Diagnostic: &diagnostic}, nil
}

// Register is a single-shot convenience for callers that do not hold a
// client: it builds a default client for the port and runs one exchange.
func Register(port int, user, key string) (*api.RegistrationOutcome, error) {
	client, err := NewRegistrationClient(port)
	if err != nil {
		return nil, err
	}
	return client.Register(user, key)
}

// MockRegistrationProvider implements a mock api.RegistrationProvider for
// testing. The behavior is determined by how the mock is configured in tests.
type MockRegistrationProvider struct {
	mock.Mock
}

// Register implements the api.RegistrationProvider interface for testing.
func (m *MockRegistrationProvider) Register(name, key string) (*api.RegistrationOutcome, error) {
	args := m.Called(name, key)
	outcome, _ := args.Get(0).(*api.RegistrationOutcome)
	return outcome, args.Error(1)
}
