/*
Package clients provides the HTTP client for the keyswarm directory's
registration API.

# RegistrationClient

RegistrationClient posts a {"name", "key"} JSON body to /api/register on a
directory node at http://localhost:<port> and classifies the result:

  - 2xx status: the registration was accepted; the response body is ignored.
  - Any other status: the registration was rejected; the body is captured as
    a diagnostic, decoded as JSON when possible and kept as raw text
    otherwise. A rejection is reported through the outcome, not as an error.
  - No response (connection refused, timeout): the call fails with a
    *api.TransportError and no outcome is produced.

The whole exchange is bounded by a fixed 10-second timeout covering both
connect and response. No retry is attempted; every call is independent and
shares no state with other calls.

# Example Usage

	outcome, err := clients.Register(10881, "alice", publicKey)
	if err != nil {
	    // transport failure, nothing reached the server
	    return err
	}
	if !outcome.OK {
	    fmt.Println(outcome.Diagnostic)
	}

MockRegistrationProvider is a testify mock implementing the same interface
for callers that need to test their handling of outcomes without a server.
*/
package clients
