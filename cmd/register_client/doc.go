// Package main (cmd/register_client) implements the command-line client for
// the keyswarm directory's registration API.
//
// The client supports two commands:
//
//	register - Publish an identity name and its public key to a directory
//	           node on the local host. The name and signing key seed can be
//	           given via --name/--key or the USERNAME/SIGNING_KEY environment
//	           variables; when omitted, a random name and a fresh keypair are
//	           generated.
//
//	keygen   - Generate a signing key seed and its matching public key, and
//	           print both as JSON. The seed can later be passed to register
//	           via SIGNING_KEY to publish the same key again.
//
// A rejected registration prints the server's diagnostic to stdout and exits
// zero: duplicate names and invalid keys are the server's call, and the
// process is not at fault. A transport failure (node unreachable, 10 second
// deadline elapsed) exits non-zero.
package main
