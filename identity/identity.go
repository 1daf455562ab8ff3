// Package identity generates and encodes the name/keypair identities
// published to the keyswarm directory.
package identity

import (
	"crypto"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
)

// signatureContext domain-separates identity proofs from any other use of
// the signing key.
const signatureContext = "keyswarm-identity"

// Identity is a name bound to an ed25519 keypair. The public half is what
// gets published to the directory; the private half never leaves the
// process unless exported through Seed.
type Identity struct {
	Name string

	signingKey ed25519.PrivateKey
}

// New generates a fresh keypair for the given name.
func New(name string) (*Identity, error) {
	_, signingKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("could not generate signing key: %w", err)
	}
	return &Identity{Name: name, signingKey: signingKey}, nil
}

// FromSeed reconstructs an identity from a base64-encoded 32-byte ed25519
// seed, the form produced by Seed.
func FromSeed(name, encodedSeed string) (*Identity, error) {
	seed, err := base64.StdEncoding.DecodeString(encodedSeed)
	if err != nil {
		return nil, fmt.Errorf("could not decode signing key seed: %w", err)
	}
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("signing key seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &Identity{Name: name, signingKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// PublicKey returns the base64-encoded public key, the form published to
// the directory.
func (id *Identity) PublicKey() string {
	return base64.StdEncoding.EncodeToString(id.signingKey.Public().(ed25519.PublicKey))
}

// Seed returns the base64-encoded private seed, for persisting the identity
// across runs (for example in the SIGNING_KEY environment variable).
func (id *Identity) Seed() string {
	return base64.StdEncoding.EncodeToString(id.signingKey.Seed())
}

// Prove signs sha512(name || public key) with the identity's signing key.
// The directory can use the signature as a non-interactive proof that
// whoever published the identity possesses the private key for the
// published public key.
func (id *Identity) Prove() (string, error) {
	publicKey := id.signingKey.Public().(ed25519.PublicKey)
	signature, err := id.signingKey.Sign(rand.Reader, digest(id.Name, publicKey), &ed25519.Options{
		Hash:    crypto.SHA512,
		Context: signatureContext,
	})
	if err != nil {
		return "", fmt.Errorf("could not sign identity digest: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

// Verify checks a proof produced by Prove against a published name and
// base64-encoded public key.
func Verify(name, encodedKey, encodedProof string) error {
	publicKey, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return fmt.Errorf("could not decode public key: %w", err)
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(publicKey))
	}

	signature, err := base64.StdEncoding.DecodeString(encodedProof)
	if err != nil {
		return fmt.Errorf("could not decode identity proof: %w", err)
	}

	err = ed25519.VerifyWithOptions(ed25519.PublicKey(publicKey), digest(name, publicKey), signature, &ed25519.Options{
		Hash:    crypto.SHA512,
		Context: signatureContext,
	})
	if err != nil {
		return fmt.Errorf("identity proof does not verify: %w", err)
	}
	return nil
}

func digest(name string, publicKey ed25519.PublicKey) []byte {
	hasher := sha512.New()
	hasher.Write([]byte(name))
	hasher.Write(publicKey)
	return hasher.Sum(nil)
}
