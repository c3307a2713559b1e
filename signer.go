package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"
)

// separator joins token segments. It is not part of the base64url alphabet,
// so splitting at the rightmost occurrence unambiguously isolates the
// trailing segment even when the payload contains separators itself.
const separator = '.'

// keyInfo is the HKDF domain-separation string. Changing it invalidates all
// previously issued tokens.
const keyInfo = "signer.hmac.v1"

// Signer produces and verifies tokens of the form `payload.signature` using
// HMAC-SHA256 over the raw payload. It holds only immutable state and is
// safe for concurrent use.
type Signer struct {
	key []byte
}

// New creates a Signer from the provided secret. The secret is not used as
// the HMAC key directly; a 32-byte signing key is derived from it via
// HKDF-SHA-256.
func New(secret []byte) (*Signer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}

	key, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}

	return &Signer{key: key}, nil
}

// NewFromString creates a Signer from a string secret.
// Convenience wrapper around New() for string-based configuration.
func NewFromString(secret string) (*Signer, error) {
	return New([]byte(secret))
}

// Sign returns `payload.signature`. It is deterministic for a fixed secret
// and payload and never fails.
func (s *Signer) Sign(payload string) string {
	return payload + string(separator) + s.signature(payload)
}

// Unsign verifies a token produced by Sign and returns the original payload.
// It returns ErrMalformedToken when the token lacks a separator or carries
// an undecodable signature, and ErrBadSignature when the signature does not
// match — whether the token was tampered with or signed with another secret.
func (s *Signer) Unsign(token string) (string, error) {
	i := strings.LastIndexByte(token, separator)
	if i < 0 {
		return "", fmt.Errorf("%w: missing separator", ErrMalformedToken)
	}

	payload, encodedSig := token[:i], token[i+1:]

	sig, err := base64.RawURLEncoding.DecodeString(encodedSig)
	if err != nil {
		return "", fmt.Errorf("%w: undecodable signature", ErrMalformedToken)
	}

	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(payload))

	// hmac.Equal is constant-time, so verification cost does not leak the
	// position of the first mismatching byte.
	if !hmac.Equal(sig, h.Sum(nil)) {
		return "", ErrBadSignature
	}

	return payload, nil
}

// signature computes the base64url-encoded (no padding) HMAC-SHA256 of the
// payload.
func (s *Signer) signature(payload string) string {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// deriveKey expands the caller secret into a 32-byte HMAC key using
// HKDF-SHA-256 with a fixed info string for domain separation.
func deriveKey(secret []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, secret, nil, []byte(keyInfo))

	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("signer: derive key: %w", err)
	}

	return key, nil
}
