// Package signer provides compact, URL-safe signed tokens for arbitrary
// string payloads.
//
// A `Signer` binds a payload to an HMAC-SHA256 signature, producing a token
// of the form `payload.signature` that can be embedded in URLs, emails or
// cookies. A `TimestampSigner` additionally embeds the creation time so that
// verification can enforce a maximum token age. Typical use cases are
// account activation links, password reset links and short-lived invite
// tokens.
//
// The payload is authenticated, not encrypted — anyone holding a token can
// read its payload, but nobody without the secret can forge or alter one.
//
// # Architecture
//
// The signing key is derived from the caller-supplied secret with
// HKDF-SHA-256 using a fixed domain-separation string, so the raw secret is
// never used as an HMAC key directly and the same secret can safely be
// shared with other derivation contexts. Signatures are HMAC-SHA256,
// base64url-encoded without padding. The token separator is `.`, which does
// not occur in the base64url alphabet; tokens are always split at the
// rightmost separator, so payloads may themselves contain `.` characters.
//
// TimestampSigner composes a Signer rather than duplicating its logic: the
// timestamp is appended to the payload before signing, and on verification
// the signature is checked before the timestamp is even parsed.
//
// Signer and TimestampSigner hold only immutable state after construction
// and are safe for concurrent use without locking.
//
// # Usage
//
//	import "github.com/dmitrymomot/signer"
//
//	s, err := signer.NewFromString("my secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Let's say the user's ID is 101
//	token := s.Sign("101")
//	url := fmt.Sprintf("https://example.com/activate/?key=%s", token)
//
//	// Later, verify the token and recover the payload
//	id, err := s.Unsign(token)
//
// With expiration:
//
//	ts, err := signer.NewTimestampSignerFromString("my secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token := ts.Sign("101")
//	id, err := ts.Unsign(token, 24*time.Hour)
//
// Arbitrary JSON-serializable values can be signed with the generic helpers:
//
//	type resetRequest struct {
//	    UserID int    `json:"uid"`
//	    Email  string `json:"email"`
//	}
//
//	token, err := signer.SignValue(s, resetRequest{42, "a@b.c"})
//	req, err := signer.UnsignValue[resetRequest](s, token)
//
// # Configuration
//
// The `Config` struct allows construction from environment variables via
// github.com/caarlos0/env:
//
//	cfg := signer.DefaultConfig()
//	_ = env.Parse(&cfg)
//	s, _ := signer.NewFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for all failure scenarios:
// `ErrMalformedToken` for structurally broken tokens, `ErrBadSignature` for
// tampered tokens or a wrong secret, and `ErrTokenExpired` when a
// timestamped token exceeds the caller-supplied maximum age. Use `errors.Is`
// to match them. Nothing is logged or retried internally; a signer remains
// usable after any error.
//
// # Performance Considerations
//
// Every operation is a single in-memory HMAC computation plus base64
// encoding. Signature verification uses constant-time comparison, so
// verification cost does not depend on where a forged signature first
// diverges.
package signer
