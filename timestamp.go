package signer

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// NoMaxAge disables the expiry check in TimestampSigner.Unsign.
const NoMaxAge time.Duration = 0

// defaultEpoch is 2011-01-01 00:00:00 UTC. Timestamps are stored as seconds
// since this epoch to keep their encoded form short.
const defaultEpoch int64 = 1293840000

// TimestampSigner wraps a Signer and embeds the creation time into every
// token, producing `payload.timestamp.signature`. Verification checks the
// signature first and only then interprets the timestamp, so an attacker
// cannot probe timestamp parsing with unauthenticated data.
type TimestampSigner struct {
	signer *Signer
	clock  func() time.Time
	epoch  int64
}

// NewTimestampSigner creates a TimestampSigner from the provided secret.
// The zero-option default reads the system clock and uses the package epoch.
func NewTimestampSigner(secret []byte, opts ...Option) (*TimestampSigner, error) {
	s, err := New(secret)
	if err != nil {
		return nil, err
	}

	options := applyOptions(Options{
		Clock: time.Now,
		Epoch: time.Unix(defaultEpoch, 0),
	}, opts)

	return &TimestampSigner{
		signer: s,
		clock:  options.Clock,
		epoch:  options.Epoch.Unix(),
	}, nil
}

// NewTimestampSignerFromString creates a TimestampSigner from a string secret.
func NewTimestampSignerFromString(secret string, opts ...Option) (*TimestampSigner, error) {
	return NewTimestampSigner([]byte(secret), opts...)
}

// Sign returns `payload.timestamp.signature`, where the signature covers the
// payload and timestamp jointly.
func (t *TimestampSigner) Sign(payload string) string {
	encoded := base64.RawURLEncoding.EncodeToString(encodeTimestamp(t.timestamp()))
	return t.signer.Sign(payload + string(separator) + encoded)
}

// Unsign verifies a token produced by Sign and returns the original payload.
// Signature failures from the inner Signer propagate unchanged. A verified
// token whose timestamp segment is missing or undecodable fails with
// ErrMalformedToken. When maxAge is greater than NoMaxAge, tokens older than
// maxAge fail with ErrTokenExpired; a token aged exactly maxAge is still
// valid. Timestamps in the future are accepted — only staleness is checked,
// so moderate clock skew between hosts does not invalidate fresh tokens.
func (t *TimestampSigner) Unsign(token string, maxAge time.Duration) (string, error) {
	signed, err := t.signer.Unsign(token)
	if err != nil {
		return "", err
	}

	i := strings.LastIndexByte(signed, separator)
	if i < 0 {
		return "", fmt.Errorf("%w: missing timestamp segment", ErrMalformedToken)
	}

	payload, encoded := signed[:i], signed[i+1:]

	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: undecodable timestamp", ErrMalformedToken)
	}

	ts, err := decodeTimestamp(raw)
	if err != nil {
		return "", err
	}

	if maxAge > NoMaxAge {
		age := time.Duration(int64(t.timestamp())-int64(ts)) * time.Second
		if age > maxAge {
			return "", ErrTokenExpired
		}
	}

	return payload, nil
}

// timestamp returns the current second count relative to the signer epoch.
func (t *TimestampSigner) timestamp() uint64 {
	elapsed := t.clock().Unix() - t.epoch
	if elapsed < 0 {
		elapsed = 0
	}
	return uint64(elapsed)
}

// encodeTimestamp renders n as its minimal big-endian byte representation,
// at least one byte long.
func encodeTimestamp(n uint64) []byte {
	buf := make([]byte, 0, 8)
	for shift := 56; shift >= 0; shift -= 8 {
		b := byte(n >> shift)
		if len(buf) == 0 && b == 0 && shift != 0 {
			continue
		}
		buf = append(buf, b)
	}
	return buf
}

// decodeTimestamp parses a minimal big-endian byte representation. Segments
// longer than eight bytes cannot come from encodeTimestamp and are rejected.
func decodeTimestamp(raw []byte) (uint64, error) {
	if len(raw) == 0 || len(raw) > 8 {
		return 0, fmt.Errorf("%w: invalid timestamp length %d", ErrMalformedToken, len(raw))
	}

	var n uint64
	for _, b := range raw {
		n = n<<8 | uint64(b)
	}
	return n, nil
}
