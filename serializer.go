package signer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// SignValue signs an arbitrary JSON-serializable value. The value is
// marshaled, base64url-encoded as the token payload and signed with s.
func SignValue[T any](s *Signer, value T) (string, error) {
	payload, err := encodeValue(value)
	if err != nil {
		return "", err
	}
	return s.Sign(payload), nil
}

// UnsignValue verifies a token produced by SignValue and decodes its payload
// into T. The signature is checked before any payload decoding; a verified
// payload that fails to decode reports ErrMalformedToken.
func UnsignValue[T any](s *Signer, token string) (T, error) {
	var value T

	payload, err := s.Unsign(token)
	if err != nil {
		return value, err
	}

	return decodeValue[T](payload)
}

// SignValueTimed is SignValue for a TimestampSigner: the token additionally
// carries its creation time.
func SignValueTimed[T any](ts *TimestampSigner, value T) (string, error) {
	payload, err := encodeValue(value)
	if err != nil {
		return "", err
	}
	return ts.Sign(payload), nil
}

// UnsignValueTimed verifies a token produced by SignValueTimed, enforces
// maxAge and decodes the payload into T.
func UnsignValueTimed[T any](ts *TimestampSigner, token string, maxAge time.Duration) (T, error) {
	var value T

	payload, err := ts.Unsign(token, maxAge)
	if err != nil {
		return value, err
	}

	return decodeValue[T](payload)
}

func encodeValue[T any](value T) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("signer: marshal value: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func decodeValue[T any](payload string) (T, error) {
	var value T

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return value, fmt.Errorf("%w: undecodable value payload", ErrMalformedToken)
	}

	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: unmarshal value: %w", ErrMalformedToken, err)
	}

	return value, nil
}
