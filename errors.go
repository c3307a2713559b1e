package signer

import "errors"

var (
	ErrMissingSecret  = errors.New("signer: missing secret")
	ErrMalformedToken = errors.New("signer: malformed token")
	ErrBadSignature   = errors.New("signer: bad signature")
	ErrTokenExpired   = errors.New("signer: token expired")
)
