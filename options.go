package signer

import "time"

// Options holds the tunable parts of a TimestampSigner.
type Options struct {
	// Clock supplies the current time for signing and age checks.
	// Injectable so expiry behavior can be tested deterministically.
	Clock func() time.Time

	// Epoch is the zero point for embedded timestamps. All parties
	// verifying a token must use the epoch it was signed with.
	Epoch time.Time
}

type Option func(*Options)

func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

func WithEpoch(epoch time.Time) Option {
	return func(o *Options) {
		o.Epoch = epoch
	}
}

// applyOptions copies the base options and applies the provided option
// functions. The base options are not modified.
func applyOptions(base Options, opts []Option) Options {
	result := Options{
		Clock: base.Clock,
		Epoch: base.Epoch,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&result)
		}
	}

	if result.Clock == nil {
		result.Clock = time.Now
	}

	return result
}
