package signer

import "time"

// Config holds signer configuration, suitable for parsing from environment
// variables with github.com/caarlos0/env.
type Config struct {
	Secret string `env:"SIGNER_SECRET" envDefault:""`
	Epoch  int64  `env:"SIGNER_EPOCH" envDefault:"1293840000"` // Unix seconds
}

// DefaultConfig returns the default signer configuration.
func DefaultConfig() Config {
	return Config{
		Secret: "",
		Epoch:  defaultEpoch,
	}
}

// NewFromConfig creates a Signer from the provided Config.
func NewFromConfig(cfg Config) (*Signer, error) {
	return NewFromString(cfg.Secret)
}

// NewTimestampSignerFromConfig creates a TimestampSigner from the provided
// Config. Only non-zero values from the config are applied; options given
// explicitly take precedence over config fields.
func NewTimestampSignerFromConfig(cfg Config, opts ...Option) (*TimestampSigner, error) {
	configOpts := make([]Option, 0, 1+len(opts))

	if cfg.Epoch != 0 {
		configOpts = append(configOpts, WithEpoch(time.Unix(cfg.Epoch, 0)))
	}

	configOpts = append(configOpts, opts...)

	return NewTimestampSignerFromString(cfg.Secret, configOpts...)
}
