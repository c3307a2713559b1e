package signer_test

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrymomot/signer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	t.Setenv("SIGNER_SECRET", "env-secret")

	cfg := signer.DefaultConfig()
	require.NoError(t, env.Parse(&cfg))
	assert.Equal(t, "env-secret", cfg.Secret)
	assert.Equal(t, int64(1293840000), cfg.Epoch)

	s, err := signer.NewFromConfig(cfg)
	require.NoError(t, err)

	// Tokens must verify against a signer built directly from the same secret.
	direct, err := signer.NewFromString("env-secret")
	require.NoError(t, err)
	got, err := direct.Unsign(s.Sign("101"))
	require.NoError(t, err)
	assert.Equal(t, "101", got)
}

func TestNewFromConfigMissingSecret(t *testing.T) {
	cfg := signer.DefaultConfig()

	_, err := signer.NewFromConfig(cfg)
	require.ErrorIs(t, err, signer.ErrMissingSecret)

	_, err = signer.NewTimestampSignerFromConfig(cfg)
	require.ErrorIs(t, err, signer.ErrMissingSecret)
}

func TestNewTimestampSignerFromConfig(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Setenv("SIGNER_SECRET", "env-secret")
	t.Setenv("SIGNER_EPOCH", "1767225600") // 2026-01-01 00:00:00 UTC

	cfg := signer.DefaultConfig()
	require.NoError(t, env.Parse(&cfg))

	ts, err := signer.NewTimestampSignerFromConfig(cfg,
		signer.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	token := ts.Sign("payload")
	got, err := ts.Unsign(token, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	// A signer with a different epoch misreads the embedded second count.
	skewed, err := signer.NewTimestampSignerFromString("env-secret",
		signer.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	_, err = skewed.Unsign(token, time.Minute)
	require.ErrorIs(t, err, signer.ErrTokenExpired)
}
