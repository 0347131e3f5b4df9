package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"around-backend/pkg/token"
)

func TestNewService(t *testing.T) {
	t.Parallel()

	t.Run("with signing key", func(t *testing.T) {
		svc, err := token.NewService("super-secret", time.Hour)
		require.NoError(t, err)
		require.NotNil(t, svc)
	})

	t.Run("empty signing key", func(t *testing.T) {
		svc, err := token.NewService("", time.Hour)
		require.ErrorIs(t, err, token.ErrMissingSigningKey)
		require.Nil(t, svc)
	})
}

func TestIssueVerify(t *testing.T) {
	t.Parallel()

	svc, err := token.NewService("super-secret", 7*24*time.Hour)
	require.NoError(t, err)

	t.Run("roundtrip returns subject", func(t *testing.T) {
		for _, subject := range []string{"user-1", "a0e9f1c2", "5f3e"} {
			tok, err := svc.Issue(subject)
			require.NoError(t, err)
			require.NotEmpty(t, tok)

			got, err := svc.Verify(tok)
			require.NoError(t, err)
			assert.Equal(t, subject, got)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other, err := token.NewService("another-secret", time.Hour)
		require.NoError(t, err)

		tok, err := other.Issue("user-1")
		require.NoError(t, err)

		_, err = svc.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("tampered token", func(t *testing.T) {
		tok, err := svc.Issue("user-1")
		require.NoError(t, err)

		_, err = svc.Verify(tok + "x")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}

func TestVerifyExpired(t *testing.T) {
	t.Parallel()

	// Negative lifetime issues an already-expired token.
	svc, err := token.NewService("super-secret", -time.Minute)
	require.NoError(t, err)

	tok, err := svc.Issue("user-1")
	require.NoError(t, err)

	_, err = svc.Verify(tok)
	require.ErrorIs(t, err, token.ErrExpiredToken)
	require.NotErrorIs(t, err, token.ErrInvalidToken)
}
