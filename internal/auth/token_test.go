package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/earenas/taskboard/internal/apperr"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 15*time.Minute)

	token, err := svc.Issue("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 15*time.Minute)

	token, err := svc.IssueWithTTL("alice", -time.Minute)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.Unauthenticated))
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), 15*time.Minute)
	verifier := NewTokenService([]byte("secret-b"), 15*time.Minute)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, apperr.Unauthenticated))
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 15*time.Minute)

	for _, tokenStr := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Validate(tokenStr)
		require.Error(t, err, "token %q should not validate", tokenStr)
		require.True(t, apperr.IsKind(err, apperr.Unauthenticated))
	}
}

func TestTokenEmptySubject(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 15*time.Minute)

	token, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	require.Error(t, err)
}
