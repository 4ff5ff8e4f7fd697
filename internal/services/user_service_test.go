package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earenas/taskboard/internal/apperr"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	user, err := svc.CreateUser("alice", "s3cret", false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.IsDisabled)
	assert.Empty(t, user.HashedPassword)

	stored, err := svc.GetUserByUsername("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.HashedPassword)
	assert.NotEqual(t, "s3cret", stored.HashedPassword)
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("alice", "s3cret", false)
	require.NoError(t, err)

	_, err = svc.CreateUser("alice", "other", false)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
	assert.Equal(t, "Username alice is already taken", err.Error())
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.GetUserByUsername("ghost")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestAuthenticateUser(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.CreateUser("alice", "s3cret", true)
	require.NoError(t, err)

	user, err := svc.AuthenticateUser("alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.True(t, user.IsAdmin)
}

func TestAuthenticateUserFailures(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	_, err := svc.CreateUser("alice", "s3cret", false)
	require.NoError(t, err)

	// Wrong password and unknown username must be indistinguishable.
	_, badPassword := svc.AuthenticateUser("alice", "wrong")
	_, badUsername := svc.AuthenticateUser("bob", "s3cret")

	for _, err := range []error{badPassword, badUsername} {
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Unauthenticated))
		assert.Equal(t, "Incorrect username or password", err.Error())
	}
}
