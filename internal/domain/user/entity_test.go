//go:build unit

package user_test

import (
	"testing"

	"tripstack/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid email", input: "alice@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  alice@example.com  "},
		{name: "empty email rejected", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing at sign rejected", input: "aliceexample.com", errIs: user.ErrInvalidEmail},
		{name: "missing tld rejected", input: "alice@example", errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice@example.com", email.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("long-enough-secret")
	require.NoError(t, err)
	assert.Equal(t, "long-enough-secret", p.Value())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("operator")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUser(t *testing.T) {
	email, err := user.NewEmail("alice@example.com")
	require.NoError(t, err)

	u := user.NewUser(email, "alice", "hashed", user.RoleUser)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, "alice", u.Username())
	assert.Equal(t, user.RoleUser, u.Role())

	t.Run("rename", func(t *testing.T) {
		require.NoError(t, u.Rename("alice2"))
		assert.Equal(t, "alice2", u.Username())

		assert.ErrorIs(t, u.Rename(""), user.ErrEmptyUsername)
		assert.Equal(t, "alice2", u.Username())
	})
}
