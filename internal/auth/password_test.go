package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "pw123", hashed, "hash must not be the plaintext")

	assert.True(t, VerifyPassword("pw123", hashed))
	assert.False(t, VerifyPassword("pw124", hashed))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of one password differ while
	// both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("same-password", first))
	assert.True(t, VerifyPassword("same-password", second))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name   string
		hashed string
	}{
		{name: "empty", hashed: ""},
		{name: "not a bcrypt hash", hashed: "plainly-not-a-hash"},
		{name: "truncated", hashed: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, VerifyPassword("whatever", tt.hashed))
		})
	}
}
