package auth

import (
	"testing"

	"gaspass/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(t *testing.T, pepper string) *bcryptHasher {
	t.Helper()

	// The minimum cost would make every test hash take seconds; bcrypt's own
	// floor is fine for correctness checks.
	return &bcryptHasher{pepper: pepper, cost: 4}
}

func TestNewBcryptHasher_RequiresPepper(t *testing.T) {
	_, err := NewBcryptHasher(&config.Config{})
	assert.Error(t, err)

	_, err = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{Pepper: "s3cret"}})
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}

func TestNewBcryptHasher_EnforcesMinimumCost(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{Pepper: "s3cret", BcryptCost: 4}})
	require.NoError(t, err)
	assert.Equal(t, minBcryptCost, hasher.(*bcryptHasher).cost)

	hasher, err = NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{Pepper: "s3cret", BcryptCost: 13}})
	require.NoError(t, err)
	assert.Equal(t, 13, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(t, "pepper-a")

	hash, err := hasher.Hash("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hash)

	assert.True(t, hasher.Check("Sup3rSecret!", hash))
	assert.False(t, hasher.Check("Sup3rSecret?", hash))
}

func TestBcryptHasher_PepperIsPartOfTheHash(t *testing.T) {
	hasherA := newTestHasher(t, "pepper-a")
	hasherB := newTestHasher(t, "pepper-b")

	hash, err := hasherA.Hash("Sup3rSecret!")
	require.NoError(t, err)

	// The same plaintext under a different pepper must not verify.
	assert.False(t, hasherB.Check("Sup3rSecret!", hash))
}

func TestBcryptHasher_EmptyStoredHashNeverMatches(t *testing.T) {
	hasher := newTestHasher(t, "pepper-a")

	assert.False(t, hasher.Check("", ""))
	assert.False(t, hasher.Check("anything", ""))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := newTestHasher(t, "pepper-a")

	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Sup3rSecret!", ""},
		{"too short", "Ab1!", "at least 8 characters"},
		{"no lowercase", "ALLUPPER1!", "lowercase"},
		{"no uppercase", "alllower1!", "uppercase"},
		{"no digit", "NoDigits!!", "digit"},
		{"no special", "NoSpecial1", "special"},
		{"special outside allowed set", "Password1#", "special"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidateStrength(tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
