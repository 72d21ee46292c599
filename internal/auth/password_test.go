package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, sha256BcryptPrefix))
	assert.NotContains(t, hash, "s3cret")
	assert.True(t, VerifyPassword(hash, "s3cret"))
	assert.False(t, VerifyPassword(hash, "s3cret "))
	assert.False(t, VerifyPassword(hash, ""))
}

func TestHashIsSalted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// Plain bcrypt ignores everything after byte 72; the pre-hash does not.
func TestLongPasswordsStaySignificant(t *testing.T) {
	base := strings.Repeat("p", 80)
	hash, err := HashPassword(base + "A")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hash, base+"A"))
	assert.False(t, VerifyPassword(hash, base+"B"))
}

func TestVerifyAcceptsPlainBcrypt(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(string(legacy), "old-password"))
	assert.False(t, VerifyPassword(string(legacy), "new-password"))
	assert.False(t, VerifyPassword("plaintext", "plaintext"))
}

func TestVerifyAcceptsPasslibBcryptSHA256(t *testing.T) {
	tests := []struct {
		name  string
		hash  string
		plain string
	}{
		{"v1", "$bcrypt-sha256$2a,5$5Hg1DKFqPE8C2aflZ5vVoe$12BjNE0p7axMg55.Y/mHsYiVuFBDQyu", "password"},
		{"v1 empty", "$bcrypt-sha256$2a,5$E/e/2AOhqM5W/KJTFQzLce$F6dYSxOdAEoJZO2eoHUZWZljW/e0TXO", ""},
		{"v2 empty", "$bcrypt-sha256$v=2,t=2b,r=5$E/e/2AOhqM5W/KJTFQzLce$WFPIZKtDDTriqWwlmRFfHiOTeheAZWe", ""},
		{"v2", "$bcrypt-sha256$v=2,t=2b,r=5$E/e/2AOhqM5W/KJTFQzLce$JftcKV1jfiNul6c6RLdgS/c9EUB4b3m", "password"},
		{"v2 utf8", "$bcrypt-sha256$v=2,t=2b,r=5$E/e/2AOhqM5W/KJTFQzLce$PG6m4qcyg4l4wC9fIrgIiLFabG9CJ72", "contraseña légacy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, VerifyPassword(tt.hash, tt.plain))
			assert.False(t, VerifyPassword(tt.hash, tt.plain+"x"))
		})
	}
}

func TestVerifyRejectsMalformedPasslib(t *testing.T) {
	for _, hash := range []string{
		"$bcrypt-sha256$v=3,t=2b,r=5$E/e/2AOhqM5W/KJTFQzLce$WFPIZKtDDTriqWwlmRFfHiOTeheAZWe",
		"$bcrypt-sha256$v=2,t=2b$E/e/2AOhqM5W/KJTFQzLce$WFPIZKtDDTriqWwlmRFfHiOTeheAZWe",
		"$bcrypt-sha256$2a,5$short$WFPIZKtDDTriqWwlmRFfHiOTeheAZWe",
		"$bcrypt-sha256$2a,5$E/e/2AOhqM5W/KJTFQzLce",
	} {
		assert.False(t, VerifyPassword(hash, ""), hash)
	}
}
