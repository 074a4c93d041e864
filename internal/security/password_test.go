package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{name: "valid", password: "Passw0rd!", want: ""},
		{name: "too short", password: "Pa0!", want: "Password must be between 8 and 50 characters"},
		{name: "too long", password: "Pa0!" + strings.Repeat("a", 47), want: "Password must be between 8 and 50 characters"},
		{name: "exactly fifty", password: "Pa0!" + strings.Repeat("a", 46), want: ""},
		{name: "multibyte over bcrypt limit", password: "Aa1!" + strings.Repeat("é", 40), want: "Password must not exceed 72 bytes"},
		{name: "multibyte at bcrypt limit", password: "Aa1!" + strings.Repeat("é", 34), want: ""},
		{name: "no uppercase", password: "passw0rd!", want: "Password must contain at least one uppercase letter"},
		{name: "no lowercase", password: "PASSW0RD!", want: "Password must contain at least one lowercase letter"},
		{name: "no special", password: "Passw0rdd", want: "Password must contain at least one special character"},
		{name: "no digit", password: "Password!", want: "Password must contain at least one number"},
		{name: "backslash counts as special", password: `Passw0rd\`, want: ""},
		{name: "space is not special", password: "Passw0rd x", want: "Password must contain at least one special character"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			var violation *PolicyViolation
			assert.ErrorAs(t, err, &violation)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Passw0rd!")

	assert.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hash)
	assert.True(t, hasher.Verify(hash, "Passw0rd!"))
	assert.False(t, hasher.Verify(hash, "Passw0rd?"))
	assert.False(t, hasher.Verify("", "Passw0rd!"))
}

func TestPasswordHasher_AcceptsEveryPolicyLength(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "Aa1!" + strings.Repeat("é", 34)
	require.NoError(t, ValidatePassword(password))

	hash, err := hasher.Hash(password)

	assert.NoError(t, err)
	assert.True(t, hasher.Verify(hash, password))
}

func TestNewPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(99).cost)
}
