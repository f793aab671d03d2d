package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("secret2", hash))
	assert.False(t, CheckPasswordHash("secret1", "not-a-hash"))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("0901234567"))
	assert.True(t, ValidatePhone("09012345678"))
	assert.False(t, ValidatePhone("901234567"))
	assert.False(t, ValidatePhone("090123"))
	assert.False(t, ValidatePhone("09012345abc"))
	assert.False(t, ValidatePhone(""))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "0901234567", SanitizePhone(" 0901234567 "))
	assert.Equal(t, "user@example.com", SanitizeEmail(" User@Example.COM "))
}
