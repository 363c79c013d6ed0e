package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPasscode(t *testing.T) {
	hash, err := HashPasscode("open-sesame")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, VerifyPasscode(hash, "open-sesame"))
}

func TestVerifyPasscode_WrongPasscode(t *testing.T) {
	hash, err := HashPasscode("open-sesame")
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyPasscode(hash, "wrong"), ErrAccessDenied)
}

func TestVerifyPasscode_EmptyInputsDenied(t *testing.T) {
	hash, err := HashPasscode("open-sesame")
	require.NoError(t, err)

	assert.ErrorIs(t, VerifyPasscode(hash, ""), ErrAccessDenied)
	assert.ErrorIs(t, VerifyPasscode("", "open-sesame"), ErrAccessDenied)
}

func TestHashPasscode_EmptyRejected(t *testing.T) {
	_, err := HashPasscode("")
	assert.Error(t, err)
}
