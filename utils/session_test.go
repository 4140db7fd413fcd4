package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "order-portal", claims.Issuer)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ParseSessionToken("not-a-token")
	assert.Error(t, err)

	_, err = ParseSessionToken("")
	assert.Error(t, err)
}

func TestParseSessionTokenRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateSessionToken("admin")
	assert.NoError(t, err)

	_, err = ParseSessionToken(token + "x")
	assert.Error(t, err)
}
