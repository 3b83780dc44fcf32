package utils

import (
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSignerRoundTrip(t *testing.T) {
	signer := NewTokenSigner("top-secret")

	token, err := signer.Sign("admin@example.comhunter22")
	require.NoError(t, err)

	subject, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.comhunter22", subject)
}

func TestTokenSignerRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenSigner("other").Sign("subject")
	require.NoError(t, err)

	_, err = NewTokenSigner("top-secret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenSignerRejectsMalformed(t *testing.T) {
	signer := NewTokenSigner("top-secret")
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := signer.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestTokenSignerRejectsUnsignedToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.StandardClaims{Subject: "subject"})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenSigner("top-secret").Verify(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
