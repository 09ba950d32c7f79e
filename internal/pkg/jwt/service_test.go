package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("secret", time.Hour)

	sid, tok, err := svc.NewSession()
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	c, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, sid, c.SessionID)
	assert.Equal(t, TokenTypeSession, c.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret", time.Hour).GenerateSessionToken("abc")
	require.NoError(t, err)

	_, err = NewHMACService("other", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("secret", time.Hour).ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewHMACService("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }
	tok, err := svc.GenerateSessionToken("abc")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGenerateSessionToken_RequiresSessionAndSecret(t *testing.T) {
	_, err := NewHMACService("secret", time.Hour).GenerateSessionToken("  ")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("", time.Hour).GenerateSessionToken("abc")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
