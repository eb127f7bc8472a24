package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func initTestAuth(t *testing.T) {
	t.Helper()
	InitAuth("test-secret-change-me")
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	initTestAuth(t)

	token, err := GenerateToken("65f1a2b3c4d5e6f708192a3b")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	adminID, err := VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "65f1a2b3c4d5e6f708192a3b", adminID)
}

func TestVerifyToken_Expired(t *testing.T) {
	initTestAuth(t)

	token, err := GenerateTokenWithDuration("65f1a2b3c4d5e6f708192a3b", -time.Hour)
	assert.NoError(t, err)

	_, err = VerifyToken(token)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	InitAuth("secret-one")
	token, err := GenerateToken("65f1a2b3c4d5e6f708192a3b")
	assert.NoError(t, err)

	InitAuth("secret-two")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	initTestAuth(t)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.tampered.sig"} {
		_, err := VerifyToken(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerifyToken_TamperedPayload(t *testing.T) {
	initTestAuth(t)

	token, err := GenerateToken("65f1a2b3c4d5e6f708192a3b")
	assert.NoError(t, err)

	// Flip a character inside the payload segment
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = VerifyToken(string(tampered))
	assert.Error(t, err)
}
