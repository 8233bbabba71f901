package jwt

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newService(at time.Time) *TokenService {
	return New([]byte("test-secret"), 7*24*time.Hour).WithClock(fixedClock(at))
}

func TestVerify_RoundTripWithinWindow(t *testing.T) {
	token, err := newService(issuedAt).Issue(42)
	require.NoError(t, err)

	for _, at := range []time.Time{issuedAt, issuedAt.Add(24 * time.Hour), issuedAt.Add(7*24*time.Hour - time.Second)} {
		uid, err := newService(at).Verify(token)
		require.NoError(t, err, at)
		assert.Equal(t, int64(42), uid)
	}
}

func TestVerify_ExpiredAfterSevenDays(t *testing.T) {
	token, err := newService(issuedAt).Issue(42)
	require.NoError(t, err)

	_, err = newService(issuedAt.Add(7*24*time.Hour + time.Second)).Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Missing(t *testing.T) {
	_, err := newService(issuedAt).Verify("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestVerify_TamperedOrTruncated(t *testing.T) {
	svc := newService(issuedAt)
	token, err := svc.Issue(42)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	other, err := svc.Issue(7)
	require.NoError(t, err)
	otherParts := strings.Split(other, ".")

	flip := []byte(parts[2])
	if flip[0] == 'A' {
		flip[0] = 'B'
	} else {
		flip[0] = 'A'
	}

	cases := map[string]string{
		"truncated":        token[:len(token)-5],
		"no signature":     parts[0] + "." + parts[1] + ".",
		"swapped payload":  parts[0] + "." + otherParts[1] + "." + parts[2],
		"flipped sig byte": parts[0] + "." + parts[1] + "." + string(flip),
		"garbage":          "not-a-token",
	}
	for name, tampered := range cases {
		uid, err := svc.Verify(tampered)
		assert.ErrorIs(t, err, ErrTokenMalformed, name)
		assert.Zero(t, uid, name)
	}
}

func TestVerify_WrongKey(t *testing.T) {
	token, err := New([]byte("other-secret"), time.Hour).WithClock(fixedClock(issuedAt)).Issue(42)
	require.NoError(t, err)

	_, err = newService(issuedAt).Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{
		UserID: 42,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, claims).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newService(issuedAt).Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerify_TamperedExpiredIsMalformed(t *testing.T) {
	token, err := New([]byte("other-secret"), time.Hour).WithClock(fixedClock(issuedAt)).Issue(42)
	require.NoError(t, err)

	_, err = newService(issuedAt.Add(48 * time.Hour)).Verify(token)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
