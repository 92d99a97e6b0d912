package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-secret"), 0)

	signed, err := svc.Issue(42, "viewer")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	identity, err := svc.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "viewer", identity.Role)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), 0)

	signed, err := svc.Issue(7, "admin")
	require.NoError(t, err)

	// Flip one bit in every position and make sure none of the variants
	// verify. Skip positions where the flip produces the original byte
	// of a separator.
	raw := []byte(signed)
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01
		if string(mutated) == signed {
			continue
		}
		_, err := svc.Verify(string(mutated))
		assert.ErrorIs(t, err, ErrInvalidToken, "flipped byte %d", i)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewService([]byte("secret-a"), 0)
	verifier := NewService([]byte("secret-b"), 0)

	signed, err := issuer.Issue(1, "guest")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedToken(t *testing.T) {
	svc := NewService([]byte("test-secret"), 0)

	for _, input := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestVerifyRequiresSubjectAndRole(t *testing.T) {
	secret := []byte("test-secret")
	svc := NewService(secret, 0)

	missingRole := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "9"})
	signed, err := missingRole.SignedString(secret)
	require.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	missingSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "admin"})
	signed, err = missingSubject.SignedString(secret)
	require.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	svc := NewService([]byte("test-secret"), 0)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1", "role": "admin"})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyHonorsExpiry(t *testing.T) {
	svc := NewService([]byte("test-secret"), time.Minute)
	base := time.Now()
	svc.now = func() time.Time { return base }

	signed, err := svc.Issue(3, "contributor")
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.NoError(t, err)

	svc.now = func() time.Time { return base.Add(2 * time.Minute) }
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuedTokenHasThreeSegments(t *testing.T) {
	svc := NewService([]byte("test-secret"), 0)
	signed, err := svc.Issue(1, "admin")
	require.NoError(t, err)
	assert.Len(t, strings.Split(signed, "."), 3)
}
