package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "toxmanager/internal/platform/errors"
)

func TestIssueAndParse(t *testing.T) {
	iss, err := New("s3cret", time.Hour)
	require.NoError(t, err)

	raw, exp, err := iss.Issue("ana.silva@iberia.com.br", "Ana Silva")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	s, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "ana.silva@iberia.com.br", s.User)
	assert.Equal(t, "Ana Silva", s.Name)
	assert.WithinDuration(t, exp, s.ExpiresAt, time.Second)

	user, err := iss.UserOf(raw)
	require.NoError(t, err)
	assert.Equal(t, s.User, user)
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New("  ", time.Hour)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))

	iss, err := New("k", 0)
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour, iss.ttl)
}

func TestParseRejects(t *testing.T) {
	iss, _ := New("s3cret", time.Hour)
	other, _ := New("different", time.Hour)
	good, _, _ := other.Issue("x@y", "")

	expired, _ := New("s3cret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := expired.Issue("x@y", "")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject: "x@y", Issuer: issuer, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}})
	unsigned, _ := none.SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": good,
		"expired":      old,
		"alg none":     unsigned,
		"empty":        "",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := iss.Parse(raw)
			require.Error(t, err)
			assert.True(t, perr.IsCode(err, perr.ErrorCodeUnauthorized))
		})
	}

	_, err := iss.Parse(old)
	assert.Contains(t, err.Error(), "expired")
}
