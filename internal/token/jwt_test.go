package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/itemgraph/internal/model"
)

var issuedAt = time.Unix(1_700_000_000, 0)

func TestJWT_Roundtrip(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	tok, err := j.Issue("super.susi@gmail.com", []string{model.ScopeAuthenticated}, issuedAt)
	require.NoError(t, err)

	for _, at := range []time.Time{
		issuedAt,
		issuedAt.Add(time.Minute),
		issuedAt.Add(time.Hour - time.Second),
		issuedAt.Add(time.Hour - time.Nanosecond),
	} {
		claims, err := j.Validate(tok, at)
		require.NoError(t, err, "at %s", at)
		assert.Equal(t, "super.susi@gmail.com", claims.Subject)
		assert.Equal(t, []string{model.ScopeAuthenticated}, claims.Scopes)
		assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	}
}

func TestJWT_Expired(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", 30*time.Minute)
	tok, err := j.Issue("a@b.c", nil, issuedAt)
	require.NoError(t, err)

	for _, at := range []time.Time{issuedAt.Add(30 * time.Minute), issuedAt.Add(24 * time.Hour)} {
		_, err := j.Validate(tok, at)
		require.ErrorIs(t, err, model.ErrTokenInvalid, "at %s", at)
	}
}

func TestJWT_FractionalSecondIssue(t *testing.T) {
	t.Parallel()

	issued := time.Unix(1_700_000_000, 900_000_000)
	j := NewJWT("secret", time.Minute)
	tok, err := j.Issue("active.harry@gmail.com", []string{model.ScopeAuthenticated}, issued)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "at issue", at: issued},
		{name: "half a second before expiry", at: issued.Add(time.Minute - 500*time.Millisecond)},
		{name: "just before expiry", at: issued.Add(time.Minute - 10*time.Millisecond)},
		{name: "at expiry", at: issued.Add(time.Minute), wantErr: true},
		{name: "after expiry", at: issued.Add(time.Minute + time.Millisecond), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := j.Validate(tok, tt.at)
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrTokenInvalid)
				return
			}
			require.NoError(t, err)
			assert.WithinDuration(t, issued.Add(time.Minute), claims.ExpiresAt, 2*time.Millisecond)
			assert.False(t, claims.ExpiresAt.After(issued.Add(time.Minute)))
		})
	}
}

func TestJWT_Tampered(t *testing.T) {
	t.Parallel()

	j := NewJWT("secret", time.Hour)
	tok, err := j.Issue("a@b.c", []string{model.ScopeAuthenticated}, issuedAt)
	require.NoError(t, err)

	for i := range len(tok) {
		b := []byte(tok)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := j.Validate(string(b), issuedAt)
		require.ErrorIs(t, err, model.ErrTokenInvalid, "byte %d", i)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewJWT("secret", time.Hour).Issue("a@b.c", nil, issuedAt)
	require.NoError(t, err)

	_, err = NewJWT("other", time.Hour).Validate(tok, issuedAt)
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestJWT_InvalidTokens(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(issuedAt.Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "two segments", token: "a.b"},
		{name: "missing subject", token: sign(jwt.SigningMethodHS256, secret, Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp}})},
		{name: "missing expiry", token: sign(jwt.SigningMethodHS256, secret, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.c"}})},
		{name: "other hmac", token: sign(jwt.SigningMethodHS512, secret, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.c", ExpiresAt: exp}})},
		{name: "alg none", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.c", ExpiresAt: exp}})},
	}

	j := NewJWT("secret", time.Hour)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := j.Validate(tt.token, issuedAt)
			require.ErrorIs(t, err, model.ErrTokenInvalid)
		})
	}
}

func TestJWT_IssueEmptySubject(t *testing.T) {
	t.Parallel()

	_, err := NewJWT("secret", time.Hour).Issue("", nil, issuedAt)
	require.Error(t, err)
}

func TestNewJWT_DefaultTTL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultTTL, NewJWT("secret", 0).TTL())
	assert.Equal(t, time.Hour, NewJWT("secret", time.Hour).TTL())
}
