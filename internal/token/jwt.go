package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/itemgraph/internal/model"
)

// DefaultTTL is the access token lifetime used when none is configured.
const DefaultTTL = 30 * time.Minute

// Claims represents JWT claims with the granted scopes.
type Claims struct {
	jwt.RegisteredClaims
	Scopes []string `json:"scopes"`
}

var _ model.TokenManager = (*JWT)(nil)

// NumericDate claims keep milliseconds so exp is not rounded down to the
// previous second.
func init() {
	jwt.TimePrecision = time.Millisecond
}

// JWT implements TokenManager backed by symmetric HMAC (HS256).
// Tokens are stateless: a validly signed, unexpired token is always accepted.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewJWT(secretKey string, ttl time.Duration) *JWT {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWT{secretKey: []byte(secretKey), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (j *JWT) TTL() time.Duration {
	return j.ttl
}

// Issue creates a token for subject that expires at now+TTL. Expiry has
// millisecond granularity and never lands after now+TTL.
func (j *JWT) Issue(subject string, scopes []string, now time.Time) (string, error) {
	if subject == "" {
		return "", fmt.Errorf("failed to issue token: empty subject")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		Scopes: scopes,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// Validate verifies the signature and expiry of tokenString at time now and
// returns its claims. Every failure wraps model.ErrTokenInvalid.
func (j *JWT) Validate(tokenString string, now time.Time) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, fmt.Errorf("%w: token expired", model.ErrTokenInvalid)
		}
		return model.TokenClaims{}, fmt.Errorf("%w: %v", model.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, fmt.Errorf("%w: access token is invalid", model.ErrTokenInvalid)
	}
	if claims.Subject == "" {
		return model.TokenClaims{}, fmt.Errorf("%w: missing subject", model.ErrTokenInvalid)
	}

	return model.TokenClaims{
		Subject:   claims.Subject,
		Scopes:    claims.Scopes,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
