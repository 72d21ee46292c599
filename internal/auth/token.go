package auth

import (
	"fmt"
	"strconv"
	"time"

	"teamboard/internal/constants"
	"teamboard/internal/db"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the JWT payload. Subject carries the user id.
type Claims struct {
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

// UserID parses the subject claim
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return id, nil
}

// TokenIssuer signs and verifies HMAC tokens
type TokenIssuer struct {
	secret []byte
	method jwtlib.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer for one of HS256, HS384 or HS512
func NewTokenIssuer(secret, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	if algorithm == "" {
		algorithm = constants.DefaultJWTAlgorithm
	}
	method, ok := jwtlib.GetSigningMethod(algorithm).(*jwtlib.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	if ttl <= 0 {
		ttl = constants.DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), method: method, ttl: ttl, now: time.Now}, nil
}

// TTL returns the token lifetime
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token for user
func (t *TokenIssuer) Issue(user *db.User) (string, error) {
	now := t.now()
	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwtlib.NewWithClaims(t.method, claims)
	return token.SignedString(t.secret)
}

// Parse validates signature, algorithm and expiry and extracts the claims
func (t *TokenIssuer) Parse(token string) (*Claims, error) {
	parsed, err := jwtlib.ParseWithClaims(token, &Claims{}, func(*jwtlib.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwtlib.WithValidMethods([]string{t.method.Alg()}),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwtlib.ErrTokenInvalidClaims
	}
	return claims, nil
}
