package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// AccessClaims serializes to sub, id, role and exp.
type AccessClaims struct {
	UserID *int64 `json:"id,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

func NewCodec(secret []byte, algorithm string, ttl time.Duration) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("tokens: empty secret")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("tokens: unsupported algorithm %q", algorithm)
	}
	if ttl <= 0 {
		return nil, errors.New("tokens: ttl must be positive")
	}
	return &Codec{
		secret: secret,
		method: method,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// WithClock returns a copy of the codec that reads time from now.
func (c *Codec) WithClock(now func() time.Time) *Codec {
	cp := *c
	cp.now = now
	return &cp
}

func (c *Codec) TTL() time.Duration { return c.ttl }

func (c *Codec) Issue(username string, userID int64, role string) (string, time.Time, error) {
	exp := c.now().Add(c.ttl)
	claims := AccessClaims{
		UserID: &userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token, err := c.Encode(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt.Time, nil
}

func (c *Codec) Encode(claims AccessClaims) (string, error) {
	if claims.ExpiresAt == nil {
		return "", errors.New("tokens: exp is required")
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

func (c *Codec) Decode(tokenStr string) (*AccessClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)

	var claims AccessClaims
	tkn, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
