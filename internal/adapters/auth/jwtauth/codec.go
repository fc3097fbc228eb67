package jwtauth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLen: HS256 con menos de 32 bytes de secreto no tiene sentido.
const MinSecretLen = 32

var (
	ErrSecretTooShort = errors.New("jwt secret must be at least 32 characters")
	ErrTokenInvalid   = errors.New("invalid token")
)

// Codec implementa auth.TokenCodec con HS256 y secreto compartido.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func New(secret string) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, ErrSecretTooShort
	}
	return &Codec{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

func (c *Codec) Issue(subject string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("jwt: empty subject")
	}
	if ttl <= 0 {
		return "", errors.New("jwt: ttl must be positive")
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign: %w", err)
	}
	return signed, nil
}

// Parse valida firma, algoritmo (solo HS256) y exp, y devuelve el sub.
func (c *Codec) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid {
		return "", ErrTokenInvalid
	}

	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	return sub, nil
}
