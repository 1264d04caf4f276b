package utils

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

var (
	ErrEmptySecret = errors.New("csrf secret must not be empty")
	ErrInvalidCSRF = errors.New("the CSRF token is missing or invalid")
)

const DefaultCSRFTTL = time.Hour

// CSRF issues and checks form tokens. A token is an HS256 JWT whose subject is
// the nonce stored in the visitor's cookie, so it is only valid alongside
// that cookie.
type CSRF struct {
	key []byte
	TTL time.Duration
}

func NewCSRF(secret string) (*CSRF, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := make([]byte, 32)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("cafewifi form csrf"))
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, fmt.Errorf("failed to derive csrf key: %w", err)
	}

	return &CSRF{key: key, TTL: DefaultCSRFTTL}, nil
}

func (p *CSRF) GenerateToken(nonce string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   nonce,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.TTL)),
	})
	return token.SignedString(p.key)
}

func (p *CSRF) ValidateToken(tokenString, nonce string) error {
	if tokenString == "" || nonce == "" {
		return ErrInvalidCSRF
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.key, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCSRF, err)
	}
	if !token.Valid || claims.Subject != nonce {
		return ErrInvalidCSRF
	}
	return nil
}
