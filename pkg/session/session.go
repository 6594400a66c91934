// Package session firma y verifica el valor de la cookie de sesión compartida.
// El token es un JWT HS256 cuyo subject es un valor centinela fijo; no identifica usuarios.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName nombre de la cookie de sesión.
	CookieName = "ps_session"
	// Value centinela que debe contener una sesión válida.
	Value = "ok"
	// DefaultMaxAge vida de la cookie (60 días).
	DefaultMaxAge = 60 * 24 * time.Hour
)

// ErrInvalid token ausente, mal firmado, expirado o con subject distinto.
var ErrInvalid = errors.New("session: invalid token")

// Sign firma value con secret y caducidad maxAge.
func Sign(secret, value string, maxAge time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   value,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Unsign valida firma y caducidad y devuelve el subject.
func Unsign(secret, token string) (string, error) {
	if secret == "" || token == "" {
		return "", ErrInvalid
	}
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}

// Valid indica si token es una sesión válida firmada con secret.
func Valid(secret, token string) bool {
	v, err := Unsign(secret, token)
	return err == nil && v == Value
}
