package auth

import (
	"strings"
	"time"

	"github.com/jhoicas/prepperstore-api/internal/domain"
	"github.com/jhoicas/prepperstore-api/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

// Config contraseña compartida y firma de la cookie.
type Config struct {
	Password     string // texto plano o hash bcrypt; vacío = ningún login válido
	CookieSecret string
	MaxAge       time.Duration
}

// AuthUseCase login con contraseña compartida y verificación de la cookie de sesión.
type AuthUseCase struct {
	hash   []byte
	secret string
	maxAge time.Duration
}

// NewAuthUseCase hashea la contraseña configurada una sola vez al arrancar.
// Un valor que ya es hash bcrypt ($2a$, $2b$, $2y$) se usa tal cual.
func NewAuthUseCase(cfg Config) (*AuthUseCase, error) {
	uc := &AuthUseCase{secret: cfg.CookieSecret, maxAge: cfg.MaxAge}
	if uc.maxAge <= 0 {
		uc.maxAge = session.DefaultMaxAge
	}
	switch {
	case cfg.Password == "":
	case strings.HasPrefix(cfg.Password, "$2"):
		if _, err := bcrypt.Cost([]byte(cfg.Password)); err != nil {
			return nil, err
		}
		uc.hash = []byte(cfg.Password)
	default:
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		uc.hash = hash
	}
	return uc, nil
}

// Login compara la contraseña y devuelve el token firmado para la cookie.
func (uc *AuthUseCase) Login(password string) (string, error) {
	if uc.hash == nil || password == "" {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return session.Sign(uc.secret, session.Value, uc.maxAge)
}

// Authenticated indica si el valor de la cookie es una sesión válida.
func (uc *AuthUseCase) Authenticated(token string) bool {
	return session.Valid(uc.secret, token)
}

// MaxAge vida de la cookie.
func (uc *AuthUseCase) MaxAge() time.Duration {
	return uc.maxAge
}
