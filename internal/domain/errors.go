package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los comparan con errors.Is para decidir el código de estado.
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrItemNotFound          = notFound("Item not found")
	ErrLocationNotFound      = notFound("Location not found")
	ErrNoIdentifiers         = notFound("Item has no identifiers")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrIdentifierTypeMissing = errors.New("EAN13 identifier type not configured")
)

// ValidationError es un error de entrada con un mensaje pensado para el cliente.
// Envuelve ErrInvalidInput para que errors.Is(err, ErrInvalidInput) funcione.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError es la ausencia de un recurso concreto (404). Envuelve ErrNotFound.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func notFound(msg string) error {
	return &NotFoundError{Message: msg}
}
