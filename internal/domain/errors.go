package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrLastAdmin       = errors.New("no se puede eliminar el único usuario administrador")
	ErrSelfDelete      = errors.New("no puedes eliminar tu propio usuario")
)

// ValidationError acumula los mensajes de validación de una petición.
// El mensaje combinado une cada error con ". ", como espera el cliente.
type ValidationError struct {
	Errores []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Errores, ". ")
}

// NewValidationError construye un ValidationError con los mensajes dados.
func NewValidationError(errores ...string) *ValidationError {
	return &ValidationError{Errores: errores}
}
