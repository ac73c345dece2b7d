package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores los
// envuelven con fmt.Errorf("%w: ...") para añadir el id y el contexto de la
// operación; los llamadores consultan con errors.Is.
var (
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrOrderNotFound   = errors.New("orden no encontrada")
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
)
