package domain

import "errors"

// Errores de dominio (sin dependencias externas). Se comparan con errors.Is;
// los casos de uso pueden envolverlos con fmt.Errorf("%w: ...") para añadir contexto.
var (
	ErrDuplicateCode     = errors.New("el código del producto ya existe")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
)
