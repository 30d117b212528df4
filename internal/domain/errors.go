package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// El motor de analítica no devuelve errores por filas mal formadas: solo los
// casos de uso y adaptadores usan estos valores.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrDataSource   = errors.New("fuente de datos no disponible")
)
