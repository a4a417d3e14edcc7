package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrDuplicateOrder = errors.New("ya existe una orden con ese número")
	ErrReferenced     = errors.New("el recurso está referenciado por otros registros")
	ErrConflict       = errors.New("conflicto con el estado actual")
)
