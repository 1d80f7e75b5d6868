package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Facturación y cobranza
	ErrYaFacturado         = errors.New("la obligación ya tiene un detalle de pago vigente")
	ErrObligacionDuplicada = errors.New("ya existe la obligación para ese período")
	ErrStockInsuficiente   = errors.New("stock insuficiente")
	ErrCobroExcedido       = errors.New("el abono excede el importe pendiente")
	ErrConflictoVersion    = errors.New("conflicto de versión, reintentar la operación")
)
