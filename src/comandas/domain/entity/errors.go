package entity

import "errors"

var (
	ErrEmpleadoRequerido = errors.New("id_empleado is required")
	ErrMesaRequerida     = errors.New("id_mesa is required")
	ErrComandaRequerida  = errors.New("id_numero_orden is required")
	ErrPlatoRequerido    = errors.New("id_plato is required")
	ErrCantidadInvalida  = errors.New("cantidad must be greater than 0")
	ErrEstadoInvalido    = errors.New("estado inválido")

	ErrComandaNoEncontrada = errors.New("comanda not found")
	ErrDetalleNoEncontrado = errors.New("detalle not found")

	// La comanda ya está pagada o cancelada y no admite más mutaciones.
	ErrComandaCerrada = errors.New("comanda is already closed")

	// La comanda no cumple la regla de pagabilidad al liquidar.
	ErrComandaNoPagable = errors.New("comanda is not payable")
)
