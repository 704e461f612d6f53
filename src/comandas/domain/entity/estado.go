package entity

// Estado representa el código de estado compartido por comandas y detalles.
// Los valores numéricos son los históricos del sistema y deben preservarse
// tal cual en la base de datos y en la API (el 4 está reservado y no se usa).
type Estado int

const (
	EstadoPendiente   Estado = 1
	EstadoPreparacion Estado = 2
	EstadoEntregado   Estado = 3
	EstadoPagado      Estado = 5
	EstadoCancelado   Estado = 6
)

// EsValido indica si el código corresponde a un estado conocido.
func (e Estado) EsValido() bool {
	switch e {
	case EstadoPendiente, EstadoPreparacion, EstadoEntregado, EstadoPagado, EstadoCancelado:
		return true
	}
	return false
}

// EsTerminal indica si un detalle en este estado ya no requiere cocina:
// fue entregado o cancelado.
func (e Estado) EsTerminal() bool {
	return e == EstadoEntregado || e == EstadoCancelado
}

// Nombre devuelve el nombre legible del estado.
func (e Estado) Nombre() string {
	switch e {
	case EstadoPendiente:
		return "Pendiente"
	case EstadoPreparacion:
		return "En Preparación"
	case EstadoEntregado:
		return "Entregado"
	case EstadoPagado:
		return "Pagado"
	case EstadoCancelado:
		return "Cancelado"
	}
	return "Desconocido"
}

// ComandaPagable decide si una comanda puede cobrarse: todos sus detalles
// deben estar entregados o cancelados, al menos uno no cancelado, y la
// comanda no puede estar ya pagada ni cancelada. Es la misma regla que
// aplican las consultas de /comandas/pagar, usada dentro de la transacción
// de liquidación.
func ComandaPagable(estadoComanda Estado, estadosDetalle []Estado) bool {
	if estadoComanda == EstadoPagado || estadoComanda == EstadoCancelado {
		return false
	}
	if len(estadosDetalle) == 0 {
		return false
	}

	todosCancelados := true
	for _, e := range estadosDetalle {
		if !e.EsTerminal() {
			return false
		}
		if e != EstadoCancelado {
			todosCancelados = false
		}
	}

	return !todosCancelados
}
