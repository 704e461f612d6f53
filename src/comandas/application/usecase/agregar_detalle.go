package usecase

import (
	"context"

	"enaccion/src/comandas/application/request"
	"enaccion/src/comandas/domain/entity"
	"enaccion/src/comandas/domain/port"
)

// AgregarDetalleUseCase caso de uso para agregar un plato a una comanda
type AgregarDetalleUseCase struct {
	comandaRepo port.ComandaRepository
	detalleRepo port.DetalleRepository
}

// NewAgregarDetalleUseCase crea una nueva instancia del caso de uso
func NewAgregarDetalleUseCase(comandaRepo port.ComandaRepository, detalleRepo port.DetalleRepository) *AgregarDetalleUseCase {
	return &AgregarDetalleUseCase{
		comandaRepo: comandaRepo,
		detalleRepo: detalleRepo,
	}
}

// Execute verifica que la comanda exista y siga abierta antes de insertar
// el detalle. No se pueden agregar platos a una comanda pagada o cancelada.
func (uc *AgregarDetalleUseCase) Execute(ctx context.Context, req *request.CrearDetalleRequest) (*entity.Detalle, error) {
	detalle, err := entity.NuevoDetalle(req.IDNumeroOrden, req.IDPlato, req.Cantidad, entity.Estado(req.IDEstado))
	if err != nil {
		return nil, err
	}

	comanda, err := uc.comandaRepo.BuscarPorID(ctx, req.IDNumeroOrden)
	if err != nil {
		return nil, err
	}
	if !comanda.AdmiteDetalles() {
		return nil, entity.ErrComandaCerrada
	}

	return uc.detalleRepo.Crear(ctx, detalle)
}
