package usecase

import (
	"context"
	"testing"

	"enaccion/src/comandas/application/request"
	"enaccion/src/comandas/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// comandaRepoFake implementa port.ComandaRepository en memoria.
type comandaRepoFake struct {
	comandas   map[int]*entity.Comanda
	liquidadas []int
}

func newComandaRepoFake() *comandaRepoFake {
	return &comandaRepoFake{comandas: make(map[int]*entity.Comanda)}
}

func (f *comandaRepoFake) Crear(_ context.Context, comanda *entity.Comanda) (*entity.Comanda, error) {
	comanda.IDNumeroOrden = len(f.comandas) + 1
	f.comandas[comanda.IDNumeroOrden] = comanda
	return comanda, nil
}

func (f *comandaRepoFake) BuscarPorID(_ context.Context, id int) (*entity.Comanda, error) {
	comanda, ok := f.comandas[id]
	if !ok {
		return nil, entity.ErrComandaNoEncontrada
	}
	return comanda, nil
}

func (f *comandaRepoFake) ActualizarEstado(_ context.Context, id int, estado entity.Estado) error {
	comanda, ok := f.comandas[id]
	if !ok {
		return entity.ErrComandaNoEncontrada
	}
	comanda.IDEstado = estado
	return nil
}

func (f *comandaRepoFake) Eliminar(_ context.Context, id int) error {
	if _, ok := f.comandas[id]; !ok {
		return entity.ErrComandaNoEncontrada
	}
	delete(f.comandas, id)
	return nil
}

func (f *comandaRepoFake) MarcarPagada(ctx context.Context, id int) error {
	return f.ActualizarEstado(ctx, id, entity.EstadoPagado)
}

func (f *comandaRepoFake) Liquidar(_ context.Context, id int) error {
	comanda, ok := f.comandas[id]
	if !ok {
		return entity.ErrComandaNoEncontrada
	}
	if comanda.IDEstado == entity.EstadoPagado || comanda.IDEstado == entity.EstadoCancelado {
		return entity.ErrComandaNoPagable
	}
	comanda.IDEstado = entity.EstadoPagado
	f.liquidadas = append(f.liquidadas, id)
	return nil
}

// detalleRepoFake implementa port.DetalleRepository en memoria.
type detalleRepoFake struct {
	detalles []*entity.Detalle
}

func (f *detalleRepoFake) Crear(_ context.Context, detalle *entity.Detalle) (*entity.Detalle, error) {
	detalle.IDDetalle = len(f.detalles) + 1
	f.detalles = append(f.detalles, detalle)
	return detalle, nil
}

func (f *detalleRepoFake) AvanzarEstado(_ context.Context, _ int, _ entity.Estado) (*entity.Comanda, error) {
	return nil, entity.ErrDetalleNoEncontrado
}

func (f *detalleRepoFake) ActualizarEstado(_ context.Context, _ int, _ entity.Estado) (*entity.Detalle, error) {
	return nil, entity.ErrDetalleNoEncontrado
}

func (f *detalleRepoFake) CancelarPendientes(_ context.Context, _ int) ([]entity.Detalle, error) {
	return nil, nil
}

func (f *detalleRepoFake) ListarPorComanda(_ context.Context, id int) ([]entity.Detalle, error) {
	var resultado []entity.Detalle
	for _, d := range f.detalles {
		if d.IDNumeroOrden == id {
			resultado = append(resultado, *d)
		}
	}
	return resultado, nil
}

func TestAgregarDetalle(t *testing.T) {
	ctx := context.Background()

	nuevaComandaAbierta := func(t *testing.T, repo *comandaRepoFake) *entity.Comanda {
		comanda, err := entity.NuevaComanda(1, 1, entity.EstadoPendiente, "")
		require.NoError(t, err)
		comanda, err = repo.Crear(ctx, comanda)
		require.NoError(t, err)
		return comanda
	}

	t.Run("agrega detalle a comanda abierta", func(t *testing.T) {
		comandaRepo := newComandaRepoFake()
		detalleRepo := &detalleRepoFake{}
		comanda := nuevaComandaAbierta(t, comandaRepo)

		uc := NewAgregarDetalleUseCase(comandaRepo, detalleRepo)
		detalle, err := uc.Execute(ctx, &request.CrearDetalleRequest{
			IDNumeroOrden: comanda.IDNumeroOrden,
			IDPlato:       5,
			Cantidad:      2,
			IDEstado:      int(entity.EstadoPendiente),
		})

		require.NoError(t, err)
		assert.Equal(t, comanda.IDNumeroOrden, detalle.IDNumeroOrden)
		assert.Len(t, detalleRepo.detalles, 1)
	})

	t.Run("rechaza comanda inexistente", func(t *testing.T) {
		uc := NewAgregarDetalleUseCase(newComandaRepoFake(), &detalleRepoFake{})
		_, err := uc.Execute(ctx, &request.CrearDetalleRequest{
			IDNumeroOrden: 99,
			IDPlato:       5,
			Cantidad:      1,
			IDEstado:      int(entity.EstadoPendiente),
		})
		assert.ErrorIs(t, err, entity.ErrComandaNoEncontrada)
	})

	t.Run("rechaza comanda pagada", func(t *testing.T) {
		comandaRepo := newComandaRepoFake()
		detalleRepo := &detalleRepoFake{}
		comanda := nuevaComandaAbierta(t, comandaRepo)
		require.NoError(t, comandaRepo.MarcarPagada(ctx, comanda.IDNumeroOrden))

		uc := NewAgregarDetalleUseCase(comandaRepo, detalleRepo)
		_, err := uc.Execute(ctx, &request.CrearDetalleRequest{
			IDNumeroOrden: comanda.IDNumeroOrden,
			IDPlato:       5,
			Cantidad:      1,
			IDEstado:      int(entity.EstadoPendiente),
		})

		assert.ErrorIs(t, err, entity.ErrComandaCerrada)
		assert.Empty(t, detalleRepo.detalles)
	})

	t.Run("rechaza body inválido antes de tocar el repositorio", func(t *testing.T) {
		uc := NewAgregarDetalleUseCase(newComandaRepoFake(), &detalleRepoFake{})
		_, err := uc.Execute(ctx, &request.CrearDetalleRequest{
			IDNumeroOrden: 1,
			IDPlato:       5,
			Cantidad:      0,
			IDEstado:      int(entity.EstadoPendiente),
		})
		assert.ErrorIs(t, err, entity.ErrCantidadInvalida)
	})
}

func TestLiquidarComanda(t *testing.T) {
	ctx := context.Background()

	t.Run("liquida comanda pagable", func(t *testing.T) {
		comandaRepo := newComandaRepoFake()
		comanda, err := entity.NuevaComanda(1, 1, entity.EstadoPendiente, "")
		require.NoError(t, err)
		comanda, err = comandaRepo.Crear(ctx, comanda)
		require.NoError(t, err)

		uc := NewLiquidarComandaUseCase(comandaRepo)
		require.NoError(t, uc.Execute(ctx, comanda.IDNumeroOrden))

		assert.Equal(t, entity.EstadoPagado, comanda.IDEstado)
		assert.Equal(t, []int{comanda.IDNumeroOrden}, comandaRepo.liquidadas)
	})

	t.Run("rechaza doble cobro", func(t *testing.T) {
		comandaRepo := newComandaRepoFake()
		comanda, err := entity.NuevaComanda(1, 1, entity.EstadoPendiente, "")
		require.NoError(t, err)
		comanda, err = comandaRepo.Crear(ctx, comanda)
		require.NoError(t, err)

		uc := NewLiquidarComandaUseCase(comandaRepo)
		require.NoError(t, uc.Execute(ctx, comanda.IDNumeroOrden))
		assert.ErrorIs(t, uc.Execute(ctx, comanda.IDNumeroOrden), entity.ErrComandaNoPagable)
	})

	t.Run("comanda inexistente", func(t *testing.T) {
		uc := NewLiquidarComandaUseCase(newComandaRepoFake())
		assert.ErrorIs(t, uc.Execute(ctx, 42), entity.ErrComandaNoEncontrada)
	})
}
