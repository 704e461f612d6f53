package usecase

import (
	"context"
	"testing"
	"time"

	"enaccion/src/webpay/application/request"
	"enaccion/src/webpay/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// transaccionRepoFake implementa port.TransaccionRepository en memoria.
type transaccionRepoFake struct {
	transacciones   map[string]*entity.Transaccion
	actualizadas    int
	errActualizar   error
	busquedaAcotada bool
}

func newTransaccionRepoFake() *transaccionRepoFake {
	return &transaccionRepoFake{transacciones: make(map[string]*entity.Transaccion)}
}

func (f *transaccionRepoFake) Guardar(_ context.Context, t *entity.Transaccion) error {
	f.transacciones[t.Token] = t
	return nil
}

func (f *transaccionRepoFake) BuscarPorToken(ctx context.Context, token string) (*entity.Transaccion, error) {
	_, f.busquedaAcotada = ctx.Deadline()
	t, ok := f.transacciones[token]
	if !ok {
		return nil, entity.ErrTransaccionNoEncontrada
	}
	return t, nil
}

func (f *transaccionRepoFake) ActualizarResultado(_ context.Context, t *entity.Transaccion) error {
	if f.errActualizar != nil {
		return f.errActualizar
	}
	if _, ok := f.transacciones[t.Token]; !ok {
		return entity.ErrTransaccionNoEncontrada
	}
	f.transacciones[t.Token] = t
	f.actualizadas++
	return nil
}

// cacheFake implementa port.TransaccionCache sin TTL.
type cacheFake struct {
	entradas map[string]*entity.Transaccion
}

func newCacheFake() *cacheFake {
	return &cacheFake{entradas: make(map[string]*entity.Transaccion)}
}

func (f *cacheFake) Guardar(t *entity.Transaccion) { f.entradas[t.Token] = t }

func (f *cacheFake) Obtener(token string) (*entity.Transaccion, bool) {
	t, ok := f.entradas[token]
	return t, ok
}

func (f *cacheFake) Eliminar(token string) { delete(f.entradas, token) }

// comandaPagosFake registra las comandas marcadas como pagadas.
type comandaPagosFake struct {
	pagadas []int
	err     error
}

func (f *comandaPagosFake) MarcarPagada(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	f.pagadas = append(f.pagadas, id)
	return nil
}

// mailerFake registra los correos despachados.
type mailerFake struct {
	comprobantes []string
	links        []entity.LinkPago
	err          error
}

func (f *mailerFake) EnviarComprobante(_ context.Context, email string, _ *entity.Transaccion, _ []entity.DetalleComprobante) error {
	if f.err != nil {
		return f.err
	}
	f.comprobantes = append(f.comprobantes, email)
	return nil
}

func (f *mailerFake) EnviarLinkPago(_ context.Context, email string, link entity.LinkPago) error {
	if f.err != nil {
		return f.err
	}
	f.links = append(f.links, link)
	return nil
}

func TestIniciarTransaccion(t *testing.T) {
	ctx := context.Background()
	momento := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	nuevoUC := func(repo *transaccionRepoFake, cache *cacheFake) *IniciarTransaccionUseCase {
		uc := NewIniciarTransaccionUseCase(repo, cache, "http://localhost:5001")
		uc.ahora = func() time.Time { return momento }
		uc.generarToken = func(time.Time) string { return "token_fijo" }
		return uc
	}

	t.Run("inicia y persiste la transacción", func(t *testing.T) {
		repo := newTransaccionRepoFake()
		cache := newCacheFake()
		uc := nuevoUC(repo, cache)

		resp, err := uc.Execute(ctx, &request.IniciarTransaccionRequest{
			Monto:       decimal.NewFromInt(15990),
			OrdenCompra: "COMANDA-7",
			SessionID:   "sesion-7",
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "token_fijo", resp.Token)
		assert.Equal(t, "http://localhost:5001/webpay-simulacion", resp.URL)

		guardada, ok := repo.transacciones["token_fijo"]
		require.True(t, ok)
		assert.Equal(t, entity.EstadoPendiente, guardada.Estado)
		assert.Equal(t, momento, guardada.FechaCreacion)

		_, ok = cache.Obtener("token_fijo")
		assert.True(t, ok)
	})

	t.Run("rechaza parámetros faltantes", func(t *testing.T) {
		uc := nuevoUC(newTransaccionRepoFake(), newCacheFake())

		_, err := uc.Execute(ctx, &request.IniciarTransaccionRequest{
			OrdenCompra: "COMANDA-7",
			SessionID:   "sesion-7",
		})
		assert.ErrorIs(t, err, entity.ErrMontoRequerido)

		_, err = uc.Execute(ctx, &request.IniciarTransaccionRequest{
			Monto:     decimal.NewFromInt(100),
			SessionID: "sesion-7",
		})
		assert.ErrorIs(t, err, entity.ErrOrdenCompraRequerida)

		_, err = uc.Execute(ctx, &request.IniciarTransaccionRequest{
			Monto:       decimal.NewFromInt(100),
			OrdenCompra: "COMANDA-7",
		})
		assert.ErrorIs(t, err, entity.ErrSessionIDRequerido)
	})
}

func TestGenerarToken(t *testing.T) {
	ahora := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	token := GenerarToken(ahora)
	otro := GenerarToken(ahora)

	assert.Regexp(t, `^token_\d+_[0-9a-f]{9}$`, token)
	assert.NotEqual(t, token, otro)
}

func TestObtenerTransaccion(t *testing.T) {
	ctx := context.Background()

	t.Run("acierto de cache", func(t *testing.T) {
		repo := newTransaccionRepoFake()
		cache := newCacheFake()
		tx := &entity.Transaccion{Token: "tok", Estado: entity.EstadoPendiente}
		cache.Guardar(tx)

		uc := NewObtenerTransaccionUseCase(repo, cache)
		obtenida, err := uc.Execute(ctx, "tok")

		require.NoError(t, err)
		assert.Same(t, tx, obtenida)
	})

	t.Run("fallo de cache repuebla desde la base", func(t *testing.T) {
		repo := newTransaccionRepoFake()
		cache := newCacheFake()
		tx := &entity.Transaccion{Token: "tok", Estado: entity.EstadoPendiente}
		require.NoError(t, repo.Guardar(ctx, tx))

		uc := NewObtenerTransaccionUseCase(repo, cache)
		obtenida, err := uc.Execute(ctx, "tok")

		require.NoError(t, err)
		assert.Same(t, tx, obtenida)

		_, ok := cache.Obtener("tok")
		assert.True(t, ok)
	})

	t.Run("token desconocido", func(t *testing.T) {
		uc := NewObtenerTransaccionUseCase(newTransaccionRepoFake(), newCacheFake())
		_, err := uc.Execute(ctx, "no_existe")
		assert.ErrorIs(t, err, entity.ErrTransaccionNoEncontrada)
	})

	t.Run("token vacío", func(t *testing.T) {
		uc := NewObtenerTransaccionUseCase(newTransaccionRepoFake(), newCacheFake())
		_, err := uc.Execute(ctx, "")
		assert.ErrorIs(t, err, entity.ErrTokenRequerido)
	})
}

func TestProcesarRetorno(t *testing.T) {
	ctx := context.Background()
	momento := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

	nuevoEscenario := func(t *testing.T) (*transaccionRepoFake, *cacheFake, *comandaPagosFake, *ProcesarRetornoUseCase) {
		repo := newTransaccionRepoFake()
		cache := newCacheFake()
		comandas := &comandaPagosFake{}

		tx := &entity.Transaccion{
			Token:       "tok",
			Monto:       decimal.NewFromInt(15990),
			OrdenCompra: "COMANDA-7",
			SessionID:   "sesion-7",
			Estado:      entity.EstadoPendiente,
		}
		require.NoError(t, repo.Guardar(ctx, tx))
		cache.Guardar(tx)

		uc := NewProcesarRetornoUseCase(repo, cache, comandas)
		uc.ahora = func() time.Time { return momento }
		uc.codigoAutorizacion = func() string { return "ABC123" }
		return repo, cache, comandas, uc
	}

	t.Run("pago exitoso autoriza y marca la comanda", func(t *testing.T) {
		repo, cache, comandas, uc := nuevoEscenario(t)

		tx, err := uc.Execute(ctx, "tok", "success")

		require.NoError(t, err)
		assert.Equal(t, entity.EstadoAutorizada, tx.Estado)
		require.NotNil(t, tx.Resultado)
		assert.Equal(t, entity.CodigoExito, tx.Resultado.ResponseCode)
		assert.Equal(t, "ABC123", tx.Resultado.AuthorizationCode)
		assert.Equal(t, momento, tx.Resultado.TransactionDate)
		assert.Equal(t, []int{7}, comandas.pagadas)
		assert.Equal(t, 1, repo.actualizadas)

		// Persistida, deja de estar pendiente y sale del cache.
		_, ok := cache.Obtener("tok")
		assert.False(t, ok)
	})

	t.Run("si no se puede persistir el resultado queda en cache", func(t *testing.T) {
		repo, cache, _, uc := nuevoEscenario(t)
		repo.errActualizar = assert.AnError

		tx, err := uc.Execute(ctx, "tok", "success")

		require.NoError(t, err)
		assert.Equal(t, entity.EstadoAutorizada, tx.Estado)

		cacheada, ok := cache.Obtener("tok")
		require.True(t, ok)
		assert.Equal(t, entity.EstadoAutorizada, cacheada.Estado)
	})

	t.Run("pago fallido no genera autorización ni toca la comanda", func(t *testing.T) {
		_, _, comandas, uc := nuevoEscenario(t)

		tx, err := uc.Execute(ctx, "tok", "failed")

		require.NoError(t, err)
		assert.Equal(t, entity.EstadoFallida, tx.Estado)
		assert.Equal(t, entity.CodigoFallo, tx.Resultado.ResponseCode)
		assert.Empty(t, tx.Resultado.AuthorizationCode)
		assert.Empty(t, comandas.pagadas)
	})

	t.Run("pago cancelado", func(t *testing.T) {
		_, _, comandas, uc := nuevoEscenario(t)

		tx, err := uc.Execute(ctx, "tok", "cancelled")

		require.NoError(t, err)
		assert.Equal(t, entity.EstadoCancelada, tx.Estado)
		assert.Equal(t, entity.CodigoCancelado, tx.Resultado.ResponseCode)
		assert.Empty(t, comandas.pagadas)
	})

	t.Run("el retorno sobrevive a un fallo al marcar la comanda", func(t *testing.T) {
		_, _, comandas, uc := nuevoEscenario(t)
		comandas.err = assert.AnError

		tx, err := uc.Execute(ctx, "tok", "success")

		require.NoError(t, err)
		assert.Equal(t, entity.EstadoAutorizada, tx.Estado)
	})

	t.Run("token desconocido", func(t *testing.T) {
		_, _, _, uc := nuevoEscenario(t)
		_, err := uc.Execute(ctx, "otro", "success")
		assert.ErrorIs(t, err, entity.ErrTransaccionNoEncontrada)
	})

	t.Run("token vacío", func(t *testing.T) {
		_, _, _, uc := nuevoEscenario(t)
		_, err := uc.Execute(ctx, "", "success")
		assert.ErrorIs(t, err, entity.ErrTokenRequerido)
	})
}

func TestGenerarCodigoAutorizacion(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Regexp(t, `^[A-Z0-9]{6}$`, GenerarCodigoAutorizacion())
	}
}

func TestEnviarComprobanteValidaciones(t *testing.T) {
	ctx := context.Background()
	mailer := &mailerFake{}
	repo := newTransaccionRepoFake()
	uc := NewEnviarComprobanteUseCase(nil, NewObtenerTransaccionUseCase(repo, newCacheFake()), mailer, 5*time.Second)

	assert.ErrorIs(t, uc.Execute(ctx, "", "tok"), entity.ErrEmailRequerido)
	assert.ErrorIs(t, uc.Execute(ctx, "cliente@correo.cl", ""), entity.ErrTokenRequerido)
	assert.ErrorIs(t, uc.Execute(ctx, "cliente@correo.cl", "no_existe"), entity.ErrTransaccionNoEncontrada)
	assert.Empty(t, mailer.comprobantes)

	// Las lecturas a la base corren bajo el timeout de consulta.
	assert.True(t, repo.busquedaAcotada)
}

func TestEnviarLinkPago(t *testing.T) {
	ctx := context.Background()

	req := func() *request.EnviarLinkPagoRequest {
		return &request.EnviarLinkPagoRequest{
			Email:       "cliente@correo.cl",
			LinkPago:    "http://localhost:5001/webpay-simulacion?token_ws=tok",
			NumeroOrden: 7,
			Monto:       decimal.NewFromInt(15990),
			Detalles: []entity.DetalleComprobante{
				{NombrePlato: "Lomo a lo pobre", Cantidad: 1, PrecioUnitario: 15990, TotalParcial: 15990},
			},
		}
	}

	t.Run("despacha el correo", func(t *testing.T) {
		mailer := &mailerFake{}
		uc := NewEnviarLinkPagoUseCase(mailer)

		require.NoError(t, uc.Execute(ctx, req()))
		require.Len(t, mailer.links, 1)
		assert.Equal(t, "7", mailer.links[0].NumeroOrden)
		assert.Len(t, mailer.links[0].Detalles, 1)
	})

	t.Run("rechaza parámetros incompletos", func(t *testing.T) {
		mailer := &mailerFake{}
		uc := NewEnviarLinkPagoUseCase(mailer)

		sinEmail := req()
		sinEmail.Email = ""
		assert.ErrorIs(t, uc.Execute(ctx, sinEmail), entity.ErrLinkPagoIncompleto)

		sinLink := req()
		sinLink.LinkPago = ""
		assert.ErrorIs(t, uc.Execute(ctx, sinLink), entity.ErrLinkPagoIncompleto)

		sinOrden := req()
		sinOrden.NumeroOrden = 0
		assert.ErrorIs(t, uc.Execute(ctx, sinOrden), entity.ErrLinkPagoIncompleto)

		sinMonto := req()
		sinMonto.Monto = decimal.Zero
		assert.ErrorIs(t, uc.Execute(ctx, sinMonto), entity.ErrLinkPagoIncompleto)

		assert.Empty(t, mailer.links)
	})

	t.Run("propaga fallas de envío", func(t *testing.T) {
		mailer := &mailerFake{err: entity.ErrEnvioCorreo}
		uc := NewEnviarLinkPagoUseCase(mailer)
		assert.ErrorIs(t, uc.Execute(ctx, req()), entity.ErrEnvioCorreo)
	})
}
