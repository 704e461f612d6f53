package cache

import (
	"sync"
	"testing"
	"time"

	"enaccion/src/webpay/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nuevaTransaccion(token string) *entity.Transaccion {
	return &entity.Transaccion{Token: token, Estado: entity.EstadoPendiente}
}

func TestTransaccionCache(t *testing.T) {
	t.Run("guardar y obtener", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		tx := nuevaTransaccion("token_1")

		c.Guardar(tx)

		obtenida, ok := c.Obtener("token_1")
		require.True(t, ok)
		assert.Equal(t, tx, obtenida)
		assert.NotSame(t, tx, obtenida)
	})

	t.Run("cada caller recibe su propia copia", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		tx := nuevaTransaccion("token_1")
		c.Guardar(tx)

		// Mutar lo guardado o lo obtenido no toca al resto.
		tx.Estado = entity.EstadoFallida

		primera, ok := c.Obtener("token_1")
		require.True(t, ok)
		primera.Finalizar(&entity.Resultado{Status: entity.EstadoAutorizada, AuthorizationCode: "ABC123"})

		segunda, ok := c.Obtener("token_1")
		require.True(t, ok)
		assert.Equal(t, entity.EstadoPendiente, segunda.Estado)
		assert.Nil(t, segunda.Resultado)
	})

	t.Run("lecturas y escrituras concurrentes sobre el mismo token", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		c.Guardar(nuevaTransaccion("token_1"))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if tx, ok := c.Obtener("token_1"); ok {
						tx.Finalizar(&entity.Resultado{Status: entity.EstadoAutorizada})
						c.Guardar(tx)
					}
				}
			}()
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if tx, ok := c.Obtener("token_1"); ok && tx.Resultado != nil {
						_ = tx.Resultado.AuthorizationCode
					}
				}
			}()
		}
		wg.Wait()
	})

	t.Run("token desconocido", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		_, ok := c.Obtener("no_existe")
		assert.False(t, ok)
	})

	t.Run("eliminar", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		c.Guardar(nuevaTransaccion("token_1"))
		c.Eliminar("token_1")

		_, ok := c.Obtener("token_1")
		assert.False(t, ok)
	})

	t.Run("entrada vencida se comporta como inexistente", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		momento := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		c.ahora = func() time.Time { return momento }

		c.Guardar(nuevaTransaccion("token_1"))

		// Justo antes del TTL sigue viva.
		momento = momento.Add(59 * time.Second)
		_, ok := c.Obtener("token_1")
		assert.True(t, ok)

		// Pasado el TTL desaparece aunque nadie haya limpiado.
		momento = momento.Add(2 * time.Second)
		_, ok = c.Obtener("token_1")
		assert.False(t, ok)
	})

	t.Run("limpiar retira solo las vencidas", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		momento := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		c.ahora = func() time.Time { return momento }

		c.Guardar(nuevaTransaccion("vieja"))

		momento = momento.Add(30 * time.Second)
		c.Guardar(nuevaTransaccion("nueva"))

		momento = momento.Add(45 * time.Second)
		assert.Equal(t, 1, c.Limpiar())

		_, ok := c.Obtener("vieja")
		assert.False(t, ok)
		_, ok = c.Obtener("nueva")
		assert.True(t, ok)
	})

	t.Run("guardar renueva la vida de la entrada", func(t *testing.T) {
		c := NewTransaccionCache(time.Minute)
		momento := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
		c.ahora = func() time.Time { return momento }

		tx := nuevaTransaccion("token_1")
		c.Guardar(tx)

		momento = momento.Add(50 * time.Second)
		c.Guardar(tx)

		momento = momento.Add(50 * time.Second)
		_, ok := c.Obtener("token_1")
		assert.True(t, ok)
	})
}
