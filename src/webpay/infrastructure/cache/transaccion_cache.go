package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"enaccion/src/webpay/domain/entity"
)

type entrada struct {
	transaccion *entity.Transaccion
	expira      time.Time
}

// TransaccionCache cache en memoria de transacciones WebPay con vida
// acotada. Una entrada vencida se comporta como inexistente aunque la
// limpieza periódica todavía no la haya retirado. Guarda y entrega
// copias: el mutex protege el mapa y ningún caller comparte la struct
// con otro.
type TransaccionCache struct {
	entradas map[string]entrada
	ttl      time.Duration
	mu       sync.RWMutex

	ahora func() time.Time
}

// NewTransaccionCache crea un nuevo cache con el TTL indicado
func NewTransaccionCache(ttl time.Duration) *TransaccionCache {
	return &TransaccionCache{
		entradas: make(map[string]entrada),
		ttl:      ttl,
		ahora:    time.Now,
	}
}

// Guardar registra la transacción bajo su token, renovando su vida.
func (c *TransaccionCache) Guardar(transaccion *entity.Transaccion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entradas[transaccion.Token] = entrada{
		transaccion: transaccion.Clonar(),
		expira:      c.ahora().Add(c.ttl),
	}
}

// Obtener devuelve la transacción si existe y no venció.
func (c *TransaccionCache) Obtener(token string) (*entity.Transaccion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entradas[token]
	if !ok || c.ahora().After(e.expira) {
		return nil, false
	}
	return e.transaccion.Clonar(), true
}

// Eliminar retira la transacción del cache.
func (c *TransaccionCache) Eliminar(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entradas, token)
}

// Limpiar retira todas las entradas vencidas y devuelve cuántas sacó.
func (c *TransaccionCache) Limpiar() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ahora := c.ahora()
	retiradas := 0
	for token, e := range c.entradas {
		if ahora.After(e.expira) {
			delete(c.entradas, token)
			retiradas++
		}
	}
	return retiradas
}

// IniciarLimpieza corre la limpieza periódica hasta que el contexto se
// cancele. Pensada para lanzarse como goroutine desde main.
func (c *TransaccionCache) IniciarLimpieza(ctx context.Context, intervalo time.Duration) {
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Limpiar(); n > 0 {
				log.Printf("Cache WebPay: %d transacciones vencidas retiradas", n)
			}
		}
	}
}
