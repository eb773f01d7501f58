package cache

import (
	"sync"
	"time"
)

// Clock permite inyectar el tiempo en los tests y evitar esperas reales
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func SystemClock() Clock { return systemClock{} }

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL es una caché en memoria con ventana de expiración fija. Una entrada
// vencida no se elimina: se reemplaza en el siguiente Put sobre la misma clave.
type TTL[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[string]entry[V]
}

func New[V any](ttl time.Duration, clock Clock) *TTL[V] {
	if clock == nil {
		clock = systemClock{}
	}
	return &TTL[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get devuelve el valor si existe y todavía está dentro de la ventana
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.clock.Now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTL[V]) Put(key string, value V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, storedAt: c.clock.Now()}
	c.mu.Unlock()
}

// Expire descarta una entrada sin esperar a que venza la ventana
func (c *TTL[V]) Expire(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
