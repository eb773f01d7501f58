package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func TestPutGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c := New[string](5*time.Minute, clock)

	_, ok := c.Get("clave")
	require.False(t, ok)

	c.Put("clave", "valor")
	got, ok := c.Get("clave")
	require.True(t, ok)
	require.Equal(t, "valor", got)
}

func TestExpiraTrasLaVentana(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c := New[int](5*time.Minute, clock)

	c.Put("clave", 42)

	clock.Advance(5*time.Minute - time.Second)
	_, ok := c.Get("clave")
	require.True(t, ok)

	clock.Advance(time.Second)
	_, ok = c.Get("clave")
	require.False(t, ok)
}

func TestPutRenuevaLaVentana(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c := New[int](5*time.Minute, clock)

	c.Put("clave", 1)
	clock.Advance(4 * time.Minute)
	c.Put("clave", 2)
	clock.Advance(4 * time.Minute)

	got, ok := c.Get("clave")
	require.True(t, ok)
	require.Equal(t, 2, got)
}

func TestExpire(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}
	c := New[int](5*time.Minute, clock)

	c.Put("clave", 42)
	c.Expire("clave")

	_, ok := c.Get("clave")
	require.False(t, ok)
}
