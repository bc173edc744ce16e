package concurrency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()

	var (
		wg       sync.WaitGroup
		inside   int32
		maxSeen  int32
		counter  int
		numIters = 50
	)

	for range numIters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_ = km.WithLock("cart-1", func() error {
				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxSeen)
					if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
						break
					}
				}
				counter++
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, numIters, counter)
	assert.Equal(t, int32(1), maxSeen, "같은 키는 동시에 하나의 고루틴만 진입해야 합니다")
	assert.Zero(t, km.Len(), "모든 락 해제 후 엔트리가 정리되어야 합니다")
}

func TestKeyedMutex_DifferentKeysAreIndependent(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()
	km.Lock("a")
	defer km.Unlock("a")

	done := make(chan struct{})
	go func() {
		km.Lock("b")
		km.Unlock("b")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("다른 키의 락 획득이 차단되었습니다")
	}

	assert.Equal(t, 1, km.Len())
}

func TestKeyedMutex_WithLockReturnsError(t *testing.T) {
	t.Parallel()

	km := NewKeyedMutex()
	want := errors.New("boom")

	assert.ErrorIs(t, km.WithLock("k", func() error { return want }), want)
	assert.Zero(t, km.Len())
}

func TestKeyedMutex_UnlockWithoutLockPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewKeyedMutex().Unlock("missing")
	})
}
