package async

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func runAll(t *testing.T, s Scheduler, n int) int64 {
	t.Helper()
	var (
		wg   sync.WaitGroup
		done int64
	)
	wg.Add(n)
	for ii := 0; ii < n; ii++ {
		s.Schedule(func() {
			defer wg.Done()
			atomic.AddInt64(&done, 1)
		})
	}
	wg.Wait()
	return atomic.LoadInt64(&done)
}

func TestFixedWorkerPool(t *testing.T) {
	assert.Equal(t, int64(50), runAll(t, &FixedWorkerPool{Workers: 3}, 50))
}

func TestDynamicWorkerPool(t *testing.T) {
	assert.Equal(t, int64(50), runAll(t, &DynamicWorkerPool{Workers: 3}, 50))
}

func TestGo(t *testing.T) {
	assert.Equal(t, int64(10), runAll(t, Go, 10))
}

func TestDynamicWorkerPoolBoundsConcurrency(t *testing.T) {
	var (
		pool    = &DynamicWorkerPool{Workers: 2}
		running int64
		peak    int64
		wg      sync.WaitGroup
	)
	wg.Add(8)
	for ii := 0; ii < 8; ii++ {
		pool.Schedule(func() {
			defer wg.Done()
			now := atomic.AddInt64(&running, 1)
			for {
				old := atomic.LoadInt64(&peak)
				if now <= old || atomic.CompareAndSwapInt64(&peak, old, now) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&running, -1)
		})
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestDynamicWorkerPoolIgnoresNil(t *testing.T) {
	pool := &DynamicWorkerPool{Workers: 1}
	pool.Schedule(nil)
	assert.Equal(t, int64(1), runAll(t, pool, 1))
}

func TestFixedWorkerPoolBoundsConcurrency(t *testing.T) {
	var (
		pool    = &FixedWorkerPool{Workers: 2}
		running int64
		peak    int64
		wg      sync.WaitGroup
	)
	defer pool.Stop()
	wg.Add(8)
	for ii := 0; ii < 8; ii++ {
		pool.Schedule(func() {
			defer wg.Done()
			now := atomic.AddInt64(&running, 1)
			for {
				old := atomic.LoadInt64(&peak)
				if now <= old || atomic.CompareAndSwapInt64(&peak, old, now) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt64(&running, -1)
		})
	}
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(2))
}

func TestFixedWorkerPoolStop(t *testing.T) {
	pool := &FixedWorkerPool{Workers: 1}
	assert.Equal(t, int64(3), runAll(t, pool, 3))

	pool.Stop()
	pool.Stop()

	var ran atomic.Bool
	returned := make(chan struct{})
	go func() {
		pool.Schedule(func() { ran.Store(true) })
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Schedule blocked on a stopped pool")
	}
	time.Sleep(10 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestStopUnstartedPool(t *testing.T) {
	pool := &FixedWorkerPool{Workers: 2}
	Stop(pool)
	Stop(Go)
	Stop(&DynamicWorkerPool{})
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("")
	assert.NoError(t, err)
	assert.Equal(t, Dynamic, got)

	_, err = ParseKind("threads")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	fixed := New(Fixed, 2)
	defer Stop(fixed)

	assert.IsType(t, &FixedWorkerPool{}, fixed)
	assert.IsType(t, &DynamicWorkerPool{}, New(Dynamic, 2))
	assert.IsType(t, SchedulerFunc(nil), New(Unbound, 2))
	for _, k := range Kinds {
		s := New(k, 2)
		assert.Equal(t, int64(20), runAll(t, s, 20), "kind %s", k)
		Stop(s)
	}
}
