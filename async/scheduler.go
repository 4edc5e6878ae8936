// Package async runs blocking work, such as image fetches, off the layout
// goroutine. Pools are adapted from Egon's https://github.com/egonelbre/expgio.
package async

import (
	"fmt"
	"runtime"
	"sync"
)

// Scheduler schedules work according to some strategy.
type Scheduler interface {
	// Schedule a piece of work. This method is allowed to block.
	Schedule(func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(func())

// Schedule calls f(work).
func (f SchedulerFunc) Schedule(work func()) {
	f(work)
}

// Go runs every piece of work on its own goroutine, without bound.
var Go = SchedulerFunc(func(work func()) {
	if work != nil {
		go work()
	}
})

// Kind names a scheduling strategy.
type Kind string

const (
	Fixed   Kind = "fixed"
	Dynamic Kind = "dynamic"
	Unbound Kind = "go"
)

// Kinds lists every strategy.
var Kinds = []Kind{Fixed, Dynamic, Unbound}

// ParseKind parses a strategy name. The empty string selects Dynamic.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return Dynamic, nil
	}
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown scheduler %q", s)
}

// New returns a scheduler of the given kind bounded to workers. Fixed pools
// hold goroutines until stopped, so callers should Stop the result when
// done with it.
func New(kind Kind, workers int) Scheduler {
	switch kind {
	case Fixed:
		return &FixedWorkerPool{Workers: workers}
	case Unbound:
		return Go
	default:
		return &DynamicWorkerPool{Workers: workers}
	}
}

// Stop releases the goroutines held by s, if any.
func Stop(s Scheduler) {
	if p, ok := s.(interface{ Stop() }); ok {
		p.Stop()
	}
}

// FixedWorkerPool runs work atop a fixed set of long-lived goroutines,
// started on first use.
//
// Schedule blocks while every worker is busy. After Stop, scheduled work is
// dropped and the workers exit once they finish what they hold.
type FixedWorkerPool struct {
	// Workers specifies the number of concurrent workers in this pool.
	// Defaults to NumCPU.
	Workers int

	start sync.Once
	stop  sync.Once
	queue chan func()
	done  chan struct{}
}

func (p *FixedWorkerPool) init() {
	p.start.Do(func() {
		if p.Workers <= 0 {
			p.Workers = runtime.NumCPU()
		}
		p.queue = make(chan func())
		p.done = make(chan struct{})
		for ii := 0; ii < p.Workers; ii++ {
			go p.work()
		}
	})
}

func (p *FixedWorkerPool) work() {
	for {
		select {
		case <-p.done:
			return
		case w := <-p.queue:
			w()
		}
	}
}

// Schedule hands work to the next free worker.
func (p *FixedWorkerPool) Schedule(work func()) {
	if work == nil {
		return
	}
	p.init()
	select {
	case <-p.done:
		return
	default:
	}
	select {
	case <-p.done:
	case p.queue <- work:
	}
}

// Stop the workers. Stop is idempotent.
func (p *FixedWorkerPool) Stop() {
	p.init()
	p.stop.Do(func() { close(p.done) })
}

// DynamicWorkerPool spins up a goroutine per unit of work, holding at most
// Workers at a time. Idle pools hold no goroutines.
type DynamicWorkerPool struct {
	// Workers specifies the maximum allowed number of concurrent workers in
	// this pool. Defaults to NumCPU.
	Workers int
	// count is a semaphore; its buffer size is the limit.
	count chan struct{}
	sync.Once
}

// Schedule work to be executed by the available workers. Blocks until a
// worker slot is free.
func (p *DynamicWorkerPool) Schedule(work func()) {
	if work == nil {
		return
	}
	p.Once.Do(func() {
		if p.Workers <= 0 {
			p.Workers = runtime.NumCPU()
		}
		p.count = make(chan struct{}, p.Workers)
	})
	p.count <- struct{}{}
	go func() {
		defer func() { <-p.count }()
		work()
	}()
}
