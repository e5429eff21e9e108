// Package parallel spreads a batch of independent placements over a fixed
// set of goroutines.
//
// Each worker owns a queue. A worker whose queue runs dry takes jobs from
// its neighbours before it blocks, so a handful of expensive outlines do not
// hold the batch back.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("parallel: pool closed")

// Pool is safe for concurrent use; several Runs may share it.
type Pool struct {
	queues []chan func()
	stop   chan struct{}
	wg     sync.WaitGroup
	open   atomic.Bool

	// Run holds gate shared while it enqueues, so Close waits for the
	// enqueue to finish before it stops the workers.
	gate sync.RWMutex
}

// NewPool starts n workers, or GOMAXPROCS of them when n <= 0.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		queues: make([]chan func(), n),
		stop:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), max(4*n, 8))
	}
	p.open.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.work(i)
	}
	return p
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	for {
		job, ok := p.next(id)
		if !ok {
			break
		}
		job()
	}
	// Anything still queued after Close belongs to a Run that is waiting
	// on it.
	for {
		select {
		case job := <-p.queues[id]:
			job()
		default:
			return
		}
	}
}

// next picks the worker's next job: its own queue, then a neighbour's, then
// a blocking wait on its own. It reports false once the pool is stopping.
func (p *Pool) next(id int) (func(), bool) {
	own := p.queues[id]
	select {
	case <-p.stop:
		return nil, false
	case job := <-own:
		return job, true
	default:
	}

	n := len(p.queues)
	for off := 1; off < n; off++ {
		select {
		case job := <-p.queues[(id+off)%n]:
			return job, true
		default:
		}
	}

	select {
	case <-p.stop:
		return nil, false
	case job := <-own:
		return job, true
	}
}

// Run calls fn(i) for each i in [0, n) and returns when every call has
// returned. Indices are dealt to the workers in turn, so fn must tolerate
// concurrent calls with distinct indices.
//
// When ctx ends, jobs that have not started are skipped and Run returns
// ctx.Err(); running calls finish normally.
func (p *Pool) Run(ctx context.Context, n int, fn func(i int)) error {
	p.gate.RLock()
	if !p.open.Load() {
		p.gate.RUnlock()
		return ErrClosed
	}

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		job := func() {
			defer wg.Done()
			if ctx.Err() == nil {
				fn(i)
			}
		}
		select {
		case p.queues[i%len(p.queues)] <- job:
			continue
		case <-ctx.Done():
		}
		wg.Done()
		break
	}
	p.gate.RUnlock()

	wg.Wait()
	return ctx.Err()
}

// Close lets queued jobs finish and stops the workers. Later calls do
// nothing.
func (p *Pool) Close() {
	p.gate.Lock()
	if !p.open.CompareAndSwap(true, false) {
		p.gate.Unlock()
		return
	}
	close(p.stop)
	p.gate.Unlock()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return len(p.queues) }

// IsRunning reports whether Run still accepts work.
func (p *Pool) IsRunning() bool { return p.open.Load() }
