// Package async loads resources off the UI goroutine and hands the results
// back to it. Loads run on a Scheduler; completed loads are published only
// when the UI goroutine calls Loader.Dispatch, so that state observed by the
// UI never changes underneath it.
//
// Loader adapted from Egon's https://github.com/egonelbre/expgio.
package async

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"git.sr.ht/~gioverse/ninepatch"
)

// Tag identifies a unique resource. Must be a hashable value.
type Tag interface{}

// ErrClosed is the error of resources that could not load because their
// Loader was closed.
var ErrClosed = errors.New("async: loader closed")

// LoadFunc performs the blocking load. ctx is cancelled when the Loader is
// closed.
type LoadFunc func(ctx context.Context) (interface{}, error)

// State that an async Resource can be in.
type State byte

const (
	Queued State = iota
	Loading
	Loaded
	// Failed resources never become Loaded and are not retried.
	Failed
)

func (s State) String() string {
	switch s {
	case Queued:
		return "queued"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "invalid"
}

// Loader schedules resources to load asynchronously.
// Start a load with Schedule, then select on Updated in the event loop and
// call Dispatch to publish the results.
//
//	case <-loader.Updated():
//		loader.Dispatch()
//		w.Invalidate()
//
// The zero value is ready to use. A Loader owns a goroutine and, unless a
// Scheduler is provided, a worker pool; Close releases both.
type Loader struct {
	// Scheduler provides scheduling behaviour. Defaults to a sized worker pool.
	// The caller can provide a scheduler that implements the best strategy for
	// the their usecase.
	Scheduler Scheduler
	// Workers sizes the default worker pool. Defaults to DefaultWorkers.
	Workers int
	// updated reports that some resource has finished.
	updated chan struct{}
	// init allows Loader to have a useful zero value by lazily allocating on
	// first use.
	init sync.Once
	// pool is the default scheduler, owned and shut down by the loader.
	pool *FixedWorkerPool
	// cancel aborts the context passed to every LoadFunc.
	cancel context.CancelFunc
	// loader contains the queue and lookup map.
	loader
}

// Scheduler schedules work according to some strategy.
// Implementations can implement the best way to distribute work for a given
// application.
type Scheduler interface {
	// Schedule a piece of work. This method is allowed to block.
	Schedule(func())
}

// FixedWorkerPool implements a simple fixed-size worker pool that lets go
// runtime schedule work atop some number of goroutines.
type FixedWorkerPool struct {
	// Workers specifies the number of concurrent workers in this pool.
	Workers int
	// queue of work. Unbuffered so it will block if worker pull is at capacity.
	queue chan func()
	// stop guards closing the queue.
	stop sync.Once
	// once time initialization.
	sync.Once
}

func (p *FixedWorkerPool) start() {
	p.queue = make(chan func())
	if p.Workers <= 0 {
		p.Workers = runtime.NumCPU()
	}
	for ii := 0; ii < p.Workers; ii++ {
		go func() {
			for w := range p.queue {
				if w != nil {
					w()
				}
			}
		}()
	}
}

// Schedule work to be executed by the available workers. This is a blocking
// call if all workers are busy. Schedule must not be called after Close.
func (p *FixedWorkerPool) Schedule(work func()) {
	p.Once.Do(p.start)
	p.queue <- work
}

// Close lets the workers exit once they finish their current work.
func (p *FixedWorkerPool) Close() {
	p.Once.Do(p.start)
	p.stop.Do(func() { close(p.queue) })
}

// DynamicWorkerPool spins up a goroutine per unit of work, up to a maximum
// number of concurrent workers. Idle pools hold no goroutines beyond the
// dispatcher.
type DynamicWorkerPool struct {
	// Workers specifies the maximum allowed number of concurrent workers in
	// this pool. Defaults to NumCPU.
	Workers int64
	// count is a semaphore queue that limits the number of workers at any
	// given time. The size of the buffer for the channel provides the limit.
	count chan struct{}
	// queue of work. Unbuffered so it will block if worker pool is at capacity.
	queue chan func()
	// once time initialization.
	sync.Once
}

// Schedule work to be executed by the available workers. This is a blocking
// call if all workers are busy.
func (p *DynamicWorkerPool) Schedule(work func()) {
	p.Once.Do(func() {
		if p.Workers <= 0 {
			p.Workers = int64(runtime.NumCPU())
		}
		p.queue = make(chan func())
		p.count = make(chan struct{}, p.Workers)
		for ii := 0; ii < int(p.Workers); ii++ {
			p.count <- struct{}{}
		}
		go func() {
			for w := range p.queue {
				w := w
				if w != nil {
					sem := <-p.count
					go func() {
						w()
						p.count <- sem
					}()
				}
			}
		}()
	})
	p.queue <- work
}

// DefaultWorkers is used when neither Scheduler nor Workers is specified.
const DefaultWorkers = 4

// loader wraps up state that needs to be synchronized together.
type loader struct {
	// mu is the primary mutex used to synchronize.
	mu sync.Mutex
	// refresh sleeps the run loop until something is queued.
	refresh sync.Cond
	// lookup maps tags to resources so each tag loads once.
	lookup map[Tag]*Resource
	// queue of resources waiting for a scheduler slot.
	queue []*Resource
	// loading counts resources handed to the scheduler but not yet finished.
	loading int
	// finished resources awaiting Dispatch.
	finished []*Resource
	// callbacks registered on already-loaded resources, awaiting Dispatch.
	callbacks []func()
	// closed stops the run loop and fails later schedules.
	closed bool
}

// Updated returns a channel that reports whether loader has been updated.
// Integrate this into gio event loop to, for example, invalidate the window.
func (l *Loader) Updated() <-chan struct{} {
	l.init.Do(l.initialize)
	return l.updated
}

// Schedule a resource to be loaded asynchronously, returning the resource
// that will hold the loaded value once dispatched.
//
// The first call for a tag queues the load. Subsequent calls return the same
// resource.
func (l *Loader) Schedule(tag Tag, load LoadFunc) *Resource {
	l.init.Do(l.initialize)
	l.mu.Lock()
	defer l.mu.Unlock()
	if r, ok := l.lookup[tag]; ok {
		return r
	}
	r := &Resource{
		tag:    tag,
		load:   load,
		state:  Queued,
		loader: l,
	}
	l.lookup[tag] = r
	if l.closed {
		r.fail(ErrClosed)
		l.finished = append(l.finished, r)
		l.update()
		return r
	}
	l.queue = append(l.queue, r)
	l.refresh.Signal()
	return r
}

// Close stops the loader. In-flight loads see their context cancelled,
// queued loads are abandoned, and both fail at the next Dispatch, as does
// anything scheduled afterwards. The default worker pool exits once its
// current work returns. Close is idempotent.
func (l *Loader) Close() {
	l.init.Do(l.initialize)
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	for _, r := range l.queue {
		r.fail(ErrClosed)
		l.finished = append(l.finished, r)
	}
	l.queue = nil
	l.refresh.Broadcast()
	l.mu.Unlock()
	l.cancel()
	l.update()
}

// Dispatch publishes finished loads and runs their OnLoad callbacks on the
// calling goroutine. Call it from the UI goroutine whenever Updated fires.
// It returns the number of resources published.
func (l *Loader) Dispatch() int {
	l.init.Do(l.initialize)
	l.mu.Lock()
	var (
		finished  = l.finished
		callbacks = l.callbacks
	)
	l.finished, l.callbacks = nil, nil
	l.mu.Unlock()

	for _, r := range finished {
		for _, fn := range r.publish() {
			fn()
		}
	}
	for _, fn := range callbacks {
		fn()
	}
	return len(finished)
}

func (l *Loader) initialize() {
	l.updated = make(chan struct{}, 1)
	l.loader.lookup = make(map[Tag]*Resource)
	l.loader.refresh.L = &l.loader.mu
	if l.Scheduler == nil {
		workers := l.Workers
		if workers <= 0 {
			workers = DefaultWorkers
		}
		l.pool = &FixedWorkerPool{Workers: workers}
		l.Scheduler = l.pool
	}
	var ctx context.Context
	ctx, l.cancel = context.WithCancel(context.Background())
	go l.run(ctx)
}

// LoaderStats tracks some stats about the loader.
type LoaderStats struct {
	Lookup  int
	Queued  int
	Loading int
	// Pending counts finished resources not yet dispatched.
	Pending int
}

// Stats reports runtime data about this loader.
func (l *loader) Stats() LoaderStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return LoaderStats{
		Lookup:  len(l.lookup),
		Queued:  len(l.queue),
		Loading: l.loading,
		Pending: len(l.finished),
	}
}

// update signals to the outside world that some resource has experienced a
// state change.
func (l *Loader) update() {
	select {
	case l.updated <- struct{}{}:
	default:
	}
}

// run the processing goroutine that hands queued resources to the
// scheduler, until the loader is closed.
func (l *Loader) run(ctx context.Context) {
	loader := &l.loader

	loader.mu.Lock()
	defer loader.mu.Unlock()
	// Only this goroutine schedules on the pool, so closing it here cannot
	// race a Schedule.
	defer func() {
		if l.pool != nil {
			l.pool.Close()
		}
	}()

	for {
		for len(loader.queue) == 0 && !loader.closed {
			loader.refresh.Wait()
		}
		if loader.closed {
			return
		}
		r := loader.queue[0]
		loader.queue = loader.queue[1:]
		loader.loading++
		// Scheduling may block on a busy pool, so release the lock meanwhile.
		loader.mu.Unlock()
		l.Scheduler.Schedule(func() {
			v, err := r.run(ctx)
			l.finish(r, v, err)
		})
		loader.mu.Lock()
	}
}

// finish records the outcome of a load for the next Dispatch.
func (l *Loader) finish(r *Resource, v interface{}, err error) {
	r.mu.Lock()
	r.result, r.err = v, err
	r.mu.Unlock()

	l.mu.Lock()
	l.loading--
	l.finished = append(l.finished, r)
	l.mu.Unlock()
	l.update()
}

// later queues fn for the next Dispatch.
func (l *Loader) later(fn func()) {
	l.mu.Lock()
	l.callbacks = append(l.callbacks, fn)
	l.mu.Unlock()
	l.update()
}

// Resource records data about a loading value.
//
// state, value and the subscriber list are synchronized by the mutex; tag,
// load and loader are set once during allocation.
type Resource struct {
	mu sync.Mutex
	// state as published by Dispatch, except for the Queued to Loading
	// transition which the worker makes.
	state State
	// value for the resource, once published.
	value interface{}
	// result and err hold the outcome of the load until it is published.
	result interface{}
	err    error
	subs   []func()
	// tag of the resource.
	// Used to uniquely identify the resource stored in a map.
	tag Tag
	// load performs the blocking load, like a network call or disk operation.
	load   LoadFunc
	loader *Loader
}

// run the load function, marking the resource as loading meanwhile. Loads
// reaching a worker after Close are not started.
func (r *Resource) run(ctx context.Context) (interface{}, error) {
	r.mu.Lock()
	r.state = Loading
	r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.load(ctx)
}

// fail records err as the outcome of a load that never ran.
func (r *Resource) fail(err error) {
	r.mu.Lock()
	r.result, r.err = nil, err
	r.mu.Unlock()
}

// publish moves the load outcome into the visible state and returns the
// callbacks to invoke. Failed resources keep their callbacks, which never
// fire.
func (r *Resource) publish() []func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		r.state = Failed
		if errors.Is(r.err, ErrClosed) || errors.Is(r.err, context.Canceled) {
			ninepatch.Logger().Debug("async: load abandoned", "tag", r.tag, "err", r.err)
			return nil
		}
		ninepatch.Logger().Warn("async: load failed", "tag", r.tag, "err", r.err)
		return nil
	}
	r.state, r.value = Loaded, r.result
	subs := r.subs
	r.subs = nil
	return subs
}

// Tag returns the tag the resource was scheduled with.
func (r *Resource) Tag() Tag {
	return r.tag
}

// State reports current state for this resource.
func (r *Resource) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Value for the resource. Nil until loaded.
func (r *Resource) Value() interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Err reports why the resource failed, once dispatched.
func (r *Resource) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Failed {
		return nil
	}
	return r.err
}

// OnLoad registers fn to run during the Dispatch that publishes the
// resource. If the resource is already loaded fn runs during the next
// Dispatch instead.
func (r *Resource) OnLoad(fn func()) {
	r.mu.Lock()
	if r.state != Loaded {
		r.subs = append(r.subs, fn)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.loader.later(fn)
}
