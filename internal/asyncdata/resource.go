package asyncdata

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

// ErrProducerPanic marks a producer that panicked instead of returning.
var ErrProducerPanic = errors.New("asyncdata: producer panicked")

var errNilProducer = errors.New("asyncdata: producer is nil")

// Producer fetches one value.
type Producer[T any] func(ctx context.Context) (T, error)

// State is a snapshot of a resource. Data keeps the last successful value
// while a later execution is loading or after it failed.
type State[T any] struct {
	Data      T
	HasData   bool
	IsLoading bool
	Err       error
}

// Resource wraps a producer with loading, error and data state. Failures are
// recorded on the state and logged, never returned.
type Resource[T any] struct {
	producer   Producer[T]
	logger     interfaces.Logger
	latestOnly bool

	mu          sync.Mutex
	state       State[T]
	generation  uint64
	seq         uint64
	subscribers map[uint64]*subscription[T]
	nextSubID   uint64

	inflight sync.WaitGroup
}

// New builds a resource for producer. Unless WithImmediate(false) is given,
// IsLoading is already true when New returns and the first execution runs in
// the background.
func New[T any](producer Producer[T], opts ...Option) *Resource[T] {
	cfg := newConfig(opts)

	logger := logging.OrNoOp(cfg.logger)
	if cfg.name != "" {
		logger = logging.WithFields(logger, map[string]any{"resource": cfg.name})
	}

	r := &Resource[T]{
		producer:    producer,
		logger:      logger,
		latestOnly:  cfg.latestOnly,
		subscribers: map[uint64]*subscription[T]{},
	}

	if cfg.immediate {
		r.Start(cfg.ctx)
	}
	return r
}

// Start triggers an execution without waiting for it. IsLoading is true when
// Start returns.
func (r *Resource[T]) Start(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	gen := r.begin()
	go r.run(ctx, gen)
}

// Execute runs the producer once and blocks until it settles.
func (r *Resource[T]) Execute(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	gen := r.begin()
	r.run(ctx, gen)
}

// Refresh re-runs the full producer. It is the same operation as Execute.
func (r *Resource[T]) Refresh(ctx context.Context) {
	r.Execute(ctx)
}

// Snapshot returns the current state.
func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Wait blocks until no execution is in flight.
func (r *Resource[T]) Wait() {
	r.inflight.Wait()
}

// Subscribe registers fn for every state change. Deliveries follow commit
// order: a subscriber never sees a state older than one it already received,
// and states committed while fn is running may be coalesced into the latest.
// The returned function removes the subscription.
func (r *Resource[T]) Subscribe(fn func(State[T])) func() {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	id := r.addSubscriberLocked(fn)
	r.mu.Unlock()
	return r.unsubscriber(id)
}

// Watch streams state snapshots until ctx is done. The channel holds only the
// latest snapshot; a slow reader skips intermediate states.
func (r *Resource[T]) Watch(ctx context.Context) <-chan State[T] {
	w := &watcher[T]{ch: make(chan State[T], 1)}

	r.mu.Lock()
	id := r.addSubscriberLocked(w.offer)
	w.offer(r.state)
	r.mu.Unlock()
	cancel := r.unsubscriber(id)

	go func() {
		<-ctx.Done()
		cancel()
		w.close()
	}()
	return w.ch
}

func (r *Resource[T]) addSubscriberLocked(fn func(State[T])) uint64 {
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = &subscription[T]{fn: fn, latest: r.seq}
	return id
}

func (r *Resource[T]) unsubscriber(id uint64) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.subscribers, id)
			r.mu.Unlock()
		})
	}
}

func (r *Resource[T]) begin() uint64 {
	r.inflight.Add(1)

	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.state.IsLoading = true
	r.state.Err = nil
	r.seq++
	seq, snapshot, subs := r.seq, r.state, r.subscriberList()
	r.mu.Unlock()

	notify(subs, seq, snapshot)
	return gen
}

func (r *Resource[T]) run(ctx context.Context, gen uint64) {
	defer r.inflight.Done()

	data, err := r.produce(ctx)

	r.mu.Lock()
	if r.latestOnly && gen != r.generation {
		r.mu.Unlock()
		r.logger.Debug("async data result discarded", "generation", gen)
		return
	}
	if err != nil {
		r.state.Err = err
	} else {
		r.state.Data = data
		r.state.HasData = true
	}
	r.state.IsLoading = false
	r.seq++
	seq, snapshot, subs := r.seq, r.state, r.subscriberList()
	r.mu.Unlock()

	if err != nil {
		r.logger.Error("async data producer failed", "error", err)
	}
	notify(subs, seq, snapshot)
}

func (r *Resource[T]) produce(ctx context.Context) (data T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			var zero T
			data = zero
			if recErr, ok := rec.(error); ok {
				err = fmt.Errorf("%w: %w", ErrProducerPanic, recErr)
				return
			}
			err = fmt.Errorf("%w: %v", ErrProducerPanic, rec)
		}
	}()
	if r.producer == nil {
		var zero T
		return zero, errNilProducer
	}
	return r.producer(ctx)
}

func (r *Resource[T]) subscriberList() []*subscription[T] {
	if len(r.subscribers) == 0 {
		return nil
	}
	out := make([]*subscription[T], 0, len(r.subscribers))
	for _, sub := range r.subscribers {
		out = append(out, sub)
	}
	return out
}

func notify[T any](subs []*subscription[T], seq uint64, state State[T]) {
	for _, sub := range subs {
		sub.deliver(seq, state)
	}
}

// subscription serializes deliveries to one subscriber. A goroutine that
// finds a delivery in progress leaves its state pending and returns; the
// active goroutine hands over the newest pending state once fn returns.
type subscription[T any] struct {
	fn func(State[T])

	mu         sync.Mutex
	latest     uint64
	pending    State[T]
	hasPending bool
	delivering bool
}

func (s *subscription[T]) deliver(seq uint64, state State[T]) {
	s.mu.Lock()
	if seq <= s.latest {
		s.mu.Unlock()
		return
	}
	s.latest = seq
	s.pending, s.hasPending = state, true
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for s.hasPending {
		next := s.pending
		s.pending, s.hasPending = State[T]{}, false
		s.mu.Unlock()
		s.call(next)
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}

// call runs fn and releases the delivery slot when fn panics.
func (s *subscription[T]) call(state State[T]) {
	done := false
	defer func() {
		if !done {
			s.mu.Lock()
			s.delivering, s.hasPending = false, false
			s.mu.Unlock()
		}
	}()
	s.fn(state)
	done = true
}

type watcher[T any] struct {
	mu     sync.Mutex
	ch     chan State[T]
	closed bool
}

func (w *watcher[T]) offer(state State[T]) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case <-w.ch:
	default:
	}
	w.ch <- state
}

func (w *watcher[T]) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
}
