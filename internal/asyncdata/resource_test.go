package asyncdata

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-storefront/pkg/interfaces"
)

type recordedEntry struct {
	level string
	msg   string
	args  []any
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []recordedEntry
}

func (l *recordingLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, recordedEntry{level: level, msg: msg, args: args})
}

func (l *recordingLogger) Trace(msg string, args ...any) { l.record("trace", msg, args) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.record("info", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.record("error", msg, args) }
func (l *recordingLogger) Fatal(msg string, args ...any) { l.record("fatal", msg, args) }

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) errors() []recordedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []recordedEntry
	for _, entry := range l.entries {
		if entry.level == "error" {
			out = append(out, entry)
		}
	}
	return out
}

func TestImmediateResourceIsLoadingSynchronously(t *testing.T) {
	release := make(chan struct{})
	r := New(func(ctx context.Context) (string, error) {
		<-release
		return "ready", nil
	})

	if state := r.Snapshot(); !state.IsLoading || state.HasData {
		t.Fatalf("expected loading without data right after construction, got %+v", state)
	}

	close(release)
	r.Wait()

	state := r.Snapshot()
	if state.IsLoading || !state.HasData || state.Data != "ready" || state.Err != nil {
		t.Fatalf("unexpected settled state %+v", state)
	}
}

func TestLazyResourceDoesNotRunUntilExecuted(t *testing.T) {
	calls := 0
	r := New(func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}, WithImmediate(false))

	if state := r.Snapshot(); state.IsLoading || calls != 0 {
		t.Fatalf("expected idle resource, got %+v after %d calls", state, calls)
	}

	r.Execute(context.Background())
	r.Refresh(context.Background())

	if state := r.Snapshot(); state.Data != 2 || calls != 2 {
		t.Fatalf("expected refresh to re-run the producer, got %+v after %d calls", state, calls)
	}
}

func TestErrorIsRecordedAndLogged(t *testing.T) {
	logger := &recordingLogger{}
	boom := errors.New("boom")
	fail := false
	r := New(func(ctx context.Context) (string, error) {
		if fail {
			return "", boom
		}
		return "first", nil
	}, WithImmediate(false), WithLogger(logger))

	r.Execute(context.Background())
	fail = true
	r.Execute(context.Background())

	state := r.Snapshot()
	if !errors.Is(state.Err, boom) {
		t.Fatalf("expected recorded error, got %v", state.Err)
	}
	if state.Data != "first" || !state.HasData {
		t.Fatalf("expected previous data to survive a failure, got %+v", state)
	}
	if got := len(logger.errors()); got != 1 {
		t.Fatalf("expected one error log, got %d", got)
	}

	fail = false
	r.Execute(context.Background())
	if state := r.Snapshot(); state.Err != nil {
		t.Fatalf("expected error cleared by next execution, got %v", state.Err)
	}
}

func TestPanicIsConvertedToError(t *testing.T) {
	r := New(func(ctx context.Context) (int, error) {
		panic("kaboom")
	}, WithImmediate(false))

	r.Execute(context.Background())

	state := r.Snapshot()
	if !errors.Is(state.Err, ErrProducerPanic) {
		t.Fatalf("expected panic error, got %v", state.Err)
	}
	if state.IsLoading {
		t.Fatalf("expected loading cleared after panic")
	}
}

func TestConcurrentExecutionsLastCompletionWins(t *testing.T) {
	slow := make(chan struct{})
	var mu sync.Mutex
	call := 0
	r := New(func(ctx context.Context) (string, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			<-slow
			return "stale", nil
		}
		return "fresh", nil
	}, WithImmediate(false))

	done := make(chan struct{})
	go func() {
		r.Execute(context.Background())
		close(done)
	}()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return call == 1
	})

	r.Execute(context.Background())
	close(slow)
	<-done

	if got := r.Snapshot().Data; got != "stale" {
		t.Fatalf("expected the last completion to win, got %q", got)
	}
}

func TestLatestOnlyDiscardsStaleCompletion(t *testing.T) {
	slow := make(chan struct{})
	var mu sync.Mutex
	call := 0
	r := New(func(ctx context.Context) (string, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			<-slow
			return "stale", nil
		}
		return "fresh", nil
	}, WithImmediate(false), WithLatestOnly())

	done := make(chan struct{})
	go func() {
		r.Execute(context.Background())
		close(done)
	}()
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return call == 1
	})

	r.Execute(context.Background())
	close(slow)
	<-done

	state := r.Snapshot()
	if state.Data != "fresh" || state.IsLoading {
		t.Fatalf("expected fresh data to survive, got %+v", state)
	}
}

func TestObserversFollowCommitOrder(t *testing.T) {
	entered := make(chan struct{})
	releaseFirst := make(chan struct{})
	var mu sync.Mutex
	call := 0
	r := New(func(ctx context.Context) (int, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()
		if n == 1 {
			close(entered)
			<-releaseFirst
			return 1, nil
		}
		return 2, nil
	}, WithImmediate(false))

	parked := make(chan struct{})
	resume := make(chan struct{})
	var parkOnce sync.Once
	var seen []int
	r.Subscribe(func(s State[int]) {
		if s.IsLoading {
			return
		}
		mu.Lock()
		seen = append(seen, s.Data)
		mu.Unlock()
		if s.Data == 1 {
			parkOnce.Do(func() {
				close(parked)
				<-resume
			})
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watch := r.Watch(ctx)

	r.Start(ctx)
	<-entered
	close(releaseFirst)
	<-parked

	r.Execute(ctx)
	close(resume)
	r.Wait()

	if got := r.Snapshot().Data; got != 2 {
		t.Fatalf("expected snapshot of the second execution, got %d", got)
	}
	mu.Lock()
	last := seen[len(seen)-1]
	mu.Unlock()
	if last != 2 {
		t.Fatalf("expected subscriber to end on the latest commit, saw %v", seen)
	}
	select {
	case state := <-watch:
		if state.Data != 2 || state.IsLoading {
			t.Fatalf("expected watch to end on the latest commit, got %+v", state)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out reading watch channel")
	}
}

func TestSubscriberMayExecuteFromCallback(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	r := New(func(ctx context.Context) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return calls, nil
	}, WithImmediate(false))

	var last State[int]
	refreshed := false
	r.Subscribe(func(s State[int]) {
		last = s
		if !s.IsLoading && !refreshed {
			refreshed = true
			r.Execute(context.Background())
		}
	})

	r.Execute(context.Background())

	if last.Data != 2 || last.IsLoading {
		t.Fatalf("expected nested refresh to be delivered last, got %+v", last)
	}
}

func TestSubscribeAndCancel(t *testing.T) {
	r := New(func(ctx context.Context) (int, error) { return 7, nil }, WithImmediate(false))

	var mu sync.Mutex
	var seen []State[int]
	cancel := r.Subscribe(func(s State[int]) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})

	r.Execute(context.Background())
	cancel()
	r.Execute(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 {
		t.Fatalf("expected loading and settled notifications, got %d", len(seen))
	}
	if !seen[0].IsLoading || seen[1].IsLoading || seen[1].Data != 7 {
		t.Fatalf("unexpected notifications %+v", seen)
	}
}

func TestWatchDeliversLatestState(t *testing.T) {
	r := New(func(ctx context.Context) (string, error) { return "value", nil }, WithImmediate(false))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := r.Watch(ctx)
	r.Execute(context.Background())

	deadline := time.After(time.Second)
	for {
		select {
		case state := <-ch:
			if state.HasData && state.Data == "value" && !state.IsLoading {
				cancel()
				for range ch {
				}
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for settled state")
		}
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met in time")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStartReturnsWhileLoading(t *testing.T) {
	release := make(chan struct{})
	r := New(func(ctx context.Context) (int, error) {
		<-release
		return 1, nil
	}, WithImmediate(false))

	r.Start(context.Background())
	if !r.Snapshot().IsLoading {
		t.Fatalf("expected loading after Start")
	}
	close(release)
	r.Wait()
	if state := r.Snapshot(); state.Data != 1 || state.IsLoading {
		t.Fatalf("unexpected state %+v", state)
	}
}
