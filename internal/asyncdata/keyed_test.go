package asyncdata

import (
	"context"
	"sync"
	"testing"
)

func TestKeyedFetchesCurrentKey(t *testing.T) {
	var mu sync.Mutex
	var requested []string
	k := NewKeyed[string]("oak-chair", func(ctx context.Context, key string) (string, error) {
		mu.Lock()
		requested = append(requested, key)
		mu.Unlock()
		return "value:" + key, nil
	})
	k.Wait()

	if got := k.Snapshot().Data; got != "value:oak-chair" {
		t.Fatalf("unexpected data %q", got)
	}
	if k.SetKey("oak-chair") {
		t.Fatalf("expected unchanged key to skip the fetch")
	}
	if !k.SetKey("linen-lamp") {
		t.Fatalf("expected changed key to fetch")
	}
	k.Wait()

	if got := k.Snapshot().Data; got != "value:linen-lamp" || k.Key() != "linen-lamp" {
		t.Fatalf("expected data for the new key, got %q (key %q)", got, k.Key())
	}
	mu.Lock()
	defer mu.Unlock()
	if len(requested) != 2 {
		t.Fatalf("expected two fetches, got %v", requested)
	}
}

func TestKeyedDiscardsSupersededKey(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	k := NewKeyed[string]("slow", func(ctx context.Context, key string) (string, error) {
		if key == "slow" {
			close(entered)
			<-release
		}
		return key, nil
	})

	<-entered
	k.SetKey("fast")
	waitFor(t, func() bool { return k.Snapshot().Data == "fast" })
	close(release)
	k.Wait()

	if state := k.Snapshot(); state.Data != "fast" || state.IsLoading {
		t.Fatalf("expected newest key to win, got %+v", state)
	}
}

func TestKeyedHonoursLazyOption(t *testing.T) {
	calls := 0
	k := NewKeyed[int]("a", func(ctx context.Context, key string) (int, error) {
		calls++
		return calls, nil
	}, WithImmediate(false))

	if calls != 0 || k.Snapshot().IsLoading {
		t.Fatalf("expected no fetch before Execute")
	}
	k.Execute(context.Background())
	if k.Snapshot().Data != 1 {
		t.Fatalf("expected one fetch after Execute")
	}
}
