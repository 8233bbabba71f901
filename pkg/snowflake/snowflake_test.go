package snowflake

import (
	"sync"
	"testing"

	"github.com/sourcegraph/conc"
)

func TestGenID_Positive(t *testing.T) {
	if id := GenID(); id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

func TestGenID_Increasing(t *testing.T) {
	prev := GenID()
	for i := 0; i < 1000; i++ {
		curr := GenID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

func TestGenID_ConcurrentUnique(t *testing.T) {
	const (
		workers = 16
		each    = 2000
	)

	var (
		mu  sync.Mutex
		ids = make(map[int64]struct{}, workers*each)
		wg  conc.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Go(func() {
			local := make([]int64, 0, each)
			for i := 0; i < each; i++ {
				local = append(local, GenID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				ids[id] = struct{}{}
			}
		})
	}
	wg.Wait()

	if len(ids) != workers*each {
		t.Fatalf("expected %d unique ids, got %d", workers*each, len(ids))
	}
}
