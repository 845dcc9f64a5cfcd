package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	var sharedHits int32
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err, shared := g.Do("fixtures:week:12", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return []int64{501, 502}, nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
				return
			}
			if ids, ok := v.([]int64); !ok || len(ids) != 2 {
				t.Errorf("unexpected shared value: %v", v)
			}
			if shared {
				atomic.AddInt32(&sharedHits, 1)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
	if got := atomic.LoadInt32(&sharedHits); got == 0 {
		t.Fatal("expected at least one caller to receive a shared result")
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight
	var counter int32

	run := func(key string) {
		_, err, _ := g.Do(key, func() (any, error) {
			atomic.AddInt32(&counter, 1)
			return key, nil
		})
		if err != nil {
			t.Errorf("singleflight call failed: %v", err)
		}
	}

	run("fixtures:week:12")
	run("fixtures:week:13")

	if got := atomic.LoadInt32(&counter); got != 2 {
		t.Fatalf("expected one run per key, got %d", got)
	}
}
