package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderCountsAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()

	rec.RecordUpstreamAttempt("datablase", 20*time.Millisecond, nil)
	rec.RecordUpstreamAttempt("datablase", 35*time.Millisecond, errors.New("boom"))
	rec.RecordUpstreamAttempt("algolia", 5*time.Millisecond, nil)

	if got := rec.UpstreamCalls("datablase"); got != 2 {
		t.Errorf("calls = %d", got)
	}
	if got := rec.UpstreamErrors("datablase"); got != 1 {
		t.Errorf("errors = %d", got)
	}
	if got := rec.LastCallLatency("datablase"); got != 35*time.Millisecond {
		t.Errorf("latency = %v", got)
	}
	if got := rec.UpstreamCalls("algolia"); got != 1 {
		t.Errorf("algolia calls = %d", got)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()

	rec.RecordRateLimit("datablase", 2*time.Second)
	rec.RecordRateLimit("datablase", 0)

	if got := rec.RateLimitHits("datablase"); got != 2 {
		t.Errorf("hits = %d", got)
	}
	if got := rec.LastRetryAfter("datablase"); got != 2*time.Second {
		t.Errorf("retry-after = %v, want last positive value kept", got)
	}
}

func TestRecorderConcurrentRecording(t *testing.T) {
	rec := NewRecorder()

	const workers = 8
	const perWorker = 500

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				var err error
				if j%2 == 0 {
					err = errors.New("boom")
				}
				rec.RecordUpstreamAttempt("datablase", time.Millisecond, err)
				if n%2 == 0 {
					rec.RecordRateLimit("datablase", time.Second)
				}
			}
		}(i)
	}
	wg.Wait()

	if got := rec.UpstreamCalls("datablase"); got != workers*perWorker {
		t.Errorf("calls = %d, want %d", got, workers*perWorker)
	}
	if got := rec.UpstreamErrors("datablase"); got != workers*perWorker/2 {
		t.Errorf("errors = %d, want %d", got, workers*perWorker/2)
	}
	if got := rec.RateLimitHits("datablase"); got != workers/2*perWorker {
		t.Errorf("rate limit hits = %d, want %d", got, workers/2*perWorker)
	}
}

func TestRecorderSnapshotIsolatedPerUpstream(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamAttempt("datablase", time.Millisecond, nil)

	if snap := rec.Snapshot("algolia"); snap.Calls != 0 {
		t.Errorf("unexpected cross-talk: %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder

	rec.RecordUpstreamAttempt("datablase", time.Millisecond, nil)
	rec.RecordRateLimit("datablase", time.Second)
	rec.RecordSnapshotFallback("schedule")
	rec.RecordHTTPRequest("GET", "/teams", 200, time.Millisecond)
	rec.RecordPollerCycle(time.Millisecond, nil)

	if snap := rec.Snapshot("datablase"); snap != (Snapshot{}) {
		t.Errorf("snapshot = %+v", snap)
	}
}
