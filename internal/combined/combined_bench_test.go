package combined_test

import (
	"context"
	"testing"
	"time"

	"github.com/randomizedcoder/msgqueue/internal/cancel"
	"github.com/randomizedcoder/msgqueue/internal/queue"
	"github.com/randomizedcoder/msgqueue/internal/tick"
)

// Sink variables
var sinkInt int
var sinkBool bool

const benchInterval = time.Hour

// ============================================================================
// Full loop benchmarks (cancel + deadline + queue)
// ============================================================================

func prefill(b *testing.B, q queue.Queue[int]) {
	b.Helper()
	for i := 0; i < q.Cap(); i++ {
		if r := q.Push(i, queue.NonBlocking); r != queue.Ok {
			b.Fatalf("prefill: %v", r)
		}
	}
}

// BenchmarkCombined_FullLoop_Channel simulates a consumer loop over the
// channel baseline with a context-backed stop flag.
func BenchmarkCombined_FullLoop_Channel(b *testing.B) {
	stop := cancel.NewContext(context.Background())
	deadline := tick.NewDeadline(benchInterval, 1000)
	q, err := queue.NewChannel[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	prefill(b, q)

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var stopped, expired bool
	for i := 0; i < b.N; i++ {
		stopped = stop.Done()
		expired = deadline.Expired()
		val, _ = q.Pop(queue.NonBlocking)
		q.Push(val, queue.NonBlocking) // Recycle
	}
	sinkInt = val
	sinkBool = stopped || expired
}

// BenchmarkCombined_FullLoop_Bounded uses the bounded queue with an atomic
// stop flag, the same pairing the queue uses internally for Close.
func BenchmarkCombined_FullLoop_Bounded(b *testing.B) {
	stop := cancel.NewAtomic()
	deadline := tick.NewDeadline(benchInterval, 1000)
	q, err := queue.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	prefill(b, q)

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var stopped, expired bool
	for i := 0; i < b.N; i++ {
		stopped = stop.Done()
		expired = deadline.Expired()
		val, _ = q.Pop(queue.NonBlocking)
		q.Push(val, queue.NonBlocking) // Recycle
	}
	sinkInt = val
	sinkBool = stopped || expired
}

// ============================================================================
// Pipeline benchmarks (producer/consumer)
// ============================================================================

func benchPipeline(b *testing.B, q queue.Queue[int]) {
	stop := cancel.NewAtomic()
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for !stop.Done() {
			v, r := q.Pop(queue.Blocking)
			if r == queue.Closed {
				return
			}
			sinkInt = v
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Push(i, queue.Blocking)
	}
	b.StopTimer()

	stop.Cancel()
	q.Close()
	<-consumerDone
}

// BenchmarkPipeline_Channel benchmarks a 2-goroutine blocking pipeline
// over the channel baseline.
func BenchmarkPipeline_Channel(b *testing.B) {
	q, err := queue.NewChannel[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	benchPipeline(b, q)
}

// BenchmarkPipeline_Bounded benchmarks the same pipeline over Bounded.
func BenchmarkPipeline_Bounded(b *testing.B) {
	q, err := queue.New[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	benchPipeline(b, q)
}
