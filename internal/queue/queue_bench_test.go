package queue_test

import (
	"sync"
	"sync/atomic"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/msgqueue/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkResult queue.Result
var sinkBool bool

func mustBounded(b *testing.B, capacity int) *queue.Bounded[int] {
	b.Helper()
	q, err := queue.New[int](capacity)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

func mustChannel(b *testing.B, capacity int) *queue.ChannelQueue[int] {
	b.Helper()
	q, err := queue.NewChannel[int](capacity)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

// Direct type benchmarks (single goroutine, uncontended)

func BenchmarkQueue_Bounded_PushPop_Direct(b *testing.B) {
	q := mustBounded(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var r queue.Result
	for i := 0; i < b.N; i++ {
		q.Push(i, queue.NonBlocking)
		val, r = q.Pop(queue.NonBlocking)
	}
	sinkInt = val
	sinkResult = r
}

func BenchmarkQueue_Channel_PushPop_Direct(b *testing.B) {
	q := mustChannel(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var r queue.Result
	for i := 0; i < b.N; i++ {
		q.Push(i, queue.NonBlocking)
		val, r = q.Pop(queue.NonBlocking)
	}
	sinkInt = val
	sinkResult = r
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_Bounded_PushPop_Interface(b *testing.B) {
	var q queue.Queue[int] = mustBounded(b, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var r queue.Result
	for i := 0; i < b.N; i++ {
		q.Push(i, queue.NonBlocking)
		val, r = q.Pop(queue.NonBlocking)
	}
	sinkInt = val
	sinkResult = r
}

func BenchmarkQueue_Bounded_PopMatch_Tail(b *testing.B) {
	const size = 64
	q := mustBounded(b, size)
	for i := 0; i < size-1; i++ {
		q.Push(i, queue.NonBlocking)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var r queue.Result
	for i := 0; i < b.N; i++ {
		q.Push(-1, queue.NonBlocking)
		val, r = q.PopMatch(func(v int) bool { return v < 0 })
	}
	sinkInt = val
	sinkResult = r
}

// Closed fast path: callers that keep retrying a closed queue

func benchPushClosed(b *testing.B, q queue.Queue[int], p queue.Policy) {
	q.Close()
	b.ReportAllocs()
	b.ResetTimer()

	var r queue.Result
	for i := 0; i < b.N; i++ {
		r = q.Push(i, p)
	}
	sinkResult = r
}

func BenchmarkQueue_Bounded_Push_Open(b *testing.B) {
	q := mustBounded(b, 1)
	q.Push(0, queue.NonBlocking)
	b.ReportAllocs()
	b.ResetTimer()

	// Full, so every call takes the lock and returns
	var r queue.Result
	for i := 0; i < b.N; i++ {
		r = q.Push(i, queue.NonBlocking)
	}
	sinkResult = r
}

func BenchmarkQueue_Bounded_Push_Closed(b *testing.B) {
	benchPushClosed(b, mustBounded(b, 1), queue.NonBlocking)
}

func BenchmarkQueue_Bounded_Push_Closed_Blocking(b *testing.B) {
	benchPushClosed(b, mustBounded(b, 1), queue.Blocking)
}

func BenchmarkQueue_Channel_Push_Closed(b *testing.B) {
	benchPushClosed(b, mustChannel(b, 1), queue.NonBlocking)
}

func BenchmarkQueue_Bounded_Pop_Closed_Parallel(b *testing.B) {
	q := mustBounded(b, 1)
	q.Close()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		var r queue.Result
		for pb.Next() {
			_, r = q.Pop(queue.Blocking)
		}
		sinkResult = r
	})
}

func BenchmarkQueue_Bounded_IsClosed(b *testing.B) {
	q := mustBounded(b, 1)
	q.Close()
	b.ReportAllocs()
	b.ResetTimer()

	var closed bool
	for i := 0; i < b.N; i++ {
		closed = q.IsClosed()
	}
	sinkBool = closed
}

// Blocking handoff: one producer, one consumer, capacity 1

func benchHandoff(b *testing.B, q queue.Queue[int]) {
	b.ReportAllocs()
	b.ResetTimer()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var val int
		for i := 0; i < b.N; i++ {
			val, _ = q.Pop(queue.Blocking)
		}
		sinkInt = val
	}()
	for i := 0; i < b.N; i++ {
		q.Push(i, queue.Blocking)
	}
	wg.Wait()
}

func BenchmarkQueue_Bounded_Handoff(b *testing.B) {
	benchHandoff(b, mustBounded(b, 1))
}

func BenchmarkQueue_Channel_Handoff(b *testing.B) {
	benchHandoff(b, mustChannel(b, 1))
}

// ============================================================================
// MPSC: N producers → 1 consumer, compared with go-lock-free-ring
// ============================================================================

func benchMPSC(b *testing.B, q queue.Queue[int]) {
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				q.Pop(queue.NonBlocking)
			}
		}
	}()

	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			for q.Push(i, queue.NonBlocking) != queue.Ok {
			}
			i++
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}

func BenchmarkQueue_MPSC_Bounded(b *testing.B) {
	benchMPSC(b, mustBounded(b, 1024))
}

func BenchmarkQueue_MPSC_Channel(b *testing.B) {
	benchMPSC(b, mustChannel(b, 1024))
}

func BenchmarkQueue_MPSC_ShardedRing(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 4)
	if err != nil {
		b.Fatal(err)
	}
	done := make(chan struct{})
	consumerDone := make(chan struct{})

	go func() {
		defer close(consumerDone)
		for {
			select {
			case <-done:
				return
			default:
				r.TryRead()
			}
		}
	}()

	var producerID atomic.Uint64
	b.SetParallelism(4)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		pid := producerID.Add(1) - 1
		i := 0
		for pb.Next() {
			for !r.Write(pid, i) {
			}
			i++
		}
	})

	b.StopTimer()
	close(done)
	<-consumerDone
}
