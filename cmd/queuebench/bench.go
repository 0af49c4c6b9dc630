package main

import (
	"fmt"
	"math/bits"
	"runtime"
	"sync/atomic"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"
	"golang.org/x/sync/errgroup"

	"github.com/randomizedcoder/msgqueue/internal/cancel"
	"github.com/randomizedcoder/msgqueue/internal/queue"
	"github.com/randomizedcoder/msgqueue/internal/tick"
)

type result struct {
	name     string
	pushed   int64
	consumed int64
	buffered int64
	elapsed  time.Duration
}

func (r result) opsPerSec() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.consumed) / r.elapsed.Seconds()
}

type benchInfo struct {
	name string
	run  func(cfg *Config) (result, error)
}

func benches() []benchInfo {
	return []benchInfo{
		{"Channel/NonBlocking", func(cfg *Config) (result, error) {
			q, err := queue.NewChannel[int](cfg.Size)
			if err != nil {
				return result{}, err
			}
			return benchQueue("Channel/NonBlocking", q, queue.NonBlocking, cfg)
		}},
		{"Channel/Blocking", func(cfg *Config) (result, error) {
			q, err := queue.NewChannel[int](cfg.Size)
			if err != nil {
				return result{}, err
			}
			return benchQueue("Channel/Blocking", q, queue.Blocking, cfg)
		}},
		{"Bounded/NonBlocking", func(cfg *Config) (result, error) {
			q, err := queue.New[int](cfg.Size)
			if err != nil {
				return result{}, err
			}
			return benchQueue("Bounded/NonBlocking", q, queue.NonBlocking, cfg)
		}},
		{"Bounded/Blocking", func(cfg *Config) (result, error) {
			q, err := queue.New[int](cfg.Size)
			if err != nil {
				return result{}, err
			}
			return benchQueue("Bounded/Blocking", q, queue.Blocking, cfg)
		}},
		{"ShardedRing/MPSC", benchRing},
	}
}

// consume pops from q until stop fires and the queue reads Empty, or until
// q is closed. After stop it switches to NonBlocking so it can see Empty
// instead of parking on a queue nobody will fill again.
func consume(q queue.Queue[int], policy queue.Policy, stop cancel.Canceler) int64 {
	var n int64
	for {
		p := policy
		stopped := stop.Done()
		if stopped {
			p = queue.NonBlocking
		}
		_, r := q.Pop(p)
		switch r {
		case queue.Ok:
			n++
		case queue.Closed:
			return n
		case queue.Empty:
			if stopped {
				return n
			}
		}
	}
}

// benchQueue starts consumers first, runs producers until their deadline
// expires, then lets consumers drain. Close is only there to release a
// consumer still parked in a blocking Pop once the queue is empty.
func benchQueue(name string, q queue.Queue[int], policy queue.Policy, cfg *Config) (result, error) {
	stop := cancel.NewAtomic()
	var pushed, consumed atomic.Int64

	var producers, consumers errgroup.Group
	for c := 0; c < cfg.Consumers; c++ {
		consumers.Go(func() error {
			consumed.Add(consume(q, policy, stop))
			return nil
		})
	}

	start := time.Now()
	for p := 0; p < cfg.Producers; p++ {
		producers.Go(func() error {
			var n int64
			defer func() { pushed.Add(n) }()
			deadline := tick.NewDeadline(cfg.Duration, cfg.Every)
			for i := 0; !deadline.Expired(); i++ {
				switch q.Push(i, policy) {
				case queue.Ok:
					n++
				case queue.Closed:
					return fmt.Errorf("producer %d: queue closed early", p)
				}
			}
			return nil
		})
	}

	err := producers.Wait()
	stop.Cancel()
	for q.Len() > 0 {
		runtime.Gosched()
	}
	elapsed := time.Since(start)
	q.Close()
	if cerr := consumers.Wait(); err == nil {
		err = cerr
	}

	return result{
		name:     name,
		pushed:   pushed.Load(),
		consumed: consumed.Load(),
		buffered: int64(q.Len()),
		elapsed:  elapsed,
	}, err
}

// ringShards rounds the producer count up to the power of two the ring needs.
func ringShards(producers int) uint64 {
	if producers <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(producers-1))
}

// benchRing drives the lock-free sharded ring: a shard per producer and a
// single consumer, since the ring only supports one reader.
func benchRing(cfg *Config) (result, error) {
	r, err := ring.NewShardedRing(uint64(cfg.Size), ringShards(cfg.Producers))
	if err != nil {
		return result{}, fmt.Errorf("failed to create sharded ring: %w", err)
	}

	stop := cancel.NewAtomic()
	var pushed atomic.Int64
	var consumed int64
	var producers, consumer errgroup.Group

	// TryRead scans every shard, so one miss after stop means the ring is empty.
	consumer.Go(func() error {
		for {
			stopped := stop.Done()
			if _, ok := r.TryRead(); ok {
				consumed++
				continue
			}
			if stopped {
				return nil
			}
		}
	})

	start := time.Now()
	for p := 0; p < cfg.Producers; p++ {
		pid := uint64(p)
		producers.Go(func() error {
			var n int64
			defer func() { pushed.Add(n) }()
			deadline := tick.NewDeadline(cfg.Duration, cfg.Every)
			for i := 0; !deadline.Expired(); i++ {
				if r.Write(pid, i) {
					n++
				}
			}
			return nil
		})
	}

	err = producers.Wait()
	stop.Cancel()
	if cerr := consumer.Wait(); err == nil {
		err = cerr
	}
	elapsed := time.Since(start)

	return result{name: "ShardedRing/MPSC", pushed: pushed.Load(), consumed: consumed, elapsed: elapsed}, err
}
