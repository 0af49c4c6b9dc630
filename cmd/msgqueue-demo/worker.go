package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/msgqueue/internal/cancel"
	"github.com/randomizedcoder/msgqueue/internal/queue"
)

type readerMode int

const (
	readNonBlocking readerMode = iota
	readBlocking
	readMatch
)

func (m readerMode) String() string {
	switch m {
	case readNonBlocking:
		return "non_blocking"
	case readBlocking:
		return "blocking"
	default:
		return "match"
	}
}

// readerModeFor spreads readers evenly across the three ways of taking a
// message off the queue.
func readerModeFor(id int) readerMode {
	return readerMode(id % 3)
}

// resultCounts counts outcomes per queue.Result.
type resultCounts [queue.Closed + 1]atomic.Int64

func (c *resultCounts) add(r queue.Result) {
	if int(r) < len(c) {
		c[r].Add(1)
	}
}

func (c *resultCounts) get(r queue.Result) int64 {
	return c[r].Load()
}

func (c *resultCounts) snapshot() map[string]int64 {
	out := make(map[string]int64, len(c))
	for r := range c {
		if n := c[r].Load(); n > 0 {
			out[queue.Result(r).String()] = n
		}
	}
	return out
}

type tally struct {
	pushed resultCounts
	popped resultCounts
}

// pause sleeps a random delay within [MinDelay, MaxDelay]. It returns false
// if stop fired first.
func pause(cfg *Config, stop *cancel.ContextCanceler) bool {
	d := cfg.MinDelay
	if span := cfg.MaxDelay - cfg.MinDelay; span > 0 {
		d += rand.N(span + 1)
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-stop.Context().Done():
		return false
	}
}

type reader struct {
	id    int
	mode  readerMode
	q     *queue.Bounded[string]
	cfg   *Config
	stop  *cancel.ContextCanceler
	tally *tally
	log   *zap.SugaredLogger
}

func (r *reader) run() error {
	log := r.log.With("worker", "reader "+strconv.Itoa(r.id), "mode", r.mode.String())
	for !r.stop.Done() {
		if !pause(r.cfg, r.stop) {
			return nil
		}

		var (
			msg string
			res queue.Result
		)
		switch r.mode {
		case readNonBlocking:
			msg, res = r.q.Pop(queue.NonBlocking)
		case readBlocking:
			msg, res = r.q.Pop(queue.Blocking)
			if res == queue.Empty {
				return fmt.Errorf("reader %d: blocking pop returned %s", r.id, res)
			}
		default:
			msg, res = r.q.PopMatch(func(m string) bool { return m == r.cfg.Match })
		}
		r.tally.popped.add(res)

		if res == queue.Ok {
			log.Infow("popped", "message", msg)
		} else {
			log.Debugw("pop not successful", "result", res.String())
		}
	}
	return nil
}

type writer struct {
	id      int
	policy  queue.Policy
	message string
	q       *queue.Bounded[string]
	cfg     *Config
	stop    *cancel.ContextCanceler
	tally   *tally
	log     *zap.SugaredLogger
}

// newWriter alternates writers between policies: odd ids push their number
// without blocking, even ids push their name and wait for space.
func newWriter(id int, q *queue.Bounded[string], cfg *Config, stop *cancel.ContextCanceler, t *tally, log *zap.SugaredLogger) *writer {
	w := &writer{id: id, q: q, cfg: cfg, stop: stop, tally: t, log: log}
	if id%2 == 1 {
		w.policy = queue.NonBlocking
		w.message = strconv.Itoa(id)
	} else {
		w.policy = queue.Blocking
		w.message = "Writer " + strconv.Itoa(id)
	}
	return w
}

func (w *writer) run() error {
	log := w.log.With("worker", "writer "+strconv.Itoa(w.id), "mode", w.policy.String())
	for !w.stop.Done() {
		if !pause(w.cfg, w.stop) {
			return nil
		}

		res := w.q.Push(w.message, w.policy)
		if w.policy == queue.Blocking && res == queue.Full {
			return fmt.Errorf("writer %d: blocking push returned %s", w.id, res)
		}
		w.tally.pushed.add(res)

		if res == queue.Ok {
			log.Infow("push operation succeeded", "message", w.message)
		} else {
			log.Debugw("push not successful", "result", res.String())
		}
	}
	return nil
}
