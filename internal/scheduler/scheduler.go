// Package scheduler drives the periodic refresh: each timer fire
// spawns one worker for a fetch+compose cycle and immediately re-arms
// the timer, so slow cycles overlap rather than delay the next one.
// Finished frames are handed to the display through a marshal function
// that the caller wires to the interaction thread.
package scheduler

import (
	"image"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Scheduler owns the refresh timer and the lifecycle of cycle workers.
// Fetch and Compose run on the worker goroutine; Present must marshal
// the frame to the interaction thread itself — the scheduler never
// touches the displayed frame directly.
type Scheduler struct {
	interval time.Duration
	fetch    func() (text, author string, imageData []byte)
	compose  func(imageData []byte, text, author string) (image.Image, error)
	present  func(image.Image)

	running atomic.Bool
	mu      sync.Mutex
	timer   *time.Timer
}

// New creates a stopped Scheduler.
func New(
	interval time.Duration,
	fetch func() (string, string, []byte),
	compose func([]byte, string, string) (image.Image, error),
	present func(image.Image),
) *Scheduler {
	return &Scheduler{
		interval: interval,
		fetch:    fetch,
		compose:  compose,
		present:  present,
	}
}

// Start runs one immediate cycle and arms the periodic timer. Calling
// Start on a running scheduler does nothing.
func (s *Scheduler) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	go s.runCycle()
	s.arm()
}

// Stop clears the running flag and cancels the pending timer. In-flight
// cycles are left to finish; their hand-offs still apply.
func (s *Scheduler) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
}

func (s *Scheduler) arm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	s.timer = time.AfterFunc(s.interval, s.fire)
}

// fire spawns the next cycle and re-arms immediately, without waiting
// for the cycle to finish.
func (s *Scheduler) fire() {
	if !s.running.Load() {
		return
	}
	go s.runCycle()
	s.arm()
}

// runCycle is one fetch-then-compose-then-present iteration. Every
// failure ends the cycle with a log line and no visible effect; the
// previously displayed frame stays up.
func (s *Scheduler) runCycle() {
	id := uuid.NewString()[:8]
	defer func() {
		if r := recover(); r != nil {
			log.Printf("cycle %s: recovered from panic: %v", id, r)
		}
	}()

	text, author, data := s.fetch()
	if data == nil {
		log.Printf("cycle %s: no image data, keeping previous frame", id)
		return
	}

	frame, err := s.compose(data, text, author)
	if err != nil {
		log.Printf("cycle %s: compose failed: %v", id, err)
		return
	}

	s.present(frame)
	log.Printf("cycle %s: frame handed off", id)
}
