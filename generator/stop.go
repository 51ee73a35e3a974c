package generator

import (
	"sync"
	"sync/atomic"
)

// StopSignal is set once and never cleared. Workers poll Stopped on every
// iteration; anything that sleeps waits on Done instead.
type StopSignal struct {
	stopped atomic.Bool
	once    sync.Once
	done    chan struct{}
}

func NewStopSignal() *StopSignal {
	return &StopSignal{done: make(chan struct{})}
}

// Stop reports whether this call was the one that set the signal.
func (s *StopSignal) Stop() bool {
	first := false

	s.once.Do(func() {
		s.stopped.Store(true)
		close(s.done)
		first = true
	})

	return first
}

func (s *StopSignal) Stopped() bool {
	return s.stopped.Load()
}

func (s *StopSignal) Done() <-chan struct{} {
	return s.done
}
