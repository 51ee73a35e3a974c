package generator

import (
	"errors"
	"fmt"

	"github.com/ipchama/dstorm/stats"
)

// Sender transmits one complete record. Implementations are owned by a
// single worker.
type Sender interface {
	Send(payload []byte) error
	Close() error
}

// Dialer opens the Sender for one worker.
type Dialer func() (Sender, error)

type WorkerInitParams struct {
	Id              int
	Pool            *Pool
	Counter         *stats.Counter
	StopSignal      *StopSignal
	Dial            Dialer
	Seed            int64
	RefreshInterval int
	FlushBatch      int
	LogFunc         func(string) bool
	ErrFunc         func(error) bool
}

type Worker struct {
	id         int
	pool       *Pool
	identity   *Identity
	counter    *stats.Counter
	stopSignal *StopSignal
	dial       Dialer

	refreshInterval uint64
	flushBatch      uint64

	addLog   func(string) bool
	addError func(error) bool

	index      int
	iterations uint64
	pending    uint64
	sent       uint64
}

func NewWorker(wip WorkerInitParams) (*Worker, error) {
	if wip.Pool == nil || wip.Counter == nil || wip.StopSignal == nil || wip.Dial == nil {
		return nil, errors.New("worker needs a pool, counter, stop signal and dialer")
	}

	if wip.RefreshInterval <= 0 || wip.FlushBatch <= 0 {
		return nil, fmt.Errorf("refresh interval and flush batch must be positive, got %d and %d", wip.RefreshInterval, wip.FlushBatch)
	}

	if wip.LogFunc == nil {
		wip.LogFunc = func(string) bool { return false }
	}

	if wip.ErrFunc == nil {
		wip.ErrFunc = func(error) bool { return false }
	}

	w := Worker{
		id:              wip.Id,
		pool:            wip.Pool,
		identity:        NewIdentity(wip.Seed),
		counter:         wip.Counter,
		stopSignal:      wip.StopSignal,
		dial:            wip.Dial,
		refreshInterval: uint64(wip.RefreshInterval),
		flushBatch:      uint64(wip.FlushBatch),
		addLog:          wip.LogFunc,
		addError:        wip.ErrFunc,
		index:           wip.Id % wip.Pool.Len(),
	}

	return &w, nil
}

// Run sends until the stop signal is set. A worker that can't get its socket
// gives up alone; transmit errors are reported and the loop carries on.
//
// Packets still pending when the loop exits are never flushed to the counter.
func (w *Worker) Run() {

	sender, err := w.dial()

	if err != nil {
		w.addError(fmt.Errorf("worker %d: setup failed: %w", w.id, err))
		return
	}

	w.addLog(fmt.Sprintf("Worker %d starting at pool index %d.", w.id, w.index))

	for !w.stopSignal.Stopped() {
		w.sendNext(sender)
	}

	if err := sender.Close(); err != nil {
		w.addError(fmt.Errorf("worker %d: %w", w.id, err))
	}
}

func (w *Worker) sendNext(s Sender) {
	r := w.pool.At(w.index)

	if w.iterations%w.refreshInterval == 0 {
		w.identity.Refresh(r)
	}
	w.iterations++

	if err := s.Send(r[:]); err != nil {
		w.addError(fmt.Errorf("worker %d: send failed: %w", w.id, err))
	} else {
		w.sent++

		if w.pending++; w.pending == w.flushBatch {
			w.counter.Add(w.pending)
			w.pending = 0
		}
	}

	if w.index++; w.index == w.pool.Len() {
		w.index = 0
	}
}

func (w *Worker) Id() int {
	return w.id
}

// Index, Pending and Sent are only meaningful once Run has returned.
func (w *Worker) Index() int {
	return w.index
}

func (w *Worker) Pending() uint64 {
	return w.pending
}

func (w *Worker) Sent() uint64 {
	return w.sent
}
