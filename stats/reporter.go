package stats

import (
	"encoding/json"
	"sync"
	"time"
)

type Reporter struct {
	counter  *Counter
	interval time.Duration

	addStats func(string) bool
	addError func(error) bool

	mux   sync.RWMutex
	start time.Time
	last  Report
}

func NewReporter(c *Counter, interval time.Duration, statsFunc func(string) bool, errFunc func(error) bool) *Reporter {
	if interval <= 0 {
		interval = time.Second
	}

	r := Reporter{
		counter:  c,
		interval: interval,
		addStats: statsFunc,
		addError: errFunc,
	}

	return &r
}

// Run reports once per interval until done is closed. Whatever arrives after
// the last tick is not reported.
func (r *Reporter) Run(done <-chan struct{}) {

	r.mux.Lock()
	r.start = time.Now()
	r.mux.Unlock()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			r.addStats(r.tick(now).String())
		}
	}
}

func (r *Reporter) tick(now time.Time) Report {
	n := r.counter.Drain()

	r.mux.Lock()
	defer r.mux.Unlock()

	r.last.Total += n
	r.last.Rate = float64(n) / r.interval.Seconds()
	r.last.Elapsed = now.Sub(r.start).Seconds()

	if r.last.Elapsed > 0 {
		r.last.AverageRate = float64(r.last.Total) / r.last.Elapsed
	}

	packetsSent.Add(float64(n))
	packetRate.Set(r.last.Rate)
	packetAverageRate.Set(r.last.AverageRate)

	return r.last
}

func (r *Reporter) Snapshot() Report {
	r.mux.RLock()
	defer r.mux.RUnlock()

	return r.last
}

func (r *Reporter) String() string {

	if jsonData, err := json.MarshalIndent(r.Snapshot(), "", "  "); err != nil {
		r.addError(err)
		return ""
	} else {
		return string(jsonData)
	}
}
