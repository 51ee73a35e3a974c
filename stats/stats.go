package stats

import (
	"fmt"
	"sync/atomic"
)

// Counter collects sends between reporter ticks. Workers add whole batches so
// the cache line is touched as rarely as possible.
type Counter struct {
	pending atomic.Uint64
}

func (c *Counter) Add(n uint64) {
	c.pending.Add(n)
}

// Drain returns everything added since the last Drain and zeroes the counter.
func (c *Counter) Drain() uint64 {
	return c.pending.Swap(0)
}

type Report struct {
	Total       uint64  `json:"total"`
	Rate        float64 `json:"rate_per_second"`
	AverageRate float64 `json:"average_rate_per_second"`
	Elapsed     float64 `json:"elapsed_seconds"`
}

func (r Report) String() string {
	return fmt.Sprintf("Packets sent: %.2f, Rate: %.2f pps, Avg: %.2f pps", float64(r.Total), r.Rate, r.AverageRate)
}
