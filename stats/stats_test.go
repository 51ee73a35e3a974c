package stats

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := &Counter{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Add(10000)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8*100*10000), c.Drain())
	assert.Equal(t, uint64(0), c.Drain())
}

func TestReport_String(t *testing.T) {
	r := Report{Total: 30000, Rate: 10000, AverageRate: 15000.456}

	assert.Equal(t, "Packets sent: 30000.00, Rate: 10000.00 pps, Avg: 15000.46 pps", r.String())
}

func TestReporter_Tick(t *testing.T) {
	c := &Counter{}
	r := NewReporter(c, time.Second, func(string) bool { return true }, func(error) bool { return true })

	start := time.Unix(1000, 0)
	r.start = start

	c.Add(10000)
	c.Add(10000)
	rep := r.tick(start.Add(time.Second))

	assert.Equal(t, uint64(20000), rep.Total)
	assert.Equal(t, 20000.0, rep.Rate)
	assert.Equal(t, 20000.0, rep.AverageRate)

	c.Add(10000)
	rep = r.tick(start.Add(2 * time.Second))

	assert.Equal(t, uint64(30000), rep.Total)
	assert.Equal(t, 10000.0, rep.Rate)
	assert.Equal(t, 15000.0, rep.AverageRate)
	assert.Equal(t, 2.0, rep.Elapsed)

	rep = r.tick(start.Add(3 * time.Second))

	assert.Equal(t, uint64(30000), rep.Total)
	assert.Equal(t, 0.0, rep.Rate)
	assert.Equal(t, rep, r.Snapshot())
	assert.Equal(t, uint64(0), c.Drain())
}

func TestReporter_RateUsesInterval(t *testing.T) {
	c := &Counter{}
	r := NewReporter(c, 5*time.Second, func(string) bool { return true }, func(error) bool { return true })

	start := time.Unix(1000, 0)
	r.start = start

	c.Add(50000)
	rep := r.tick(start.Add(5 * time.Second))

	assert.Equal(t, 10000.0, rep.Rate)
	assert.Equal(t, 10000.0, rep.AverageRate)
}

func TestReporter_Run(t *testing.T) {
	c := &Counter{}
	lines := make(chan string, 10)

	r := NewReporter(c, 20*time.Millisecond, func(s string) bool {
		select {
		case lines <- s:
		default:
		}
		return true
	}, func(error) bool { return true })

	c.Add(10000)

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		r.Run(done)
		close(finished)
	}()

	select {
	case line := <-lines:
		assert.Contains(t, line, "Packets sent: 10000.00")
	case <-time.After(2 * time.Second):
		t.Fatal("Reporter produced no line.")
	}

	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Reporter did not stop.")
	}

	var rep Report
	require.NoError(t, json.Unmarshal([]byte(r.String()), &rep))
	assert.Equal(t, uint64(10000), rep.Total)
}
