package generator

import (
	"fmt"
)

// Pool is the fixed set of records every worker sends from.
//
// Nothing here is locked. A worker only rewrites the chaddr and xid of the
// slot it is on, and when two workers land on the same slot their writes may
// interleave. The worst outcome is one odd looking packet on the wire, which
// is accepted in exchange for a contention free hot path.
type Pool struct {
	records []Record
}

func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", size)
	}

	return &Pool{records: make([]Record, size)}, nil
}

// Initialize writes a fresh Discover into every slot. It must finish before
// any worker is started.
func (p *Pool) Initialize(id *Identity) {
	for i := range p.records {
		r := &p.records[i]
		r.reset()
		id.Refresh(r)
	}
}

func (p *Pool) Len() int {
	return len(p.records)
}

func (p *Pool) At(i int) *Record {
	return &p.records[i]
}
