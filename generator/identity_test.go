package generator_test

import (
	"sync"
	"testing"

	"github.com/ipchama/dstorm/generator"
	"github.com/stretchr/testify/assert"
)

func TestIdentity_HardwareAddr(t *testing.T) {
	id := generator.NewIdentity(1)

	for i := 0; i < 10000; i++ {
		mac := id.HardwareAddr()

		if len(mac) != 6 {
			t.Fatalf("MAC %v has length %d", mac, len(mac))
		}

		if mac[0] != 0x52 || mac[1] != 0x54 || mac[2] != 0x00 {
			t.Fatalf("MAC %v does not carry the vendor prefix", mac)
		}

		if mac[3]&0x80 != 0 {
			t.Fatalf("MAC %v has the top bit of byte 3 set", mac)
		}
	}
}

func TestIdentity_Xid(t *testing.T) {
	id := generator.NewIdentity(1)

	seen := make(map[uint32]struct{})
	for i := 0; i < 1000; i++ {
		seen[id.Xid()] = struct{}{}
	}

	// Collisions are allowed, just not many of them.
	assert.Greater(t, len(seen), 990)
}

func TestIdentity_ConcurrentOwners(t *testing.T) {
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()

			id := generator.NewIdentity(seed)
			for i := 0; i < 1000; i++ {
				if mac := id.HardwareAddr(); mac[3] > 127 {
					t.Errorf("MAC %v has byte 3 out of range", mac)
					return
				}
			}
		}(int64(w))
	}

	wg.Wait()
}

func TestIdentity_Refresh(t *testing.T) {
	pool, err := generator.NewPool(1)
	assert.NoError(t, err)

	id := generator.NewIdentity(42)
	pool.Initialize(id)

	r := pool.At(0)
	mac, xid := r.ClientHWAddr(), r.Xid()

	id.Refresh(r)

	assert.Equal(t, []byte{0x52, 0x54, 0x00}, []byte(r.ClientHWAddr()[:3]))
	assert.False(t, mac.String() == r.ClientHWAddr().String() && xid == r.Xid())
	assert.Equal(t, []byte{53, 1, 1, 255}, r.Options()[:4])
}
