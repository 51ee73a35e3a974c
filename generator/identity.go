package generator

import (
	"math/rand"
	"net"
)

// VendorPrefix is the OUI handed out by QEMU/KVM, so generated clients look
// like ordinary virtual machines.
var VendorPrefix = [3]byte{0x52, 0x54, 0x00}

// Identity produces client MACs and transaction ids. It is not safe for
// concurrent use; every worker gets its own.
type Identity struct {
	rand *rand.Rand
}

func NewIdentity(seed int64) *Identity {
	return &Identity{
		rand: rand.New(rand.NewSource(seed)),
	}
}

func (i *Identity) putHardwareAddr(b []byte) {
	copy(b, VendorPrefix[:])
	// Top bit stays clear, keeping us away from the I/G and U/L bit games.
	b[3] = byte(i.rand.Intn(128))
	b[4] = byte(i.rand.Intn(256))
	b[5] = byte(i.rand.Intn(256))
}

func (i *Identity) HardwareAddr() net.HardwareAddr {
	mac := make(net.HardwareAddr, hlenEthernet)
	i.putHardwareAddr(mac)
	return mac
}

func (i *Identity) Xid() uint32 {
	return i.rand.Uint32()
}

// Refresh gives r a new client MAC and xid without allocating.
func (i *Identity) Refresh(r *Record) {
	i.putHardwareAddr(r[offsetChaddr : offsetChaddr+hlenEthernet])
	r.SetXid(i.Xid())
}
