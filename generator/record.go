package generator

import (
	"encoding/binary"
	"net"

	"github.com/insomniacslk/dhcp/dhcpv4"
)

// BOOTP/DHCP header offsets, RFC 2131 section 2.
const (
	offsetOp      = 0
	offsetHtype   = 1
	offsetHlen    = 2
	offsetHops    = 3
	offsetXid     = 4
	offsetSecs    = 8
	offsetFlags   = 10
	offsetCiaddr  = 12
	offsetYiaddr  = 16
	offsetSiaddr  = 20
	offsetGiaddr  = 24
	offsetChaddr  = 28
	offsetSname   = 44
	offsetFile    = 108
	offsetCookie  = 236
	offsetOptions = 240
)

const (
	// RecordLen is the smallest message a DHCP peer must accept: the 236 byte
	// fixed header plus a 312 byte options field (cookie included).
	RecordLen  = 548
	OptionsLen = RecordLen - offsetOptions

	chaddrLen = offsetSname - offsetChaddr
)

const (
	opBootRequest   = 1
	htypeEthernet   = 1
	hlenEthernet    = 6
	flagBroadcast   = 0x8000
	magicCookie     = 0x63825363
	optMessageType  = 53
	msgTypeDiscover = 1
	optEnd          = 255
)

var discoverOptions = [4]byte{optMessageType, 1, msgTypeDiscover, optEnd}

// Record is a DHCPDISCOVER in wire format. Workers hand it to the socket as
// is, so the layout has to stay byte exact.
type Record [RecordLen]byte

// reset turns r into a Discover with no client identity.
func (r *Record) reset() {
	*r = Record{}

	r[offsetOp] = opBootRequest
	r[offsetHtype] = htypeEthernet
	r[offsetHlen] = hlenEthernet
	binary.BigEndian.PutUint16(r[offsetFlags:], flagBroadcast)
	binary.BigEndian.PutUint32(r[offsetCookie:], magicCookie)
	copy(r[offsetOptions:], discoverOptions[:])
}

func (r *Record) Op() byte {
	return r[offsetOp]
}

func (r *Record) Xid() uint32 {
	return binary.BigEndian.Uint32(r[offsetXid:])
}

func (r *Record) SetXid(xid uint32) {
	binary.BigEndian.PutUint32(r[offsetXid:], xid)
}

func (r *Record) Flags() uint16 {
	return binary.BigEndian.Uint16(r[offsetFlags:])
}

func (r *Record) Broadcast() bool {
	return r.Flags()&flagBroadcast != 0
}

// ClientHWAddr returns a copy of the client MAC.
func (r *Record) ClientHWAddr() net.HardwareAddr {
	mac := make(net.HardwareAddr, hlenEthernet)
	copy(mac, r[offsetChaddr:])
	return mac
}

func (r *Record) SetClientHWAddr(mac net.HardwareAddr) {
	copy(r[offsetChaddr:offsetChaddr+chaddrLen], mac)
}

// Options returns the options region that follows the magic cookie.
func (r *Record) Options() []byte {
	return r[offsetOptions:]
}

func (r *Record) Bytes() []byte {
	return r[:]
}

// Decode parses a copy of the record with a full DHCPv4 parser.
func (r *Record) Decode() (*dhcpv4.DHCPv4, error) {
	b := make([]byte, RecordLen)
	copy(b, r[:])
	return dhcpv4.FromBytes(b)
}
