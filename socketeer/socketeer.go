package socketeer

import (
	"errors"
	"fmt"

	"github.com/ipchama/dstorm/config"
	"golang.org/x/sys/unix"
)

// BroadcastSocketeer is a plain UDP socket allowed to send to the limited
// broadcast address. It never binds a local address; the kernel picks the
// source when the first datagram goes out.
type BroadcastSocketeer struct {
	socketFd int
	options  *config.SocketeerOptions
	target   unix.SockaddrInet4
}

func NewBroadcastSocketeer(o *config.SocketeerOptions) *BroadcastSocketeer {

	s := BroadcastSocketeer{
		socketFd: -1,
		options:  o,
	}

	return &s
}

func (s *BroadcastSocketeer) Init() error {
	var err error

	ip := s.options.TargetIP.To4()

	if ip == nil {
		return fmt.Errorf("target %v is not an IPv4 address", s.options.TargetIP)
	}

	copy(s.target.Addr[:], ip)
	s.target.Port = s.options.TargetPort

	if s.socketFd, err = unix.Socket(unix.AF_INET, unix.SOCK_DGRAM, unix.IPPROTO_UDP); err != nil {
		return err
	}

	if err = unix.SetsockoptInt(s.socketFd, unix.SOL_SOCKET, unix.SO_BROADCAST, 1); err != nil {
		s.Close()
		return err
	}

	if s.options.InterfaceName != "" {
		if err = unix.BindToDevice(s.socketFd, s.options.InterfaceName); err != nil {
			s.Close()
			return err
		}
	}

	return nil
}

func (s *BroadcastSocketeer) Send(payload []byte) error {
	return unix.Sendto(s.socketFd, payload, 0, &s.target)
}

func (s *BroadcastSocketeer) Close() error {
	if s.socketFd < 0 {
		return errors.New("socket is not open")
	}

	err := unix.Close(s.socketFd)
	s.socketFd = -1

	return err
}
