package config

import (
	"net"
)

type SocketeerOptions struct {
	InterfaceName string
	TargetIP      net.IP
	TargetPort    int
}

func NewSocketeerOptions() *SocketeerOptions {
	return &SocketeerOptions{
		TargetIP:   net.IPv4bcast,
		TargetPort: 67,
	}
}
