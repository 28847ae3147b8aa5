// Package network wraps the UDP sockets used by the control loop behind small
// interfaces so ingestion and transmission can be driven by mocks in tests.
package network

import (
	"net"
	"time"
)

// UDPSocket defines the UDP socket operations the control loop needs.
// Reads never block except WaitReadable, which is bounded by its timeout.
type UDPSocket interface {
	// ReadPending reads one datagram if one is queued. ok is false when nothing
	// is pending. n may exceed len(b) when the datagram was truncated.
	ReadPending(b []byte) (n int, ok bool, err error)

	// WaitReadable blocks until a datagram is queued or timeout elapses.
	WaitReadable(timeout time.Duration) (bool, error)

	// WriteToUDP sends one datagram to addr.
	WriteToUDP(b []byte, addr *net.UDPAddr) (int, error)

	// SetReadBuffer sets the size of the operating system's receive buffer.
	SetReadBuffer(bytes int) error

	// Close closes the socket.
	Close() error

	// LocalAddr returns the local network address.
	LocalAddr() net.Addr
}

// UDPSocketFactory creates UDP sockets.
type UDPSocketFactory interface {
	// ListenUDP binds a unicast socket.
	ListenUDP(network string, laddr *net.UDPAddr) (UDPSocket, error)

	// ListenMulticastUDP binds group's port with address reuse and joins the
	// group on ifi, or on every multicast-capable interface when ifi is nil.
	ListenMulticastUDP(network string, ifi *net.Interface, group *net.UDPAddr) (UDPSocket, error)
}

// LoopbackAddr returns 127.0.0.1:port.
func LoopbackAddr(port int) *net.UDPAddr {
	return &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: port}
}

// AnyAddr returns the wildcard address for port.
func AnyAddr(port int) *net.UDPAddr {
	return &net.UDPAddr{Port: port}
}
