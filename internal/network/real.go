//go:build unix

package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"

	"golang.org/x/net/ipv4"
	"golang.org/x/sys/unix"
)

// RealUDPSocket wraps *net.UDPConn and polls its descriptor directly so a
// pending-datagram check never parks the goroutine.
type RealUDPSocket struct {
	conn *net.UDPConn
	raw  syscall.RawConn
}

// NewRealUDPSocket wraps an existing *net.UDPConn.
func NewRealUDPSocket(conn *net.UDPConn) (*RealUDPSocket, error) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return nil, fmt.Errorf("failed to get raw conn: %w", err)
	}
	return &RealUDPSocket{conn: conn, raw: raw}, nil
}

// ReadPending performs a non-blocking recv.
func (r *RealUDPSocket) ReadPending(b []byte) (n int, ok bool, err error) {
	var rerr error
	cerr := r.raw.Read(func(fd uintptr) bool {
		n, _, rerr = unix.Recvfrom(int(fd), b, unix.MSG_DONTWAIT|unix.MSG_TRUNC)
		return true
	})
	if cerr != nil {
		return 0, false, cerr
	}
	if rerr != nil {
		if errors.Is(rerr, unix.EAGAIN) || errors.Is(rerr, unix.EWOULDBLOCK) {
			return 0, false, nil
		}
		return 0, false, rerr
	}
	return n, true, nil
}

// WaitReadable polls the descriptor for input.
func (r *RealUDPSocket) WaitReadable(timeout time.Duration) (bool, error) {
	if timeout < 0 {
		timeout = 0
	}
	ms := int((timeout + time.Millisecond - 1) / time.Millisecond)
	var ready bool
	var perr error
	cerr := r.raw.Control(func(fd uintptr) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		for {
			var n int
			n, perr = unix.Poll(fds, ms)
			if errors.Is(perr, unix.EINTR) {
				continue
			}
			ready = n > 0 && fds[0].Revents&unix.POLLIN != 0
			return
		}
	})
	if cerr != nil {
		return false, cerr
	}
	return ready, perr
}

// WriteToUDP sends a datagram.
func (r *RealUDPSocket) WriteToUDP(b []byte, addr *net.UDPAddr) (int, error) {
	return r.conn.WriteToUDP(b, addr)
}

// SetReadBuffer sets the receive buffer size.
func (r *RealUDPSocket) SetReadBuffer(bytes int) error {
	return r.conn.SetReadBuffer(bytes)
}

// Close closes the UDP connection.
func (r *RealUDPSocket) Close() error {
	return r.conn.Close()
}

// LocalAddr returns the local network address.
func (r *RealUDPSocket) LocalAddr() net.Addr {
	return r.conn.LocalAddr()
}

// RealUDPSocketFactory implements UDPSocketFactory with the operating system.
type RealUDPSocketFactory struct{}

// NewRealUDPSocketFactory creates a new RealUDPSocketFactory.
func NewRealUDPSocketFactory() *RealUDPSocketFactory {
	return &RealUDPSocketFactory{}
}

// ListenUDP binds an exclusive unicast socket.
func (f *RealUDPSocketFactory) ListenUDP(network string, laddr *net.UDPAddr) (UDPSocket, error) {
	conn, err := net.ListenUDP(network, laddr)
	if err != nil {
		return nil, err
	}
	return wrap(conn)
}

// ListenMulticastUDP binds with SO_REUSEADDR so several processes on one host
// can share the group, then joins it.
func (f *RealUDPSocketFactory) ListenMulticastUDP(network string, ifi *net.Interface, group *net.UDPAddr) (UDPSocket, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			var serr error
			if err := c.Control(func(fd uintptr) {
				serr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			}); err != nil {
				return err
			}
			return serr
		},
	}
	pc, err := lc.ListenPacket(context.Background(), network, fmt.Sprintf(":%d", group.Port))
	if err != nil {
		return nil, err
	}
	conn := pc.(*net.UDPConn)

	p := ipv4.NewPacketConn(conn)
	if err := joinGroup(p, ifi, group); err != nil {
		conn.Close()
		return nil, err
	}
	if err := p.SetMulticastLoopback(true); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable multicast loopback: %w", err)
	}
	return wrap(conn)
}

func joinGroup(p *ipv4.PacketConn, ifi *net.Interface, group *net.UDPAddr) error {
	if ifi != nil {
		if err := p.JoinGroup(ifi, group); err != nil {
			return fmt.Errorf("failed to join %v on %s: %w", group.IP, ifi.Name, err)
		}
		return nil
	}
	ifaces, err := net.Interfaces()
	if err != nil {
		return fmt.Errorf("failed to list interfaces: %w", err)
	}
	joined := 0
	for i := range ifaces {
		if ifaces[i].Flags&net.FlagMulticast == 0 || ifaces[i].Flags&net.FlagUp == 0 {
			continue
		}
		if err := p.JoinGroup(&ifaces[i], group); err == nil {
			joined++
		}
	}
	if joined == 0 {
		if err := p.JoinGroup(nil, group); err != nil {
			return fmt.Errorf("failed to join %v: %w", group.IP, err)
		}
	}
	return nil
}

func wrap(conn *net.UDPConn) (UDPSocket, error) {
	s, err := NewRealUDPSocket(conn)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}
