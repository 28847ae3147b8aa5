package network

import (
	"net"
	"sync"
	"time"
)

// MockUDPSocket implements UDPSocket for testing.
type MockUDPSocket struct {
	mu sync.Mutex
	// Packets holds the datagrams to return from ReadPending.
	Packets [][]byte
	// ReadIndex tracks the current position in Packets.
	ReadIndex int
	// Written records every datagram passed to WriteToUDP.
	Written []MockWrite
	// Waits records every timeout passed to WaitReadable.
	Waits []time.Duration
	// Closed indicates whether Close was called.
	Closed bool
	// ReadBufferSize holds the value set by SetReadBuffer.
	ReadBufferSize int
	// LocalAddress is returned by LocalAddr.
	LocalAddress *net.UDPAddr
	// ReadError is returned on the next ReadPending call if set.
	ReadError error
	// WriteError is returned by WriteToUDP if set.
	WriteError error
	// OnWait, if set, runs inside WaitReadable before the queue is checked so a
	// test can deliver a datagram "during" the wait.
	OnWait func(m *MockUDPSocket)
}

// MockWrite is one recorded WriteToUDP call.
type MockWrite struct {
	Data []byte
	Addr *net.UDPAddr
}

// NewMockUDPSocket creates a new MockUDPSocket with the given datagrams.
func NewMockUDPSocket(packets ...[]byte) *MockUDPSocket {
	return &MockUDPSocket{
		Packets: packets,
		LocalAddress: &net.UDPAddr{
			IP:   net.ParseIP("127.0.0.1"),
			Port: 10000,
		},
	}
}

// Push queues another datagram.
func (m *MockUDPSocket) Push(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Packets = append(m.Packets, data)
}

// ReadPending returns the next queued datagram.
func (m *MockUDPSocket) ReadPending(b []byte) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Closed {
		return 0, false, net.ErrClosed
	}
	if m.ReadError != nil {
		err := m.ReadError
		m.ReadError = nil
		return 0, false, err
	}
	if m.ReadIndex >= len(m.Packets) {
		return 0, false, nil
	}
	pkt := m.Packets[m.ReadIndex]
	m.ReadIndex++
	copy(b, pkt)
	return len(pkt), true, nil
}

// WaitReadable records the timeout and reports whether a datagram is queued.
func (m *MockUDPSocket) WaitReadable(timeout time.Duration) (bool, error) {
	m.mu.Lock()
	m.Waits = append(m.Waits, timeout)
	hook := m.OnWait
	m.mu.Unlock()
	if hook != nil {
		hook(m)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ReadIndex < len(m.Packets), nil
}

// WriteToUDP records the datagram.
func (m *MockUDPSocket) WriteToUDP(b []byte, addr *net.UDPAddr) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteError != nil {
		return 0, m.WriteError
	}
	m.Written = append(m.Written, MockWrite{Data: append([]byte(nil), b...), Addr: addr})
	return len(b), nil
}

// Writes returns a copy of the recorded writes.
func (m *MockUDPSocket) Writes() []MockWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockWrite(nil), m.Written...)
}

// SetReadBuffer records the buffer size.
func (m *MockUDPSocket) SetReadBuffer(bytes int) error {
	m.ReadBufferSize = bytes
	return nil
}

// Close marks the socket as closed.
func (m *MockUDPSocket) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// LocalAddr returns the mock local address.
func (m *MockUDPSocket) LocalAddr() net.Addr {
	return m.LocalAddress
}

// MockUDPSocketFactory implements UDPSocketFactory for testing. Sockets are
// handed out by port; a port listed in Refuse fails to bind.
type MockUDPSocketFactory struct {
	mu      sync.Mutex
	Sockets map[int]*MockUDPSocket
	Refuse  map[int]bool
	// ListenCalls records all bind attempts in order.
	ListenCalls []MockListenCall
}

// MockListenCall records a call to ListenUDP or ListenMulticastUDP.
type MockListenCall struct {
	Network   string
	Port      int
	Multicast bool
}

// NewMockUDPSocketFactory creates an empty factory.
func NewMockUDPSocketFactory() *MockUDPSocketFactory {
	return &MockUDPSocketFactory{
		Sockets: make(map[int]*MockUDPSocket),
		Refuse:  make(map[int]bool),
	}
}

// Socket returns the socket for port, creating it if needed.
func (f *MockUDPSocketFactory) Socket(port int) *MockUDPSocket {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.socketLocked(port)
}

func (f *MockUDPSocketFactory) socketLocked(port int) *MockUDPSocket {
	s, ok := f.Sockets[port]
	if !ok {
		s = NewMockUDPSocket()
		s.LocalAddress = &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: port}
		f.Sockets[port] = s
	}
	return s
}

func (f *MockUDPSocketFactory) listen(network string, port int, multicast bool) (UDPSocket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListenCalls = append(f.ListenCalls, MockListenCall{Network: network, Port: port, Multicast: multicast})
	if f.Refuse[port] {
		return nil, &net.OpError{Op: "listen", Net: network, Err: errAddrInUse{}}
	}
	return f.socketLocked(port), nil
}

// ListenUDP returns the mock socket for laddr's port.
func (f *MockUDPSocketFactory) ListenUDP(network string, laddr *net.UDPAddr) (UDPSocket, error) {
	return f.listen(network, laddr.Port, false)
}

// ListenMulticastUDP returns the mock socket for group's port.
func (f *MockUDPSocketFactory) ListenMulticastUDP(network string, _ *net.Interface, group *net.UDPAddr) (UDPSocket, error) {
	return f.listen(network, group.Port, true)
}

type errAddrInUse struct{}

func (errAddrInUse) Error() string { return "address already in use" }
