package vmc

import (
	"context"
	"io"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// DefaultAddr is the address VMC performers send to and marionettes listen on.
const DefaultAddr = "127.0.0.1:39539"

// Transport sends and receives whole datagrams. Performer only calls
// SendDatagram and Marionette only calls ReceiveDatagram.
type Transport interface {
	// SendDatagram transmits b as one datagram. It returns ctx.Err() if ctx
	// is done before the datagram was handed to the network.
	SendDatagram(ctx context.Context, b []byte) error
	// ReceiveDatagram blocks until a datagram arrives or ctx is done. The
	// returned slice is owned by the caller.
	ReceiveDatagram(ctx context.Context) ([]byte, net.Addr, error)
	Close() error
}

// aLongTimeAgo is a deadline in the past, used to interrupt blocking I/O.
var aLongTimeAgo = time.Unix(1, 0)

// PacketConnTransport is a Transport over a net.PacketConn prepared by the caller.
type PacketConnTransport struct {
	conn net.PacketConn
	peer net.Addr
	pool sync.Pool
}

// NewPacketConnTransport returns a transport over conn. Datagrams are sent to
// peer, or with conn's Write method if peer is nil, which requires a
// connected socket such as one returned by net.DialUDP.
func NewPacketConnTransport(conn net.PacketConn, peer net.Addr, opt ...Option) *PacketConnTransport {
	size := newOptions(opt).maxDatagramSize
	return &PacketConnTransport{
		conn: conn,
		peer: peer,
		pool: sync.Pool{
			New: func() interface{} {
				b := make([]byte, size)
				return &b
			},
		},
	}
}

// Dial returns a transport that sends to the UDP address addr.
func Dial(addr string, opt ...Option) (*PacketConnTransport, error) {
	a, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "vmc: dial")
	}

	conn, err := net.DialUDP("udp", nil, a)
	if err != nil {
		return nil, errors.Wrap(err, "vmc: dial")
	}
	return NewPacketConnTransport(conn, nil, opt...), nil
}

// Listen returns a transport that receives on the UDP address addr.
func Listen(addr string, opt ...Option) (*PacketConnTransport, error) {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "vmc: listen")
	}
	return NewPacketConnTransport(conn, nil, opt...), nil
}

// LocalAddr returns the local address of the underlying connection.
func (t *PacketConnTransport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

// SendDatagram implements Transport. ctx is only checked before the write:
// UDP writes don't block on the peer, and the write deadline is shared by
// every concurrent sender.
func (t *PacketConnTransport) SendDatagram(ctx context.Context, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	if t.peer != nil {
		_, err = t.conn.WriteTo(b, t.peer)
	} else if w, ok := t.conn.(io.Writer); ok {
		_, err = w.Write(b)
	} else {
		return errors.New("vmc: send on unconnected transport without peer")
	}
	return err
}

// ReceiveDatagram implements Transport.
func (t *PacketConnTransport) ReceiveDatagram(ctx context.Context) ([]byte, net.Addr, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	defer interruptOnDone(ctx, t.conn.SetReadDeadline)()

	buf := t.pool.Get().(*[]byte)
	defer t.pool.Put(buf)

	n, addr, err := t.conn.ReadFrom(*buf)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, err
	}

	data := make([]byte, n)
	copy(data, *buf)
	return data, addr, nil
}

// Close closes the underlying connection.
func (t *PacketConnTransport) Close() error {
	return t.conn.Close()
}

// interruptOnDone moves the deadline into the past once ctx is done, which
// unblocks pending I/O. The returned func stops watching ctx and clears the
// deadline if it was moved.
func interruptOnDone(ctx context.Context, setDeadline func(time.Time) error) func() {
	fired := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		_ = setDeadline(aLongTimeAgo)
		close(fired)
	})
	return func() {
		if !stop() {
			<-fired
			_ = setDeadline(time.Time{})
		}
	}
}
