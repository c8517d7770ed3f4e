package discovery

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"github.com/robgonnella/netsweep/internal/logger"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const (
	networkUnprivileged = "udp4"
	networkRaw          = "ip4:icmp"
)

// ICMPProber is an implementation of the Prober interface sending a single
// ICMP echo request. Unprivileged datagram sockets are tried first, falling
// back to raw sockets.
type ICMPProber struct {
	timeout time.Duration
	seq     atomic.Uint32
	raw     atomic.Bool
	log     logger.Logger
}

// NewICMPProber returns a new instance of ICMPProber
func NewICMPProber(timeout time.Duration) *ICMPProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &ICMPProber{
		timeout: timeout,
		log:     logger.New(),
	}
}

// Probe implements the Prober interface
func (p *ICMPProber) Probe(ctx context.Context, ip string) (*ProbeResult, error) {
	dst := net.ParseIP(ip).To4()

	if dst == nil {
		return nil, fmt.Errorf("invalid ipv4 address: %s", ip)
	}

	conn, network, err := p.listen()

	if err != nil {
		return nil, fmt.Errorf("failed to open icmp socket: %w", err)
	}

	defer conn.Close()

	id := os.Getpid() & 0xffff
	seq := int(p.seq.Add(1) & 0xffff)

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   id,
			Seq:  seq,
			Data: []byte("netsweep"),
		},
	}

	msgBytes, err := msg.Marshal(nil)

	if err != nil {
		return nil, fmt.Errorf("failed to marshal icmp message: %w", err)
	}

	var addr net.Addr = &net.IPAddr{IP: dst}

	if network == networkUnprivileged {
		addr = &net.UDPAddr{IP: dst}
	}

	deadline := time.Now().Add(p.timeout)

	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}

	start := time.Now()

	if _, err := conn.WriteTo(msgBytes, addr); err != nil {
		p.log.Debug().Err(err).Str("ip", ip).Msg("failed to send echo request")
		return &ProbeResult{Alive: false}, nil
	}

	reply := make([]byte, 1500)

	for {
		n, peer, err := conn.ReadFrom(reply)

		if err != nil {
			// deadline exceeded
			return &ProbeResult{Alive: false}, nil
		}

		if !matchEchoReply(reply[:n], peer, dst, id, seq, network) {
			continue
		}

		return &ProbeResult{Alive: true, ResponseTime: time.Since(start)}, nil
	}
}

// matchEchoReply reports whether raw is the echo reply from dst to the
// request identified by id and seq
func matchEchoReply(raw []byte, peer net.Addr, dst net.IP, id, seq int, network string) bool {
	rm, err := icmp.ParseMessage(ipv4.ICMPTypeEchoReply.Protocol(), raw)

	if err != nil || rm.Type != ipv4.ICMPTypeEchoReply {
		return false
	}

	echo, ok := rm.Body.(*icmp.Echo)

	if !ok || echo.Seq != seq {
		return false
	}

	// the kernel rewrites the echo id for datagram sockets
	if network == networkRaw && echo.ID != id {
		return false
	}

	return peerIP(peer).Equal(dst)
}

func (p *ICMPProber) listen() (*icmp.PacketConn, string, error) {
	if !p.raw.Load() {
		conn, err := icmp.ListenPacket(networkUnprivileged, "0.0.0.0")

		if err == nil {
			return conn, networkUnprivileged, nil
		}
	}

	conn, err := icmp.ListenPacket(networkRaw, "0.0.0.0")

	if err != nil {
		return nil, networkRaw, err
	}

	p.raw.Store(true)

	return conn, networkRaw, nil
}

func peerIP(addr net.Addr) net.IP {
	switch a := addr.(type) {
	case *net.UDPAddr:
		return a.IP
	case *net.IPAddr:
		return a.IP
	default:
		return nil
	}
}
