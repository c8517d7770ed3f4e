package discovery

import (
	"context"
	"errors"
	"net"
	"syscall"
	"time"

	"github.com/robgonnella/netsweep/internal/logger"
)

// DefaultTCPPort port dialed by TCPProber when none is configured
const DefaultTCPPort = "22"

// TCPProber is an implementation of the Prober interface that attempts a
// tcp connection. A completed handshake or a refused connection both mean
// the host is up.
type TCPProber struct {
	port    string
	timeout time.Duration
	log     logger.Logger
}

// NewTCPProber returns a new instance of TCPProber
func NewTCPProber(port string, timeout time.Duration) *TCPProber {
	if port == "" {
		port = DefaultTCPPort
	}

	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &TCPProber{
		port:    port,
		timeout: timeout,
		log:     logger.New(),
	}
}

// Probe implements the Prober interface
func (p *TCPProber) Probe(ctx context.Context, ip string) (*ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.log.Debug().Str("ip", ip).Str("port", p.port).Msg("probing target")

	dialer := net.Dialer{}
	start := time.Now()

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(ip, p.port))

	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return &ProbeResult{Alive: true, ResponseTime: elapsed}, nil
		}

		return &ProbeResult{Alive: false}, nil
	}

	defer conn.Close()

	return &ProbeResult{Alive: true, ResponseTime: elapsed}, nil
}
