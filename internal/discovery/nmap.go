package discovery

import (
	"context"
	"strconv"
	"time"

	"github.com/Ullaakut/nmap/v3"
	"github.com/robgonnella/netsweep/internal/logger"
)

// NmapProber is an implementation of the Prober interface using an nmap
// ping scan of a single target
type NmapProber struct {
	timeout time.Duration
	log     logger.Logger
}

// NewNmapProber returns a new instance of NmapProber
func NewNmapProber(timeout time.Duration) *NmapProber {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}

	return &NmapProber{
		timeout: timeout,
		log:     logger.New(),
	}
}

// Probe implements the Prober interface
func (p *NmapProber) Probe(ctx context.Context, ip string) (*ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(ip),
		nmap.WithPingScan(),
		nmap.WithTimingTemplate(nmap.TimingAggressive),
		nmap.WithMaxRetries(0),
	)

	if err != nil {
		return nil, err
	}

	start := time.Now()

	result, warnings, err := scanner.Run()

	elapsed := time.Since(start)

	if warnings != nil && len(*warnings) > 0 {
		fields := map[string]interface{}{}

		for i, warning := range *warnings {
			fields[strconv.Itoa(i)] = warning
		}

		p.log.Debug().
			Fields(fields).
			Str("ip", ip).
			Msg("encountered nmap warnings")
	}

	if err != nil {
		if ctx.Err() != nil {
			return &ProbeResult{Alive: false}, nil
		}

		return nil, err
	}

	for _, host := range result.Hosts {
		if host.Status.State == "up" {
			return &ProbeResult{Alive: true, ResponseTime: elapsed}, nil
		}
	}

	return &ProbeResult{Alive: false}, nil
}
