package discovery

import "time"

// UnknownVendor sentinel returned when a vendor cannot be resolved
const UnknownVendor = "unknown"

// ProbeMethod selects the liveness probe implementation
type ProbeMethod string

const (
	ProbeICMP ProbeMethod = "icmp"
	ProbeTCP  ProbeMethod = "tcp"
	ProbeNmap ProbeMethod = "nmap"
)

// DefaultProbeTimeout bounded wait for a single liveness probe
const DefaultProbeTimeout = time.Second * 2

// ProbeResult outcome of a single liveness probe
type ProbeResult struct {
	Alive        bool
	ResponseTime time.Duration
}

// Milliseconds returns the response time in fractional milliseconds
func (r *ProbeResult) Milliseconds() float64 {
	return float64(r.ResponseTime) / float64(time.Millisecond)
}
