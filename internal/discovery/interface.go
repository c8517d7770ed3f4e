package discovery

import (
	"context"
)

//go:generate mockgen -destination=../mock/discovery/mock_discovery.go -package=mock_discovery . Prober,HardwareResolver,VendorLookup

// Prober performs a single liveness check against one address. Timeouts
// and unreachable hosts are reported as a non-alive result, not an error.
type Prober interface {
	Probe(ctx context.Context, ip string) (*ProbeResult, error)
}

// HardwareResolver resolves the link-layer address of an IP on the local
// segment. A missing entry is reported as "" with a nil error.
type HardwareResolver interface {
	Resolve(ctx context.Context, ip string) (string, error)
}

// VendorLookup maps a hardware address to a manufacturer name, returning
// UnknownVendor when no match exists
type VendorLookup interface {
	Lookup(mac string) string
}
