package subnet

import (
	"fmt"
	"iter"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/projectdiscovery/mapcidr"
	"github.com/robgonnella/netsweep/internal/exception"
)

// HostCount number of candidate host addresses in a /24
const HostCount = 254

var cidrSuffix = regexp.MustCompile(`\/\d{1,2}$`)

// Prefix first three octets of an IPv4 address plus a trailing dot,
// e.g. "192.168.1."
type Prefix string

// String implements fmt.Stringer
func (p Prefix) String() string {
	return string(p)
}

// Host returns the address for the given last octet
func (p Prefix) Host(octet int) string {
	return string(p) + strconv.Itoa(octet)
}

// CIDR returns the /24 network in cidr notation
func (p Prefix) CIDR() string {
	return string(p) + "0/24"
}

// ParsePrefix derives a Prefix from a dotted-quad address by truncating it
// after the third dot. A /24 cidr such as "10.0.0.0/24" is also accepted.
func ParsePrefix(target string) (Prefix, error) {
	target = strings.TrimSpace(target)

	if cidrSuffix.MatchString(target) {
		_, ipnet, err := net.ParseCIDR(target)

		if err != nil {
			return "", fmt.Errorf("%w: %s", exception.ErrInvalidSubnet, target)
		}

		if ones, bits := ipnet.Mask.Size(); ones != 24 || bits != 32 {
			return "", fmt.Errorf("%w: only /24 networks are supported: %s", exception.ErrInvalidSubnet, target)
		}

		target = ipnet.IP.String()
	}

	ip := net.ParseIP(target).To4()

	if ip == nil {
		return "", fmt.Errorf("%w: %s", exception.ErrInvalidSubnet, target)
	}

	// IPv4-mapped IPv6 input is normalized to its dotted quad
	quad := ip.String()

	return Prefix(quad[:strings.LastIndex(quad, ".")+1]), nil
}

// Addresses yields prefix+1 through prefix+254 in ascending order. A
// malformed prefix yields nothing.
func Addresses(p Prefix) iter.Seq[string] {
	return func(yield func(string) bool) {
		ips, err := mapcidr.IPAddresses(p.CIDR())

		if err != nil || len(ips) != HostCount+2 {
			return
		}

		// skip network and broadcast addresses
		for _, ip := range ips[1 : HostCount+1] {
			if !yield(ip) {
				return
			}
		}
	}
}
