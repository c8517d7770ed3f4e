package discovery

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"

	"github.com/robgonnella/netsweep/internal/logger"
)

const procNetArpFile = "/proc/net/arp"

// ARPTable is an implementation of the HardwareResolver interface reading
// the operating system's neighbor cache. The liveness probe populates the
// cache so no extra packets are sent.
type ARPTable struct {
	procFile string
	log      logger.Logger
}

// NewARPTable returns a new instance of ARPTable
func NewARPTable() *ARPTable {
	return NewARPTableFromFile(procNetArpFile)
}

// NewARPTableFromFile returns an ARPTable reading a proc style arp file,
// only used on linux
func NewARPTableFromFile(procFile string) *ARPTable {
	return &ARPTable{
		procFile: procFile,
		log:      logger.New(),
	}
}

// Resolve implements the HardwareResolver interface
func (t *ARPTable) Resolve(ctx context.Context, ip string) (string, error) {
	mac, err := t.resolve(ctx, ip)

	if err != nil {
		return "", err
	}

	t.log.Debug().Str("ip", ip).Str("mac", mac).Msg("resolved hardware address")

	return mac, nil
}

// ParseProcARP finds the hardware address for ip in /proc/net/arp formatted
// content. Incomplete entries are ignored.
func ParseProcARP(r io.Reader, ip string) (string, error) {
	scanner := bufio.NewScanner(r)

	// skip header
	if !scanner.Scan() {
		return "", scanner.Err()
	}

	for scanner.Scan() {
		// IP address HW type Flags HW address Mask Device
		fields := strings.Fields(scanner.Text())

		if len(fields) < 4 || fields[0] != ip {
			continue
		}

		if mac := normalizeMAC(fields[3]); mac != "" {
			return mac, nil
		}
	}

	return "", scanner.Err()
}

// ParseArpOutput finds the hardware address for ip in bsd style "arp -n"
// output, e.g. "? (192.168.1.1) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet]"
func ParseArpOutput(output string, ip string) string {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if !strings.Contains(line, "("+ip+")") {
			continue
		}

		atIndex := strings.Index(line, " at ")

		if atIndex == -1 {
			continue
		}

		fields := strings.Fields(line[atIndex+4:])

		if len(fields) == 0 {
			continue
		}

		if mac := normalizeMAC(fields[0]); mac != "" {
			return mac
		}
	}

	return ""
}

// bsd arp drops leading zeros, e.g. "0:1b:2c:3:4:5"
func normalizeMAC(raw string) string {
	parts := strings.Split(raw, ":")

	if len(parts) != 6 {
		return ""
	}

	for i, p := range parts {
		if len(p) == 1 {
			parts[i] = "0" + p
		}
	}

	mac, err := net.ParseMAC(strings.Join(parts, ":"))

	if err != nil {
		return ""
	}

	s := mac.String()

	if s == "00:00:00:00:00:00" {
		return ""
	}

	return s
}
