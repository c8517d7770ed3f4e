package discovery

import (
	"context"
	"os/exec"
)

func (t *ARPTable) resolve(ctx context.Context, ip string) (string, error) {
	cmd := exec.CommandContext(ctx, "arp", "-n", ip)

	output, err := cmd.Output()

	if err != nil {
		// arp exits non-zero when there is no entry
		return "", nil
	}

	return ParseArpOutput(string(output), ip), nil
}
