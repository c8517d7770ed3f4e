//go:build !linux && !darwin

package discovery

import "context"

func (t *ARPTable) resolve(ctx context.Context, ip string) (string, error) {
	return "", nil
}
