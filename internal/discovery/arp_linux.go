package discovery

import (
	"context"
	"os"
)

func (t *ARPTable) resolve(ctx context.Context, ip string) (string, error) {
	file, err := os.Open(t.procFile)

	if err != nil {
		return "", err
	}

	defer file.Close()

	return ParseProcARP(file, ip)
}
