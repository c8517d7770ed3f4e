package discovery_test

import (
	"errors"
	"net"
	"testing"

	"github.com/robgonnella/go-lanscan/pkg/oui"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/stretchr/testify/assert"
)

type fakeVendorRepo struct {
	vendors map[string]string
}

func (r *fakeVendorRepo) Query(mac net.HardwareAddr) (*oui.VendorResult, error) {
	name, ok := r.vendors[mac.String()[:8]]

	if !ok {
		return nil, errors.New("vendor not found")
	}

	return &oui.VendorResult{Name: name}, nil
}

func TestOUIVendorLookup(t *testing.T) {
	repo := &fakeVendorRepo{
		vendors: map[string]string{
			"00:40:8c": "Axis Communications AB",
			"00:80:f4": "  ",
		},
	}

	lookup := discovery.NewOUIVendorLookup(repo)

	t.Run("returns vendor name", func(st *testing.T) {
		assert.Equal(st, "Axis Communications AB", lookup.Lookup("00:40:8C:12:34:56"))
	})

	t.Run("returns unknown for misses", func(st *testing.T) {
		assert.Equal(st, discovery.UnknownVendor, lookup.Lookup("11:22:33:44:55:66"))
	})

	t.Run("returns unknown for blank names", func(st *testing.T) {
		assert.Equal(st, discovery.UnknownVendor, lookup.Lookup("00:80:f4:00:00:01"))
	})

	t.Run("returns unknown for empty or invalid addresses", func(st *testing.T) {
		assert.Equal(st, discovery.UnknownVendor, lookup.Lookup(""))
		assert.Equal(st, discovery.UnknownVendor, lookup.Lookup("not-a-mac"))
	})

	t.Run("returns unknown without a repo", func(st *testing.T) {
		empty := discovery.NewOUIVendorLookup(nil)

		assert.Equal(st, discovery.UnknownVendor, empty.Lookup("00:40:8c:12:34:56"))
	})
}
