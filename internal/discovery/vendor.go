package discovery

import (
	"net"
	"strings"

	"github.com/robgonnella/go-lanscan/pkg/oui"
	"github.com/robgonnella/netsweep/internal/logger"
)

// VendorQuerier the query half of go-lanscan's oui.VendorRepo
type VendorQuerier interface {
	Query(mac net.HardwareAddr) (*oui.VendorResult, error)
}

// OUIVendorLookup is an implementation of the VendorLookup interface backed
// by the IEEE OUI registry
type OUIVendorLookup struct {
	repo VendorQuerier
	log  logger.Logger
}

// NewOUIVendorLookup returns a new instance of OUIVendorLookup. A nil repo
// resolves every address to UnknownVendor.
func NewOUIVendorLookup(repo VendorQuerier) *OUIVendorLookup {
	return &OUIVendorLookup{
		repo: repo,
		log:  logger.New(),
	}
}

// Lookup implements the VendorLookup interface
func (l *OUIVendorLookup) Lookup(mac string) string {
	if l.repo == nil || mac == "" {
		return UnknownVendor
	}

	hw, err := net.ParseMAC(mac)

	if err != nil {
		l.log.Debug().Err(err).Str("mac", mac).Msg("invalid hardware address")
		return UnknownVendor
	}

	result, err := l.repo.Query(hw)

	if err != nil || result == nil {
		return UnknownVendor
	}

	name := strings.TrimSpace(result.Name)

	if name == "" {
		return UnknownVendor
	}

	return name
}
