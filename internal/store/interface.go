package store

import (
	"time"

	"github.com/robgonnella/netsweep/internal/device"
)

//go:generate mockgen -destination=../mock/store/mock_store.go -package=mock_store . Repo

// Scan a persisted scan and its sorted device records
type Scan struct {
	ID        string
	Subnet    string
	Completed time.Time
	Records   []*device.Record
}

// Repo interface representing access to stored scans
type Repo interface {
	SaveScan(scan *Scan) error
	GetScan(id string) (*Scan, error)
	GetAllScans() ([]*Scan, error)
	LatestScan() (*Scan, error)
}
