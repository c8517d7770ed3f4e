package scan

import (
	"sync/atomic"

	mapsutil "github.com/projectdiscovery/utils/maps"
	"github.com/robgonnella/netsweep/internal/device"
	"github.com/robgonnella/netsweep/internal/subnet"
)

// session transient state for a single ScanNetwork call
type session struct {
	prefix    subnet.Prefix
	records   *mapsutil.SyncLockMap[string, *device.Record]
	completed atomic.Int64
	total     int
}

func newSession(prefix subnet.Prefix) *session {
	return &session{
		prefix:  prefix,
		records: mapsutil.NewSyncLockMap[string, *device.Record](),
		total:   subnet.HostCount,
	}
}

// add stores a record keeping the first one seen for an address
func (s *session) add(r *device.Record) {
	if _, exists := s.records.Get(r.IP); exists {
		return
	}

	_ = s.records.Set(r.IP, r)
}

// complete marks one probe as settled and returns the new count
func (s *session) complete() int {
	return int(s.completed.Add(1))
}

// collect returns the gathered records in no particular order
func (s *session) collect() []*device.Record {
	result := []*device.Record{}

	_ = s.records.Iterate(func(ip string, r *device.Record) error {
		if r != nil {
			result = append(result, r)
		}
		return nil
	})

	return result
}
