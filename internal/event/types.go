package event

// EventType identifies a stage of a network scan
type EventType string

const (
	// ScanStarted payload is the scanned subnet prefix as a string
	ScanStarted EventType = "SCAN_STARTED"
	// ProbeComplete payload is a Progress
	ProbeComplete EventType = "PROBE_COMPLETE"
	PhaseSorting  EventType = "PHASE_SORTING"
	PhaseSaving   EventType = "PHASE_SAVING"
	NoDevices     EventType = "NO_DEVICES"
	// ScanSaved payload is a Saved
	ScanSaved EventType = "SCAN_SAVED"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}

// Progress number of settled probes out of the total launched
type Progress struct {
	Completed int
	Total     int
}

// Percent returns completion as an integer percentage
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}

	return p.Completed * 100 / p.Total
}

// Saved summary of a persisted scan
type Saved struct {
	Count       int
	Destination string
}
