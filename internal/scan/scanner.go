package scan

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robgonnella/netsweep/internal/classify"
	"github.com/robgonnella/netsweep/internal/device"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/robgonnella/netsweep/internal/event"
	"github.com/robgonnella/netsweep/internal/exception"
	"github.com/robgonnella/netsweep/internal/logger"
	"github.com/robgonnella/netsweep/internal/report"
	"github.com/robgonnella/netsweep/internal/store"
	"github.com/robgonnella/netsweep/internal/subnet"
)

// Props dependencies injected into Scanner. History and Notifier are optional.
type Props struct {
	Prober      discovery.Prober
	Resolver    discovery.HardwareResolver
	Vendors     discovery.VendorLookup
	Classifier  *classify.Classifier
	Writer      report.Writer
	History     store.Repo
	Notifier    event.Notifier
	LocalPrefix func() (subnet.Prefix, error)
}

// Summary result of a single ScanNetwork call
type Summary struct {
	ID          string
	Prefix      subnet.Prefix
	Records     []*device.Record
	Destination string
}

// Count returns the number of discovered devices
func (s *Summary) Count() int {
	return len(s.Records)
}

// Scanner orchestrates a full /24 sweep
type Scanner struct {
	prober      discovery.Prober
	resolver    discovery.HardwareResolver
	vendors     discovery.VendorLookup
	classifier  *classify.Classifier
	writer      report.Writer
	history     store.Repo
	notifier    event.Notifier
	localPrefix func() (subnet.Prefix, error)
	log         logger.Logger
}

// New returns a new instance of Scanner
func New(props Props) *Scanner {
	classifier := props.Classifier

	if classifier == nil {
		classifier = classify.New()
	}

	notifier := props.Notifier

	if notifier == nil {
		notifier = event.NotifierFunc(func(event.Event) {})
	}

	localPrefix := props.LocalPrefix

	if localPrefix == nil {
		localPrefix = subnet.LocalPrefix
	}

	return &Scanner{
		prober:      props.Prober,
		resolver:    props.Resolver,
		vendors:     props.Vendors,
		classifier:  classifier,
		writer:      props.Writer,
		history:     props.History,
		notifier:    notifier,
		localPrefix: localPrefix,
		log:         logger.New(),
	}
}

// ScanNetwork probes every host of the /24 containing override, or of the
// local machine's subnet when override is empty, and persists the sorted
// inventory. Only prefix resolution and persistence failures are returned.
func (s *Scanner) ScanNetwork(ctx context.Context, override string) (*Summary, error) {
	prefix, err := s.resolvePrefix(override)

	if err != nil {
		return nil, err
	}

	summary := &Summary{
		ID:          uuid.New().String(),
		Prefix:      prefix,
		Records:     []*device.Record{},
		Destination: s.writer.Destination(),
	}

	s.log.Info().
		Str("id", summary.ID).
		Str("subnet", prefix.CIDR()).
		Msg("starting network scan")

	s.notifier.Notify(event.Event{Type: event.ScanStarted, Payload: prefix.String()})

	sess := newSession(prefix)

	wg := &sync.WaitGroup{}

	for ip := range subnet.Addresses(prefix) {
		wg.Add(1)
		go func(target string) {
			defer wg.Done()
			s.probeHost(ctx, sess, target)
		}(ip)
	}

	// every probe must settle before anything is sorted or persisted
	wg.Wait()

	records := sess.collect()

	s.log.Info().
		Str("id", summary.ID).
		Int("count", len(records)).
		Msg("network scan complete")

	if len(records) == 0 {
		s.notifier.Notify(event.Event{Type: event.NoDevices})
		return summary, nil
	}

	s.notifier.Notify(event.Event{Type: event.PhaseSorting})

	report.Sort(records)

	summary.Records = records

	s.notifier.Notify(event.Event{Type: event.PhaseSaving})

	if err := s.writer.Write(records); err != nil {
		s.log.Error().Err(err).Str("destination", summary.Destination).Msg("failed to write scan results")
		return nil, fmt.Errorf("%w: %w", exception.ErrPersist, err)
	}

	s.saveHistory(summary)

	s.notifier.Notify(event.Event{
		Type: event.ScanSaved,
		Payload: event.Saved{
			Count:       len(records),
			Destination: summary.Destination,
		},
	})

	return summary, nil
}

func (s *Scanner) resolvePrefix(override string) (subnet.Prefix, error) {
	if override != "" {
		return subnet.ParsePrefix(override)
	}

	prefix, err := s.localPrefix()

	if err != nil {
		return "", fmt.Errorf("failed to find local subnet: %w", err)
	}

	return prefix, nil
}

// probeHost checks a single address and records it when alive. The settled
// counter is incremented exactly once regardless of outcome.
func (s *Scanner) probeHost(ctx context.Context, sess *session, ip string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("ip", ip).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("unexpected probe failure")
		}

		completed := sess.complete()

		s.notifier.Notify(event.Event{
			Type: event.ProbeComplete,
			Payload: event.Progress{
				Completed: completed,
				Total:     sess.total,
			},
		})
	}()

	result, err := s.prober.Probe(ctx, ip)

	if err != nil {
		s.log.Debug().Err(err).Str("ip", ip).Msg("probe failed")
		return
	}

	if result == nil || !result.Alive {
		return
	}

	mac, err := s.resolver.Resolve(ctx, ip)

	if err != nil {
		s.log.Debug().Err(err).Str("ip", ip).Msg("failed to resolve hardware address")
		mac = ""
	}

	vendor := s.vendors.Lookup(mac)

	record := &device.Record{
		IP:           ip,
		MAC:          mac,
		Vendor:       vendor,
		ResponseTime: result.Milliseconds(),
	}

	if deviceType, ok := s.classifier.Classify(vendor); ok {
		record.Classification = &device.Classification{DeviceType: deviceType}
	}

	s.log.Info().
		Str("ip", record.IP).
		Str("mac", record.MAC).
		Str("vendor", record.Vendor).
		Msg("found network device")

	sess.add(record)
}

func (s *Scanner) saveHistory(summary *Summary) {
	if s.history == nil {
		return
	}

	err := s.history.SaveScan(&store.Scan{
		ID:        summary.ID,
		Subnet:    summary.Prefix.CIDR(),
		Completed: time.Now(),
		Records:   summary.Records,
	})

	if err != nil {
		s.log.Warn().Err(err).Str("id", summary.ID).Msg("failed to save scan history")
	}
}
