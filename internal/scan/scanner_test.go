package scan_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/robgonnella/netsweep/internal/classify"
	"github.com/robgonnella/netsweep/internal/device"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/robgonnella/netsweep/internal/event"
	"github.com/robgonnella/netsweep/internal/exception"
	mock_discovery "github.com/robgonnella/netsweep/internal/mock/discovery"
	mock_event "github.com/robgonnella/netsweep/internal/mock/event"
	mock_report "github.com/robgonnella/netsweep/internal/mock/report"
	mock_store "github.com/robgonnella/netsweep/internal/mock/store"
	"github.com/robgonnella/netsweep/internal/report"
	"github.com/robgonnella/netsweep/internal/scan"
	"github.com/robgonnella/netsweep/internal/store"
	"github.com/robgonnella/netsweep/internal/subnet"
	"github.com/stretchr/testify/assert"
)

type proberFunc func(ctx context.Context, ip string) (*discovery.ProbeResult, error)

func (f proberFunc) Probe(ctx context.Context, ip string) (*discovery.ProbeResult, error) {
	return f(ctx, ip)
}

func aliveOnly(ips ...string) proberFunc {
	alive := map[string]bool{}

	for _, ip := range ips {
		alive[ip] = true
	}

	return func(ctx context.Context, ip string) (*discovery.ProbeResult, error) {
		if alive[ip] {
			return &discovery.ProbeResult{Alive: true, ResponseTime: time.Millisecond * 3}, nil
		}
		return &discovery.ProbeResult{Alive: false}, nil
	}
}

type eventType event.EventType

func (e eventType) Matches(x interface{}) bool {
	evt, ok := x.(event.Event)
	return ok && evt.Type == event.EventType(e)
}

func (e eventType) String() string {
	return fmt.Sprintf("event of type %s", string(e))
}

type eventRecorder struct {
	mux    sync.Mutex
	events []event.Event
}

func (r *eventRecorder) Notify(evt event.Event) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.events = append(r.events, evt)
}

func (r *eventRecorder) types() []event.EventType {
	r.mux.Lock()
	defer r.mux.Unlock()

	result := []event.EventType{}

	for _, evt := range r.events {
		if evt.Type != event.ProbeComplete {
			result = append(result, evt.Type)
		}
	}

	return result
}

func TestScanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("discovers and classifies an axis camera", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)
		writer := mock_report.NewMockWriter(ctrl)
		history := mock_store.NewMockRepo(ctrl)
		recorder := &eventRecorder{}

		mac := "00:40:8c:01:02:03"

		expected := []*device.Record{
			{
				IP:           "10.0.0.7",
				MAC:          mac,
				Vendor:       "Axis Communications AB",
				ResponseTime: 3,
				Classification: &device.Classification{
					DeviceType: "IP Camera",
				},
			},
		}

		resolver.EXPECT().Resolve(gomock.Any(), "10.0.0.7").Return(mac, nil)
		vendors.EXPECT().Lookup(mac).Return("Axis Communications AB")
		writer.EXPECT().Destination().Return("devices.json")
		writer.EXPECT().Write(expected).Return(nil)
		history.EXPECT().SaveScan(gomock.Any()).DoAndReturn(func(s *store.Scan) error {
			assert.NotEmpty(st, s.ID)
			assert.Equal(st, "10.0.0.0/24", s.Subnet)
			assert.Equal(st, expected, s.Records)
			return nil
		})

		scanner := scan.New(scan.Props{
			Prober:   aliveOnly("10.0.0.7"),
			Resolver: resolver,
			Vendors:  vendors,
			Writer:   writer,
			History:  history,
			Notifier: recorder,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "10.0.0.5")

		assert.NoError(st, err)
		assert.Equal(st, subnet.Prefix("10.0.0."), summary.Prefix)
		assert.Equal(st, 1, summary.Count())
		assert.Equal(st, expected, summary.Records)
		assert.Equal(st, "devices.json", summary.Destination)
		assert.Equal(st, []event.EventType{
			event.ScanStarted,
			event.PhaseSorting,
			event.PhaseSaving,
			event.ScanSaved,
		}, recorder.types())

		last := recorder.events[len(recorder.events)-1]
		assert.Equal(st, event.Saved{Count: 1, Destination: "devices.json"}, last.Payload)
	})

	t.Run("skips persistence when no devices are found", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)
		writer := mock_report.NewMockWriter(ctrl)
		history := mock_store.NewMockRepo(ctrl)
		notifier := mock_event.NewMockNotifier(ctrl)

		writer.EXPECT().Destination().Return("devices.json")
		writer.EXPECT().Write(gomock.Any()).Times(0)
		history.EXPECT().SaveScan(gomock.Any()).Times(0)

		notifier.EXPECT().Notify(eventType(event.ScanStarted)).Times(1)
		notifier.EXPECT().Notify(eventType(event.ProbeComplete)).Times(subnet.HostCount)
		notifier.EXPECT().Notify(eventType(event.NoDevices)).Times(1)

		scanner := scan.New(scan.Props{
			Prober:   aliveOnly(),
			Resolver: resolver,
			Vendors:  vendors,
			Writer:   writer,
			History:  history,
			Notifier: notifier,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "192.168.50.1")

		assert.NoError(st, err)
		assert.Equal(st, 0, summary.Count())
		assert.Empty(st, summary.Records)
	})

	t.Run("waits for every probe before saving", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)
		writer := mock_report.NewMockWriter(ctrl)

		settled := atomic.Int64{}
		maxProgress := atomic.Int64{}

		prober := proberFunc(func(ctx context.Context, ip string) (*discovery.ProbeResult, error) {
			defer settled.Add(1)

			if ip == "10.1.1.254" {
				time.Sleep(time.Millisecond * 200)
			} else {
				time.Sleep(time.Millisecond * 10)
			}

			if ip == "10.1.1.2" || ip == "10.1.1.254" {
				return &discovery.ProbeResult{Alive: true, ResponseTime: time.Millisecond}, nil
			}

			return &discovery.ProbeResult{}, nil
		})

		notifier := event.NotifierFunc(func(evt event.Event) {
			if p, ok := evt.Payload.(event.Progress); ok {
				for {
					current := maxProgress.Load()
					if int64(p.Completed) <= current || maxProgress.CompareAndSwap(current, int64(p.Completed)) {
						break
					}
				}
			}
		})

		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("", nil).Times(2)
		vendors.EXPECT().Lookup("").Return(discovery.UnknownVendor).Times(2)
		writer.EXPECT().Destination().Return("devices.json")
		writer.EXPECT().Write(gomock.Any()).DoAndReturn(func(records []*device.Record) error {
			assert.Equal(st, int64(subnet.HostCount), settled.Load())
			assert.Equal(st, int64(subnet.HostCount), maxProgress.Load())
			assert.Equal(st, 2, len(records))
			assert.Equal(st, "10.1.1.2", records[0].IP)
			assert.Equal(st, "10.1.1.254", records[1].IP)
			return nil
		})

		scanner := scan.New(scan.Props{
			Prober:   prober,
			Resolver: resolver,
			Vendors:  vendors,
			Writer:   writer,
			Notifier: notifier,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "10.1.1.0/24")

		assert.NoError(st, err)
		assert.Equal(st, 2, summary.Count())
	})

	t.Run("absorbs per host failures", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)
		writer := mock_report.NewMockWriter(ctrl)

		prober := proberFunc(func(ctx context.Context, ip string) (*discovery.ProbeResult, error) {
			switch ip {
			case "172.16.0.3":
				return nil, errors.New("probe error")
			case "172.16.0.4":
				panic("probe exploded")
			case "172.16.0.10", "172.16.0.20":
				return &discovery.ProbeResult{Alive: true, ResponseTime: time.Millisecond}, nil
			default:
				return &discovery.ProbeResult{}, nil
			}
		})

		resolver.EXPECT().Resolve(gomock.Any(), "172.16.0.10").Return("", errors.New("arp failure"))
		resolver.EXPECT().Resolve(gomock.Any(), "172.16.0.20").Return("f4:54:33:aa:bb:cc", nil)
		vendors.EXPECT().Lookup("").Return(discovery.UnknownVendor)
		vendors.EXPECT().Lookup("f4:54:33:aa:bb:cc").Return("Rockwell Automation")
		writer.EXPECT().Destination().Return("devices.json")
		writer.EXPECT().Write([]*device.Record{
			{IP: "172.16.0.10", MAC: "", Vendor: discovery.UnknownVendor, ResponseTime: 1},
			{IP: "172.16.0.20", MAC: "f4:54:33:aa:bb:cc", Vendor: "Rockwell Automation", ResponseTime: 1},
		}).Return(nil)

		recorder := &eventRecorder{}

		scanner := scan.New(scan.Props{
			Prober:   prober,
			Resolver: resolver,
			Vendors:  vendors,
			Writer:   writer,
			Notifier: recorder,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "172.16.0.1")

		assert.NoError(st, err)
		assert.Equal(st, 2, summary.Count())

		progressCount := 0

		for _, evt := range recorder.events {
			if evt.Type == event.ProbeComplete {
				progressCount++
			}
		}

		assert.Equal(st, subnet.HostCount, progressCount)
	})

	t.Run("returns persistence errors", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)
		writer := mock_report.NewMockWriter(ctrl)
		history := mock_store.NewMockRepo(ctrl)

		resolver.EXPECT().Resolve(gomock.Any(), "10.0.0.1").Return("", nil)
		vendors.EXPECT().Lookup("").Return(discovery.UnknownVendor)
		writer.EXPECT().Destination().Return("/nope/devices.json")
		writer.EXPECT().Write(gomock.Any()).Return(fmt.Errorf("open /nope/devices.json: %w", os.ErrPermission))
		history.EXPECT().SaveScan(gomock.Any()).Times(0)

		scanner := scan.New(scan.Props{
			Prober:   aliveOnly("10.0.0.1"),
			Resolver: resolver,
			Vendors:  vendors,
			Writer:   writer,
			History:  history,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "10.0.0.1")

		assert.Nil(st, summary)
		assert.Error(st, err)
		assert.True(st, errors.Is(err, exception.ErrPersist))
		assert.True(st, errors.Is(err, os.ErrPermission))
	})

	t.Run("ignores history failures", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)
		writer := mock_report.NewMockWriter(ctrl)
		history := mock_store.NewMockRepo(ctrl)

		resolver.EXPECT().Resolve(gomock.Any(), "10.0.0.1").Return("", nil)
		vendors.EXPECT().Lookup("").Return(discovery.UnknownVendor)
		writer.EXPECT().Destination().Return("devices.json")
		writer.EXPECT().Write(gomock.Any()).Return(nil)
		history.EXPECT().SaveScan(gomock.Any()).Return(errors.New("database is locked"))

		scanner := scan.New(scan.Props{
			Prober:   aliveOnly("10.0.0.1"),
			Resolver: resolver,
			Vendors:  vendors,
			Writer:   writer,
			History:  history,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "10.0.0.1")

		assert.NoError(st, err)
		assert.Equal(st, 1, summary.Count())
	})

	t.Run("rejects invalid subnet override", func(st *testing.T) {
		writer := mock_report.NewMockWriter(ctrl)

		scanner := scan.New(scan.Props{
			Prober: aliveOnly(),
			Writer: writer,
		})

		summary, err := scanner.ScanNetwork(context.Background(), "not-an-ip")

		assert.Nil(st, summary)
		assert.True(st, errors.Is(err, exception.ErrInvalidSubnet))
	})

	t.Run("uses local prefix when no override is given", func(st *testing.T) {
		writer := mock_report.NewMockWriter(ctrl)

		writer.EXPECT().Destination().Return("devices.json")

		scanner := scan.New(scan.Props{
			Prober: aliveOnly(),
			Writer: writer,
			LocalPrefix: func() (subnet.Prefix, error) {
				return subnet.Prefix("192.168.7."), nil
			},
		})

		summary, err := scanner.ScanNetwork(context.Background(), "")

		assert.NoError(st, err)
		assert.Equal(st, subnet.Prefix("192.168.7."), summary.Prefix)
	})

	t.Run("returns local prefix errors", func(st *testing.T) {
		writer := mock_report.NewMockWriter(ctrl)

		scanner := scan.New(scan.Props{
			Prober: aliveOnly(),
			Writer: writer,
			LocalPrefix: func() (subnet.Prefix, error) {
				return "", errors.New("no route")
			},
		})

		summary, err := scanner.ScanNetwork(context.Background(), "")

		assert.Nil(st, summary)
		assert.Error(st, err)
	})

	t.Run("produces identical output across runs", func(st *testing.T) {
		resolver := mock_discovery.NewMockHardwareResolver(ctrl)
		vendors := mock_discovery.NewMockVendorLookup(ctrl)

		out := filepath.Join(st.TempDir(), "devices.json")

		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, ip string) (string, error) {
				if ip == "10.0.0.7" {
					return "00:40:8c:01:02:03", nil
				}
				return "00:80:f4:00:00:01", nil
			},
		).AnyTimes()
		vendors.EXPECT().Lookup("00:40:8c:01:02:03").Return("Axis Communications AB").AnyTimes()
		vendors.EXPECT().Lookup("00:80:f4:00:00:01").Return("Telemecanique Electrique").AnyTimes()

		scanner := scan.New(scan.Props{
			Prober:     aliveOnly("10.0.0.200", "10.0.0.7", "10.0.0.31"),
			Resolver:   resolver,
			Vendors:    vendors,
			Classifier: classify.New(),
			Writer:     report.NewJSONWriter(out),
		})

		_, err := scanner.ScanNetwork(context.Background(), "10.0.0.5")
		assert.NoError(st, err)

		first, err := os.ReadFile(out)
		assert.NoError(st, err)

		summary, err := scanner.ScanNetwork(context.Background(), "10.0.0.5")
		assert.NoError(st, err)

		second, err := os.ReadFile(out)
		assert.NoError(st, err)

		assert.Equal(st, string(first), string(second))
		assert.Equal(st, 3, summary.Count())
		assert.Equal(st, "10.0.0.7", summary.Records[0].IP)
		assert.Equal(st, "10.0.0.31", summary.Records[1].IP)
		assert.Equal(st, "10.0.0.200", summary.Records[2].IP)
		assert.Equal(st, "Schneider Controller", summary.Records[2].Classification.DeviceType)
	})
}
