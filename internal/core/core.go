package core

import (
	"context"
	"errors"
	"sync"

	"github.com/robgonnella/netsweep/internal/classify"
	"github.com/robgonnella/netsweep/internal/config"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/robgonnella/netsweep/internal/event"
	"github.com/robgonnella/netsweep/internal/exception"
	"github.com/robgonnella/netsweep/internal/logger"
	"github.com/robgonnella/netsweep/internal/report"
	"github.com/robgonnella/netsweep/internal/scan"
	"github.com/robgonnella/netsweep/internal/store"
	"github.com/robgonnella/netsweep/internal/subnet"
)

// VendorUpdater refreshes the local vendor database
type VendorUpdater interface {
	UpdateVendors() error
}

// EventListener registered receiver of scan events
type EventListener struct {
	id       int
	notifier event.Notifier
}

// Props dependencies used to assemble a Core
type Props struct {
	Conf        config.Config
	Prober      discovery.Prober
	Resolver    discovery.HardwareResolver
	Vendors     discovery.VendorLookup
	Writer      report.Writer
	History     store.Repo
	Updater     VendorUpdater
	LocalPrefix func() (subnet.Prefix, error)
}

// Core represents our core data structure
type Core struct {
	conf           config.Config
	scanner        *scan.Scanner
	history        store.Repo
	updater        VendorUpdater
	logger         logger.Logger
	evtListeners   []*EventListener
	nextListenerId int
	mux            sync.Mutex
}

// New returns new core module for given configuration
func New(props Props) *Core {
	c := &Core{
		conf:           props.Conf,
		history:        props.History,
		updater:        props.Updater,
		logger:         logger.New(),
		evtListeners:   []*EventListener{},
		nextListenerId: 1,
		mux:            sync.Mutex{},
	}

	c.scanner = scan.New(scan.Props{
		Prober:      props.Prober,
		Resolver:    props.Resolver,
		Vendors:     props.Vendors,
		Classifier:  classify.New(props.Conf.Classify.Rules...),
		Writer:      props.Writer,
		History:     props.History,
		Notifier:    c,
		LocalPrefix: props.LocalPrefix,
	})

	return c
}

// Conf returns the active configuration
func (c *Core) Conf() config.Config {
	return c.conf
}

// Scan runs a single network scan. An empty target scans the local subnet.
func (c *Core) Scan(ctx context.Context, target string) (*scan.Summary, error) {
	return c.scanner.ScanNetwork(ctx, target)
}

// LatestScan returns the most recently stored scan
func (c *Core) LatestScan() (*store.Scan, error) {
	if c.history == nil {
		return nil, exception.ErrHistoryDisabled
	}

	return c.history.LatestScan()
}

// GetScan returns the stored scan with the given id
func (c *Core) GetScan(id string) (*store.Scan, error) {
	if c.history == nil {
		return nil, exception.ErrHistoryDisabled
	}

	return c.history.GetScan(id)
}

// Scans returns every stored scan, newest first
func (c *Core) Scans() ([]*store.Scan, error) {
	if c.history == nil {
		return nil, exception.ErrHistoryDisabled
	}

	return c.history.GetAllScans()
}

// UpdateVendors refreshes the vendor database used for lookups
func (c *Core) UpdateVendors() error {
	if c.updater == nil {
		return errors.New("vendor database does not support updates")
	}

	c.logger.Info().Msg("updating vendor database")

	return c.updater.UpdateVendors()
}

// Notify implements event.Notifier by forwarding to every listener
func (c *Core) Notify(evt event.Event) {
	c.mux.Lock()
	listeners := make([]*EventListener, len(c.evtListeners))
	copy(listeners, c.evtListeners)
	c.mux.Unlock()

	for _, listener := range listeners {
		listener.notifier.Notify(evt)
	}
}

// RegisterEventListener adds a receiver of scan events and returns its id
func (c *Core) RegisterEventListener(notifier event.Notifier) int {
	c.mux.Lock()
	defer c.mux.Unlock()

	listener := &EventListener{
		id:       c.nextListenerId,
		notifier: notifier,
	}
	c.evtListeners = append(c.evtListeners, listener)
	c.nextListenerId++

	return listener.id
}

// RemoveEventListener removes a previously registered receiver
func (c *Core) RemoveEventListener(id int) {
	c.mux.Lock()
	defer c.mux.Unlock()

	listeners := []*EventListener{}
	for _, listener := range c.evtListeners {
		if listener.id != id {
			listeners = append(listeners, listener)
		}
	}

	c.evtListeners = listeners
}
