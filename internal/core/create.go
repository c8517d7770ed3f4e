package core

import (
	"io"

	"github.com/robgonnella/go-lanscan/pkg/oui"
	"github.com/robgonnella/netsweep/internal/config"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/robgonnella/netsweep/internal/logger"
	"github.com/robgonnella/netsweep/internal/progress"
	"github.com/robgonnella/netsweep/internal/report"
	"github.com/robgonnella/netsweep/internal/store"
	"github.com/spf13/viper"
)

// vendorRepo the parts of go-lanscan's oui repo we rely on
type vendorRepo interface {
	discovery.VendorQuerier
	VendorUpdater
}

// createProber returns the liveness prober selected in conf
func createProber(conf config.Config) discovery.Prober {
	switch conf.Probe.Method {
	case discovery.ProbeTCP:
		return discovery.NewTCPProber(conf.Probe.Port, conf.Probe.Timeout)
	case discovery.ProbeNmap:
		return discovery.NewNmapProber(conf.Probe.Timeout)
	default:
		return discovery.NewICMPProber(conf.Probe.Timeout)
	}
}

// createHistory opens the scan history database unless disabled
func createHistory(conf config.Config) (store.Repo, error) {
	if conf.History.Disabled {
		return nil, nil
	}

	db, err := store.NewSqliteDatabase(viper.GetString("database-file"))

	if err != nil {
		return nil, err
	}

	return store.NewSqliteRepo(db), nil
}

// CreateNewAppCore creates and returns a new instance of *core.Core with a
// console progress reporter writing to out
func CreateNewAppCore(conf config.Config, out io.Writer) (*Core, error) {
	log := logger.New()

	history, err := createHistory(conf)

	if err != nil {
		return nil, err
	}

	props := Props{
		Conf:     conf,
		Prober:   createProber(conf),
		Resolver: discovery.NewARPTable(),
		Writer:   report.NewJSONWriter(conf.Output),
		History:  history,
	}

	var repo vendorRepo

	if r, err := oui.GetDefaultVendorRepo(); err != nil {
		log.Warn().Err(err).Msg("vendor database unavailable, vendors will be reported as unknown")
		props.Vendors = discovery.NewOUIVendorLookup(nil)
	} else {
		repo = r
		props.Vendors = discovery.NewOUIVendorLookup(repo)
		props.Updater = repo
	}

	appCore := New(props)

	if out != nil {
		appCore.RegisterEventListener(progress.NewConsole(out, conf.DwellOrDefault()))
	}

	return appCore, nil
}
