package progress

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/robgonnella/netsweep/internal/event"
)

// DefaultDwell how long the sorting and saving phases stay on screen
const DefaultDwell = 500 * time.Millisecond

// Console implements event.Notifier by rendering a single evolving status
// line followed by phase and summary lines
type Console struct {
	out         io.Writer
	bar         progress.Model
	dwell       time.Duration
	lastPercent int
	inline      bool
	mux         sync.Mutex
}

// NewConsole returns a new instance of Console writing to out
func NewConsole(out io.Writer, dwell time.Duration) *Console {
	bar := progress.New(
		progress.WithWidth(30),
		progress.WithoutPercentage(),
		progress.WithSolidFill("#3CB371"),
	)

	return &Console{
		out:         out,
		bar:         bar,
		dwell:       dwell,
		lastPercent: -1,
	}
}

// Notify implements event.Notifier
func (c *Console) Notify(evt event.Event) {
	c.mux.Lock()
	defer c.mux.Unlock()

	switch evt.Type {
	case event.ScanStarted:
		c.lastPercent = -1
		c.println(fmt.Sprintf("Scanning subnet %v0/24 ...", evt.Payload))
	case event.ProbeComplete:
		p, ok := evt.Payload.(event.Progress)

		if !ok {
			return
		}

		c.render(p)
	case event.PhaseSorting:
		c.println("Sorting devices ...")
		c.wait()
	case event.PhaseSaving:
		c.println("Saving devices ...")
		c.wait()
	case event.NoDevices:
		c.println("No devices found.")
	case event.ScanSaved:
		saved, ok := evt.Payload.(event.Saved)

		if !ok {
			return
		}

		c.println(fmt.Sprintf("Saved %d devices to '%s'.", saved.Count, saved.Destination))
	}
}

// probes finish in arrival order so a late notification may carry a lower
// count than one already drawn
func (c *Console) render(p event.Progress) {
	percent := p.Percent()

	if percent <= c.lastPercent {
		return
	}

	c.lastPercent = percent
	c.inline = true

	fmt.Fprintf(
		c.out,
		"\r%s %3d%% (%d/%d)",
		c.bar.ViewAs(float64(percent)/100),
		percent,
		p.Completed,
		p.Total,
	)
}

func (c *Console) println(line string) {
	if c.inline {
		fmt.Fprintln(c.out)
		c.inline = false
	}

	fmt.Fprintln(c.out, line)
}

func (c *Console) wait() {
	if c.dwell > 0 {
		time.Sleep(c.dwell)
	}
}
