package report

import (
	"encoding/json"
	"net"
	"os"
	"sort"

	"github.com/robgonnella/netsweep/internal/device"
)

//go:generate mockgen -destination=../mock/report/mock_report.go -package=mock_report . Writer

// DefaultOutput file name of the persisted device inventory
const DefaultOutput = "devices.json"

// Writer persists a sorted device inventory
type Writer interface {
	Write(records []*device.Record) error
	Destination() string
}

// IPValue returns the 32-bit integer value of a dotted-quad address, most
// significant octet first. Malformed addresses return 0.
func IPValue(ip string) uint32 {
	ip4 := net.ParseIP(ip).To4()

	if ip4 == nil {
		return 0
	}

	var value uint32

	for i := 0; i < 4; i++ {
		value += uint32(ip4[i]) << (8 * (3 - i))
	}

	return value
}

// Sort orders records ascending by numeric IPv4 value
func Sort(records []*device.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return IPValue(records[i].IP) < IPValue(records[j].IP)
	})
}

// JSONWriter implements Writer for a pretty printed json file
type JSONWriter struct {
	path string
}

// NewJSONWriter returns a new instance of JSONWriter
func NewJSONWriter(path string) *JSONWriter {
	if path == "" {
		path = DefaultOutput
	}

	return &JSONWriter{path: path}
}

// Destination returns the path of the output file
func (w *JSONWriter) Destination() string {
	return w.path
}

// Write overwrites the output file with records as an indented json array
func (w *JSONWriter) Write(records []*device.Record) error {
	if records == nil {
		records = []*device.Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")

	if err != nil {
		return err
	}

	return os.WriteFile(w.path, data, 0644)
}
