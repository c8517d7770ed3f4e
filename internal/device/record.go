package device

// Classification optional device-type hint derived from vendor name
type Classification struct {
	DeviceType string `json:"type"`
}

// Record represents a single responding host on the scanned network
type Record struct {
	IP             string          `json:"ip-address"`
	MAC            string          `json:"mac-address"`
	Vendor         string          `json:"vendor-name"`
	ResponseTime   float64         `json:"response-time"`
	Classification *Classification `json:"additional,omitempty"`
}
