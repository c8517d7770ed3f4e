package classify

import "strings"

// Rule maps any of a set of vendor substrings to a device type
type Rule struct {
	Match []string `yaml:"match"`
	Type  string   `yaml:"type"`
}

// Classifier tags vendor names with coarse device-type hints
type Classifier struct {
	rules []Rule
}

// DefaultRules the built-in vendor classification table
func DefaultRules() []Rule {
	return []Rule{
		{
			Match: []string{"elau", "schneider", "telemecanique"},
			Type:  "Schneider Controller",
		},
		{
			Match: []string{"axis"},
			Type:  "IP Camera",
		},
	}
}

// New returns a Classifier checking the built-in rules first followed by
// any extra rules in the order given
func New(extra ...Rule) *Classifier {
	rules := DefaultRules()

	for _, r := range extra {
		normalized := Rule{Type: strings.TrimSpace(r.Type)}

		for _, m := range r.Match {
			m = normalize(m)

			if m != "" {
				normalized.Match = append(normalized.Match, m)
			}
		}

		if normalized.Type == "" || len(normalized.Match) == 0 {
			continue
		}

		rules = append(rules, normalized)
	}

	return &Classifier{rules: rules}
}

// Classify returns the device type for vendor and true, or "" and false
// when no rule matches. First matching rule wins.
func (c *Classifier) Classify(vendor string) (string, bool) {
	v := normalize(vendor)

	if v == "" {
		return "", false
	}

	for _, r := range c.rules {
		for _, m := range r.Match {
			if strings.Contains(v, m) {
				return r.Type, true
			}
		}
	}

	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
