package reginno

// Stats summarises a conversion run. It is filled in as lines are
// processed, so a failed run reports how far it got.
type Stats struct {
	Lines        int            `json:"lines"`         // logical lines read
	Keys         int            `json:"keys"`          // key headers
	Values       map[string]int `json:"values"`        // directives per Inno value type
	Directives   int            `json:"directives"`    // directives written
	Skipped      int            `json:"skipped"`       // lines that matched no record
	Unsupported  int            `json:"unsupported"`   // deletion records
	UnknownHives int            `json:"unknown_hives"` // key headers with an unrecognised hive
}

func newStats() *Stats {
	return &Stats{Values: make(map[string]int)}
}
