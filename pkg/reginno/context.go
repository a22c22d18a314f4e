package reginno

// ParseContext is the running key context of a conversion. It changes only
// when a key header is read; every value record is interpreted against the
// most recent one.
type ParseContext struct {
	Hive string
	Key  string

	established bool
}

// Established reports whether a key header has been seen.
func (c *ParseContext) Established() bool { return c.established }

// Enter replaces the context with a new key.
func (c *ParseContext) Enter(hive, key string) {
	c.Hive = hive
	c.Key = key
	c.established = true
}
