package parse

type ParseConfig struct {
	strict bool
}

type ParseOption func(*ParseConfig)

// ParseStrict makes the underlying XML decoder reject malformed
// markup and unknown entities instead of recovering. Off by default:
// document fragments in the wild carry both.
func ParseStrict(v bool) ParseOption {
	return func(c *ParseConfig) {
		c.strict = v
	}
}
