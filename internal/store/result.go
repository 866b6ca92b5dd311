package store

// Result reports what a command did. Commands never return errors: a reference to an
// unknown résumé, version, section, item or field (or an index outside the list) is a
// stale UI reference and yields NotFound with the state left untouched.
type Result int

const (
	// Applied means the command changed the state.
	Applied Result = iota
	// NotFound means a referenced id or index did not resolve, or nothing is selected.
	NotFound
	// Invalid means an argument was outside its closed domain, such as an unknown
	// section type.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Applied:
		return "applied"
	case NotFound:
		return "not found"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// OK reports whether the command was applied.
func (r Result) OK() bool {
	return r == Applied
}
