package mappers

// ResolveField returns the value of the first candidate key that is present
// in raw with a non-null value. Later keys are never consulted once a match
// is found, so key order encodes priority: callers list the most
// authoritative backend dialect first.
//
// A raw value that is not a JSON object resolves nothing. Malformed payloads
// are the normal case here, not an error, so absence is always signaled by
// ok=false and never by a panic or an error value.
func ResolveField(raw any, keys ...string) (any, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
