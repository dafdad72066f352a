// Package attrs reads values back out of slog-style key/value pairs so one
// attribute list can feed both a log line and an audit event.
package attrs

import "fmt"

// ExtractString returns the value paired with key in [k1, v1, k2, v2, ...].
// Strings and fmt.Stringers are returned as text; any other value, a missing
// key, or a key in value position yields "".
func ExtractString(attrs []any, key string) string {
	for i := 0; i+1 < len(attrs); i += 2 {
		if k, ok := attrs[i].(string); !ok || k != key {
			continue
		}
		switch v := attrs[i+1].(type) {
		case string:
			return v
		case fmt.Stringer:
			return v.String()
		}
		return ""
	}
	return ""
}
