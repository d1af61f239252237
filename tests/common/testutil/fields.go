//go:build unit || e2e

package testutil

import "strings"

// Field sets or, for a nil value, deletes a key. Dotted keys such as
// "location.lat" walk into nested objects.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, p := range path[:len(path)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				return
			}
			m = next
		}
		last := path[len(path)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}
