// Package pathext extracts extension hints from archive entry names.
package pathext

import "strings"

// Ext returns the text after the final '.' in name. The second result is
// false when name contains no '.', in which case there is no extension.
func Ext(name string) (string, bool) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", false
	}
	return name[i+1:], true
}
