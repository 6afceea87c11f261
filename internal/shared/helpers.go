// Package shared provides common utility functions used across multiple
// packages in the wsdlkit codebase.
package shared

import "strings"

// HasText reports whether a string contains any non-whitespace content.
func HasText(value string) bool {
	return strings.TrimSpace(value) != ""
}
