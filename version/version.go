package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var raw string

// Version returns the release version baked into the binary.
func Version() string {
	return strings.TrimSpace(raw)
}
