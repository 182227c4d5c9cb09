package engine

import (
	"strings"

	"promptforge/internal/catalog"
)

// Assemble substitutes every occurrence of the placeholder token with the
// application name across all four artifact slots. The substitution is total:
// the returned artifacts contain zero remaining placeholder occurrences
// (derived names are alphanumeric, so a replacement can never reintroduce the
// token). Assembly is pure and idempotent.
func Assemble(raw catalog.Artifacts, appName string) catalog.Artifacts {
	return catalog.Artifacts{
		Frontend: strings.ReplaceAll(raw.Frontend, catalog.PlaceholderToken, appName),
		Backend:  strings.ReplaceAll(raw.Backend, catalog.PlaceholderToken, appName),
		Database: strings.ReplaceAll(raw.Database, catalog.PlaceholderToken, appName),
		Deploy:   strings.ReplaceAll(raw.Deploy, catalog.PlaceholderToken, appName),
	}
}
