package engine

import "strings"

// FallbackAppName is used when the idea text yields no usable characters.
const FallbackAppName = "MyApp"

// maxAppNameLen caps derived names so generated filenames and site hostnames
// stay reasonable. Whole words are dropped rather than cut mid-word; only a
// single over-long word is hard-truncated.
const maxAppNameLen = 20

// DeriveName turns raw idea text into an application name that is safe for
// filenames, identifiers and placeholder substitution: ASCII alphanumerics
// only, title-cased words concatenated, never empty, deterministic.
func DeriveName(idea string) string {
	var words []string
	var cur strings.Builder
	for _, r := range idea {
		if isAlnum(r) {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}

	var name strings.Builder
	for _, w := range words {
		titled := strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		if name.Len()+len(titled) > maxAppNameLen {
			if name.Len() == 0 {
				return titled[:maxAppNameLen]
			}
			break
		}
		name.WriteString(titled)
	}
	if name.Len() == 0 {
		return FallbackAppName
	}
	return name.String()
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
