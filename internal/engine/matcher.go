package engine

import (
	"strings"

	"promptforge/internal/catalog"
)

// MatchResult names the selected template and its keyword score. It always
// refers to a template present in the catalog.
type MatchResult struct {
	TemplateID string
	Score      int
}

// Match maps idea text to exactly one template. Scoring is substring
// containment over the case-folded idea: a template scores one point per
// keyword that occurs anywhere in the text, counted once per keyword. The
// template with the strictly highest score wins; on a tie the template
// registered first wins. When nothing matches at all the catalog's default
// template is selected with score 0, so Match is total and deterministic.
//
// A keyword like "url" matching inside an unrelated word is accepted; the
// scoring stays simple substring containment.
func Match(idea string, cat *catalog.Catalog) MatchResult {
	normalized := strings.ToLower(idea)

	best := MatchResult{TemplateID: cat.DefaultID(), Score: 0}
	for _, t := range cat.Templates() {
		score := 0
		for _, kw := range t.Keywords {
			if strings.Contains(normalized, kw) {
				score++
			}
		}
		if score > best.Score {
			best = MatchResult{TemplateID: t.ID, Score: score}
		}
	}
	return best
}
