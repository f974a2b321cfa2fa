package domain

import "strings"

// fallbackImpressionSuffix completes the generic phrase used when a selected
// finding has no mapped impression. It guarantees the impression covers the
// whole vocabulary even when the catalog gains a finding before its phrase.
const fallbackImpressionSuffix = " noted. Clinical correlation recommended."

// ComposeImpression produces the impression text for a template and a set of
// selected abnormal findings.
//
// With no selection it returns the template's normal impression verbatim.
// Otherwise each finding is mapped through the template's impression phrases
// in the order the caller supplied them (selection order, not vocabulary
// order); unmapped findings fall back to a generic phrase. Phrases are joined
// by a blank line.
//
// The function is pure and idempotent.
func ComposeImpression(t *ExamTemplate, selected []string) string {
	if len(selected) == 0 {
		return t.NormalImpression
	}

	phrases := make([]string, 0, len(selected))
	for _, finding := range selected {
		phrase, ok := t.AbnormalImpressions[finding]
		if !ok {
			phrase = finding + fallbackImpressionSuffix
		}
		phrases = append(phrases, phrase)
	}

	return strings.Join(phrases, "\n\n")
}
