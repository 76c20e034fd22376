package stylist

import (
	"regexp"
	"strings"
)

// UnresolvedTopPlaceholder marks a suggestion whose Top could not be
// recovered. It is a visible fallback, not a real recovery: callers should
// log it so the gap stays observable.
const UnresolvedTopPlaceholder = "(Please select a top item)"

// completeOutfitKeywords identify garments that fill the Top slot on their
// own and need no separate Bottom. Matched as case-insensitive substrings of
// the extracted slot phrase, not the original wardrobe category.
var completeOutfitKeywords = []string{
	"saree", "sari", "set", "lehenga", "anarkali", "sharara",
	"suit", "chudi", "salwar", "dress", "gown", "frock", "maxi",
}

var (
	topLineRe    = regexp.MustCompile(`(?i)Top:\s*(.+)`)
	bottomLineRe = regexp.MustCompile(`(?i)Bottom:\s*(.+)`)
)

// Repair post-processes generated styling text to enforce the structural
// outfit invariants the generator routinely violates:
//
//  1. a complete-outfit garment in Bottom with an empty Top is swapped up;
//  2. a complete-outfit garment in Bottom with Top occupied clears Bottom;
//  3. a complete-outfit garment in Top forces Bottom to "None needed";
//  4. an empty Top after all of the above becomes a visible placeholder.
//
// Only the first occurrence of each label line is rewritten; everything else
// passes through untouched. Repair is total: malformed or label-free text
// comes back unchanged rather than failing the request.
func Repair(text string) string {
	top := extractLine(topLineRe, text)
	bottom := extractLine(bottomLineRe, text)

	if isCompleteOutfit(bottom) {
		if isNoneValue(top) {
			// Swap: the generator put the whole outfit in Bottom.
			text = replaceLine(topLineRe, text, "Top: "+bottom)
			text = replaceLine(bottomLineRe, text, "Bottom: "+NoneNeeded)
			top = bottom
		} else {
			text = replaceLine(bottomLineRe, text, "Bottom: "+NoneNeeded)
		}
	}

	// Re-evaluated on the possibly-rewritten Top.
	if isCompleteOutfit(top) {
		text = replaceLine(bottomLineRe, text, "Bottom: "+NoneNeeded)
	}

	if isNoneValue(top) {
		text = replaceLine(topLineRe, text, "Top: "+UnresolvedTopPlaceholder)
	}

	return text
}

// NeedsTopFallback reports whether repaired text carries the unresolved-Top
// placeholder.
func NeedsTopFallback(text string) bool {
	return strings.Contains(text, UnresolvedTopPlaceholder)
}

// extractLine returns the trimmed value of the first matching label line, or
// "" when the label is absent.
func extractLine(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// replaceLine rewrites the first occurrence of a label line in place. Absent
// labels are left alone; there is nothing sensible to rewrite.
func replaceLine(re *regexp.Regexp, text, replacement string) string {
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + replacement + text[loc[1]:]
}

// isCompleteOutfit reports whether the phrase names a garment that needs no
// separate bottom.
func isCompleteOutfit(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, kw := range completeOutfitKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// isNoneValue reports whether a slot value is effectively empty.
func isNoneValue(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "none needed":
		return true
	}
	return false
}
