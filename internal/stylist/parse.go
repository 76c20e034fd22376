package stylist

import (
	"regexp"
	"strings"
)

// OutfitSuggestion is the structured four-slot outfit parsed from repaired
// generator text.
type OutfitSuggestion struct {
	Top       string `json:"top"`
	Bottom    string `json:"bottom"`
	Shoes     string `json:"shoes"`
	Accessory string `json:"accessory"`
	Rationale string `json:"rationale"`
}

var (
	shoesLineRe     = regexp.MustCompile(`(?i)Shoes:\s*(.+)`)
	accessoryLineRe = regexp.MustCompile(`(?i)Accessory:\s*(.+)`)
	rationaleRe     = regexp.MustCompile(`(?is)Overall Outfit Suggestion:\s*(.+?)\n\s*Top:`)
)

// ParseSuggestion extracts the structured outfit from repaired text.
// Parsing is defensive: missing labels yield empty fields, never errors,
// because the generator's output shape is not a negotiated schema.
func ParseSuggestion(text string) OutfitSuggestion {
	return OutfitSuggestion{
		Top:       extractLine(topLineRe, text),
		Bottom:    extractLine(bottomLineRe, text),
		Shoes:     extractLine(shoesLineRe, text),
		Accessory: extractLine(accessoryLineRe, text),
		Rationale: extractRationale(text),
	}
}

// extractRationale pulls the two-sentence explanation block between the
// rationale header and the Top line. When the header is missing, it falls
// back to whatever precedes the first Top line.
func extractRationale(text string) string {
	if m := rationaleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	if loc := topLineRe.FindStringIndex(text); loc != nil {
		return strings.TrimSpace(text[:loc[0]])
	}
	return ""
}
