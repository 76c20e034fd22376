// Package occasions holds the occasion-rule table that drives wardrobe
// filtering and prompt style guidance. Rules are loaded once at startup and
// are immutable afterwards.
package occasions

import "strings"

// SlotLists holds the allowed descriptor substrings for each outfit slot.
// An empty list means every non-forbidden item qualifies for that slot.
type SlotLists struct {
	Tops        []string `json:"tops"`
	Bottoms     []string `json:"bottoms"`
	Shoes       []string `json:"shoes"`
	Accessories []string `json:"accessories"`
}

// Rule describes how a single occasion constrains the wardrobe.
type Rule struct {
	Keywords            []string  `json:"keywords"`
	AllowedCategories   SlotLists `json:"allowed_categories"`
	ForbiddenCategories []string  `json:"forbidden_categories"`
	StyleNotes          string    `json:"style_notes"`
}

// namedRule pairs a rule with its occasion name, preserving file order.
type namedRule struct {
	Name string `json:"name"`
	Rule
}

// Table is an ordered occasion-rule table with a designated default.
// Match iterates rules in configuration order; first match wins.
type Table struct {
	rules       []namedRule
	byName      map[string]*Rule
	defaultName string
}

// Match returns the first occasion whose keyword occurs (case-insensitively)
// in the input, falling back to the default occasion. It is a total function:
// it never fails at request time.
func (t *Table) Match(input string) (string, *Rule) {
	lower := strings.ToLower(input)
	for i := range t.rules {
		for _, kw := range t.rules[i].Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return t.rules[i].Name, &t.rules[i].Rule
			}
		}
	}
	return t.Default()
}

// Default returns the configured default occasion and its rule.
func (t *Table) Default() (string, *Rule) {
	return t.defaultName, t.byName[t.defaultName]
}

// Lookup returns the rule for a specific occasion name.
func (t *Table) Lookup(name string) (*Rule, bool) {
	rule, ok := t.byName[name]
	return rule, ok
}

// Names returns the occasion names in configuration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.rules))
	for i := range t.rules {
		names[i] = t.rules[i].Name
	}
	return names
}
