// Package closet partitions a wardrobe snapshot into per-slot candidate
// buckets for a resolved occasion. All matching is case-insensitive substring
// containment against item names and categories; items are request-scoped
// copies and never mutated.
package closet

import (
	"math/rand"
	"strings"

	"github.com/meera/wardrobe-stylist/internal/occasions"
)

// Item is a snapshot of a single wardrobe item. Name doubles as the display
// label and must be carried verbatim into any bucket.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Selection holds the filtered candidate buckets for one request.
// Dresses and Sarees are complete-outfit garments tracked separately from the
// four slots; they surface only in the Top candidate pool of the prompt.
type Selection struct {
	Tops        []string
	Bottoms     []string
	Shoes       []string
	Accessories []string
	Dresses     []string
	Sarees      []string
}

// Shuffle reorders a bucket in place. Production uses RandomShuffle to vary
// which items the generator sees first; tests inject NoShuffle to assert
// exact bucket contents.
type Shuffle func([]string)

// RandomShuffle is the production shuffle.
func RandomShuffle(items []string) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// NoShuffle keeps snapshot order. Intended for tests.
func NoShuffle([]string) {}

// dressKeywords and sareeKeywords classify complete-outfit garments by
// category. The dress check runs first, so an item matching both lands in
// Dresses only.
var (
	dressKeywords = []string{"dress", "gown", "frock", "set", "suit"}
	sareeKeywords = []string{"saree", "sari"}
)

// Filter builds a Selection from a wardrobe snapshot and an occasion rule.
// It is a total function: an empty snapshot yields empty buckets.
// A nil shuffle defaults to RandomShuffle.
func Filter(items []Item, rule *occasions.Rule, shuffle Shuffle) Selection {
	if shuffle == nil {
		shuffle = RandomShuffle
	}

	sel := Selection{
		Tops:        matchSlot(items, rule, rule.AllowedCategories.Tops),
		Bottoms:     matchSlot(items, rule, rule.AllowedCategories.Bottoms),
		Shoes:       matchSlot(items, rule, rule.AllowedCategories.Shoes),
		Accessories: matchSlot(items, rule, rule.AllowedCategories.Accessories),
	}

	for _, item := range items {
		if isForbidden(item, rule) {
			continue
		}
		category := strings.ToLower(strings.TrimSpace(item.Category))
		switch {
		case containsAny(category, dressKeywords):
			sel.Dresses = append(sel.Dresses, item.Name)
		case containsAny(category, sareeKeywords):
			sel.Sarees = append(sel.Sarees, item.Name)
		}
	}

	shuffle(sel.Tops)
	shuffle(sel.Bottoms)
	shuffle(sel.Shoes)
	shuffle(sel.Accessories)
	shuffle(sel.Dresses)
	shuffle(sel.Sarees)

	return sel
}

// matchSlot collects non-forbidden items matching any allowed descriptor for
// one slot. An empty allowed set is permissive: every non-forbidden item
// qualifies.
func matchSlot(items []Item, rule *occasions.Rule, allowed []string) []string {
	var matched []string
	for _, item := range items {
		if isForbidden(item, rule) {
			continue
		}
		if len(allowed) == 0 || matchesAny(item, allowed) {
			matched = append(matched, item.Name)
		}
	}
	return matched
}

// isForbidden reports whether any forbidden descriptor occurs in the item's
// name or category.
func isForbidden(item Item, rule *occasions.Rule) bool {
	return matchesAny(item, rule.ForbiddenCategories)
}

// matchesAny reports whether any descriptor occurs in the item's name or
// category, case-insensitively.
func matchesAny(item Item, descriptors []string) bool {
	name := strings.ToLower(item.Name)
	category := strings.ToLower(strings.TrimSpace(item.Category))
	for _, d := range descriptors {
		dl := strings.ToLower(d)
		if strings.Contains(name, dl) || strings.Contains(category, dl) {
			return true
		}
	}
	return false
}

// containsAny reports whether text contains any of the given keywords.
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
