package stylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepair_SwapsCompleteOutfitUpFromBottom(t *testing.T) {
	got := Repair("Top: None needed\nBottom: red saree\n")

	assert.Equal(t, "Top: red saree\nBottom: None needed\n", got)
}

func TestRepair_LeavesValidOutfitUnchanged(t *testing.T) {
	text := "Top: blue shirt\nBottom: black jeans\n"

	assert.Equal(t, text, Repair(text))
}

func TestRepair_CompleteOutfitInTopForcesBottom(t *testing.T) {
	got := Repair("Top: floral dress\nBottom: denim shorts\n")

	assert.Equal(t, "Top: floral dress\nBottom: None needed\n", got)
}

func TestRepair_ClearsBottomWhenBothSlotsFilled(t *testing.T) {
	// Top occupied by a standalone garment, Bottom holds a complete outfit.
	got := Repair("Top: white kurti\nBottom: green lehenga\n")

	assert.Equal(t, "Top: white kurti\nBottom: None needed\n", got)
}

func TestRepair_EmptyTopBecomesPlaceholder(t *testing.T) {
	got := Repair("Top: none\nBottom: black jeans\n")

	assert.Contains(t, got, "Top: "+UnresolvedTopPlaceholder)
	assert.Contains(t, got, "Bottom: black jeans")
}

func TestRepair_SwapAndPlaceholderAreCaseInsensitive(t *testing.T) {
	got := Repair("top: NONE NEEDED\nbottom: Silk Saree\n")

	assert.Contains(t, got, "Top: Silk Saree")
	assert.Contains(t, got, "Bottom: None needed")
}

func TestRepair_RewritesOnlyFirstLabelOccurrence(t *testing.T) {
	text := "Top: red gown\nBottom: jeans\nBottom: second mention\n"

	got := Repair(text)

	assert.Equal(t, "Top: red gown\nBottom: None needed\nBottom: second mention\n", got)
}

func TestRepair_KeywordMatchesAsSubstring(t *testing.T) {
	// "sharara set" hits two keywords; still a single rewrite.
	got := Repair("Top: embroidered sharara set\nBottom: palazzo pants\n")

	assert.Equal(t, "Top: embroidered sharara set\nBottom: None needed\n", got)
}

func TestRepair_TextWithoutLabelsPassesThrough(t *testing.T) {
	text := "I could not find anything suitable."

	assert.Equal(t, text, Repair(text))
}

func TestRepair_SurroundingTextSurvives(t *testing.T) {
	text := "Overall Outfit Suggestion:\nA breezy look.\n\nTop: None needed\nBottom: cotton saree\nShoes: sandals\nAccessory: jhumkas\n"

	got := Repair(text)

	assert.Contains(t, got, "Overall Outfit Suggestion:\nA breezy look.")
	assert.Contains(t, got, "Top: cotton saree")
	assert.Contains(t, got, "Bottom: None needed")
	assert.Contains(t, got, "Shoes: sandals")
	assert.Contains(t, got, "Accessory: jhumkas")
}

func TestNeedsTopFallback(t *testing.T) {
	assert.True(t, NeedsTopFallback("Top: "+UnresolvedTopPlaceholder+"\n"))
	assert.False(t, NeedsTopFallback("Top: blue shirt\n"))
}

func TestIsCompleteOutfit(t *testing.T) {
	assert.True(t, isCompleteOutfit("Banarasi Saree"))
	assert.True(t, isCompleteOutfit("maxi skirt"))
	assert.False(t, isCompleteOutfit("linen shirt"))
	assert.False(t, isCompleteOutfit(""))
}

func TestIsNoneValue(t *testing.T) {
	assert.True(t, isNoneValue(""))
	assert.True(t, isNoneValue("  None  "))
	assert.True(t, isNoneValue("none needed"))
	assert.False(t, isNoneValue("blue shirt"))
}
