// Package stylist assembles the constrained styling prompt, repairs the
// generator's reply, and parses it into a structured outfit suggestion.
package stylist

import (
	"fmt"
	"strings"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/occasions"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

// Literal strings shared between the prompt template and the repair pass.
// The repair pass recognizes these exact values in the generated text, so
// they must never drift independently.
const (
	// EmptyBucketPlaceholder renders in place of an empty item list.
	EmptyBucketPlaceholder = "(No items available for this occasion)"
	// NoneNeeded marks a slot a complete outfit makes redundant.
	NoneNeeded = "None needed"
	// NotAvailable marks a slot with no wardrobe candidates.
	NotAvailable = "Not available in wardrobe"
)

// PromptInput carries everything the prompt template needs.
type PromptInput struct {
	ProfileName  string
	OccasionName string
	Rule         *occasions.Rule
	Selection    closet.Selection
	Weather      *weather.Weather
	Advice       string
}

// BuildPrompt renders the system instruction for the styling generator.
// Section order is a contract with both the generator and the repair pass:
// header, optional weather block, six item lists, five rule blocks, output
// template. Reordering sections or changing the literal fallback strings
// breaks repair.
func BuildPrompt(in PromptInput) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are a Fashion Stylist for %s.\n\n", in.ProfileName))
	sb.WriteString(fmt.Sprintf("OCCASION: %s\n\n", strings.ToUpper(in.OccasionName)))

	if in.Weather != nil {
		sb.WriteString(fmt.Sprintf("CURRENT WEATHER in %s: %d°C, %s\n", in.Weather.City, in.Weather.Temp, in.Weather.Description))
		sb.WriteString(fmt.Sprintf("WEATHER TIP: %s\n\n", in.Advice))
	}

	sb.WriteString("WARDROBE - SELECT ONLY FROM THESE LISTS:\n\n")
	sb.WriteString("[TOPS LIST]\n")
	sb.WriteString(formatBucket(in.Selection.Tops))
	sb.WriteString("\n\n[BOTTOMS LIST]\n")
	sb.WriteString(formatBucket(in.Selection.Bottoms))
	sb.WriteString("\n\n[DRESSES/SETS LIST]\n")
	sb.WriteString(formatBucket(in.Selection.Dresses))
	sb.WriteString("\n\n[SAREES LIST]\n")
	sb.WriteString(formatBucket(in.Selection.Sarees))
	sb.WriteString("\n\n[SHOES LIST]\n")
	sb.WriteString(formatBucket(in.Selection.Shoes))
	sb.WriteString("\n\n[ACCESSORIES LIST]\n")
	sb.WriteString(formatBucket(in.Selection.Accessories))

	sb.WriteString("\n\n=== ABSOLUTE RULES (MUST FOLLOW) ===\n\n")

	sb.WriteString("RULE 1 - NO HALLUCINATION (MOST IMPORTANT):\n")
	sb.WriteString("- You can ONLY suggest items that appear EXACTLY in the lists above\n")
	sb.WriteString("- If an item is not in the list, DO NOT suggest it\n")
	sb.WriteString("- NEVER invent or make up item names\n")
	sb.WriteString(fmt.Sprintf("- If no suitable item exists in a category, write: %q\n", NotAvailable))
	sb.WriteString("- Copy the EXACT item name as shown, character for character\n\n")

	sb.WriteString("RULE 2 - CATEGORY PLACEMENT (CRITICAL - NEVER VIOLATE):\n")
	sb.WriteString(fmt.Sprintf("- Top: MUST select from [TOPS LIST], [DRESSES/SETS LIST], or [SAREES LIST]. Top can NEVER be %q\n", NoneNeeded))
	sb.WriteString(fmt.Sprintf("- Bottom: ONLY select from [BOTTOMS LIST] or write %q. NEVER put a dress here\n", NoneNeeded))
	sb.WriteString("- Shoes: ONLY select from [SHOES LIST]\n")
	sb.WriteString("- Accessory: ONLY select from [ACCESSORIES LIST]\n")
	sb.WriteString("- A DRESS or SAREE always goes in the TOP field, NEVER in Bottom\n\n")

	sb.WriteString("RULE 3 - COMPLETE OUTFIT DETECTION:\n")
	sb.WriteString("If your Top selection contains: saree, sari, set, lehenga, anarkali, sharara, suit, chudi, salwar, dress, gown\n")
	sb.WriteString(fmt.Sprintf("-> Bottom MUST be %q\n", NoneNeeded))
	sb.WriteString("If Top is a standalone item (shirt, blouse, kurti, top, crop top)\n")
	sb.WriteString("-> You MUST pick a Bottom from [BOTTOMS LIST]\n\n")

	sb.WriteString("RULE 4 - COLOR PREFERENCES:\n")
	sb.WriteString("If the user requests a specific color:\n")
	sb.WriteString("- First try to find that color in items APPROPRIATE for the occasion\n")
	sb.WriteString("- If the color is NOT available in appropriate items, suggest a SIMILAR shade that IS available\n")
	sb.WriteString("- Occasion appropriateness is MORE important than color match\n\n")

	sb.WriteString("RULE 5 - STYLE GUIDELINES:\n")
	sb.WriteString(in.Rule.StyleNotes)
	sb.WriteString("\n\n=== OUTPUT FORMAT (FOLLOW EXACTLY) ===\n\n")

	sb.WriteString("Overall Outfit Suggestion:\n")
	sb.WriteString(fmt.Sprintf("[Write exactly 2 sentences: First sentence explains why this outfit combination works well together. Second sentence describes how this look is perfect for %s.]\n\n", in.OccasionName))
	sb.WriteString("Top: [EXACT item from TOPS/DRESSES/SAREES list - NEVER \"None needed\"]\n")
	sb.WriteString(fmt.Sprintf("Bottom: [EXACT item from BOTTOMS list OR %q if Top is saree/set/dress]\n", NoneNeeded))
	sb.WriteString(fmt.Sprintf("Shoes: [EXACT item from SHOES list OR %q]\n", NotAvailable))
	sb.WriteString(fmt.Sprintf("Accessory: [EXACT item from ACCESSORIES list OR %q]\n\n", NotAvailable))
	sb.WriteString("DO NOT add any text after the Accessory line. End your response there.")

	return sb.String()
}

// BuildUserMessage renders the short per-request instruction sent alongside
// the system prompt.
func BuildUserMessage(occasion string) string {
	return fmt.Sprintf("Suggest an outfit for: %s", occasion)
}

// formatBucket renders a candidate bucket as a newline-bulleted list, or the
// literal empty-bucket placeholder.
func formatBucket(items []string) string {
	if len(items) == 0 {
		return EmptyBucketPlaceholder
	}
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}
	return sb.String()
}
