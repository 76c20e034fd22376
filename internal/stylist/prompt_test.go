package stylist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/occasions"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

func promptInput() PromptInput {
	return PromptInput{
		ProfileName:  "Meera",
		OccasionName: "office",
		Rule:         &occasions.Rule{StyleNotes: "Keep it professional and polished."},
		Selection: closet.Selection{
			Tops:    []string{"white shirt", "blue blouse"},
			Bottoms: []string{"black trousers"},
			Shoes:   []string{"loafers"},
		},
	}
}

func TestBuildPrompt_SectionOrderIsFixed(t *testing.T) {
	prompt := BuildPrompt(promptInput())

	sections := []string{
		"You are a Fashion Stylist for Meera.",
		"OCCASION: OFFICE",
		"[TOPS LIST]",
		"[BOTTOMS LIST]",
		"[DRESSES/SETS LIST]",
		"[SAREES LIST]",
		"[SHOES LIST]",
		"[ACCESSORIES LIST]",
		"RULE 1",
		"RULE 2",
		"RULE 3",
		"RULE 4",
		"RULE 5",
		"Overall Outfit Suggestion:",
		"DO NOT add any text after the Accessory line. End your response there.",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(prompt, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestBuildPrompt_ItemsRenderVerbatim(t *testing.T) {
	in := promptInput()
	in.Selection.Tops = []string{"  white shirt  ", "Blue_Striped_Kurti"}

	prompt := BuildPrompt(in)

	assert.Contains(t, prompt, "-   white shirt  \n")
	assert.Contains(t, prompt, "- Blue_Striped_Kurti")
}

func TestBuildPrompt_EmptyBucketsUsePlaceholder(t *testing.T) {
	in := promptInput()
	in.Selection = closet.Selection{}

	prompt := BuildPrompt(in)

	assert.Equal(t, 6, strings.Count(prompt, EmptyBucketPlaceholder))
}

func TestBuildPrompt_WeatherBlockIsOptional(t *testing.T) {
	without := BuildPrompt(promptInput())
	assert.NotContains(t, without, "CURRENT WEATHER")
	assert.NotContains(t, without, "WEATHER TIP")

	in := promptInput()
	in.Weather = &weather.Weather{City: "Chennai", Temp: 34, Description: "Clear sky"}
	in.Advice = "It's hot! Choose light, breathable fabrics."

	with := BuildPrompt(in)
	assert.Contains(t, with, "CURRENT WEATHER in Chennai: 34°C, Clear sky")
	assert.Contains(t, with, "WEATHER TIP: It's hot! Choose light, breathable fabrics.")
}

func TestBuildPrompt_StyleNotesLandInRuleFive(t *testing.T) {
	prompt := BuildPrompt(promptInput())

	ruleFive := strings.Index(prompt, "RULE 5")
	notes := strings.Index(prompt, "Keep it professional and polished.")
	require.GreaterOrEqual(t, notes, 0)
	assert.Greater(t, notes, ruleFive)
}

func TestBuildPrompt_CarriesRepairLiterals(t *testing.T) {
	prompt := BuildPrompt(promptInput())

	assert.Contains(t, prompt, NoneNeeded)
	assert.Contains(t, prompt, NotAvailable)
}

func TestBuildUserMessage(t *testing.T) {
	assert.Equal(t, "Suggest an outfit for: casual brunch", BuildUserMessage("casual brunch"))
}
