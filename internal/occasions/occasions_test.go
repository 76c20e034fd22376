package occasions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_KeywordSelectsOccasion(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	name, rule := table.Match("going to a wedding")

	assert.Equal(t, "wedding", name)
	require.NotNil(t, rule)
	assert.Contains(t, rule.Keywords, "wedding")
}

func TestMatch_IsCaseInsensitive(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	name, _ := table.Match("Big WEDDING reception tonight")

	assert.Equal(t, "wedding", name)
}

func TestMatch_FirstMatchWins(t *testing.T) {
	data := []byte(`{
		"default_occasion": "second",
		"occasions": [
			{"name": "first", "keywords": ["dinner"], "allowed_categories": {"tops": [], "bottoms": [], "shoes": [], "accessories": []}, "forbidden_categories": [], "style_notes": ""},
			{"name": "second", "keywords": ["dinner"], "allowed_categories": {"tops": [], "bottoms": [], "shoes": [], "accessories": []}, "forbidden_categories": [], "style_notes": ""}
		]
	}`)
	table, err := Parse(data)
	require.NoError(t, err)

	name, _ := table.Match("dinner plans")

	assert.Equal(t, "first", name, "match order must follow configuration order")
}

func TestMatch_FallsBackToDefault(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	name, rule := table.Match("something nobody configured")

	assert.Equal(t, "casual", name)
	require.NotNil(t, rule)
}

func TestMatch_NeverReturnsNilRule(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	for _, input := range []string{"", "   ", "zzzzz", "wedding", "gym session"} {
		name, rule := table.Match(input)
		assert.NotEmpty(t, name, "input %q", input)
		assert.NotNil(t, rule, "input %q", input)
	}
}

func TestLookup(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	rule, ok := table.Lookup("office")
	require.True(t, ok)
	assert.NotEmpty(t, rule.StyleNotes)

	_, ok = table.Lookup("no-such-occasion")
	assert.False(t, ok)
}

func TestParse_RejectsMissingDefault(t *testing.T) {
	data := []byte(`{
		"default_occasion": "beach",
		"occasions": [
			{"name": "casual", "keywords": ["casual"], "allowed_categories": {"tops": [], "bottoms": [], "shoes": [], "accessories": []}, "forbidden_categories": [], "style_notes": ""}
		]
	}`)

	_, err := Parse(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "default occasion")
}

func TestParse_RejectsSchemaViolations(t *testing.T) {
	// allowed_categories missing the shoes slot
	data := []byte(`{
		"default_occasion": "casual",
		"occasions": [
			{"name": "casual", "keywords": [], "allowed_categories": {"tops": [], "bottoms": [], "accessories": []}, "forbidden_categories": [], "style_notes": ""}
		]
	}`)

	_, err := Parse(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid occasion rules")
}

func TestParse_RejectsDuplicateOccasions(t *testing.T) {
	data := []byte(`{
		"default_occasion": "casual",
		"occasions": [
			{"name": "casual", "keywords": [], "allowed_categories": {"tops": [], "bottoms": [], "shoes": [], "accessories": []}, "forbidden_categories": [], "style_notes": ""},
			{"name": "casual", "keywords": [], "allowed_categories": {"tops": [], "bottoms": [], "shoes": [], "accessories": []}, "forbidden_categories": [], "style_notes": ""}
		]
	}`)

	_, err := Parse(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate occasion")
}

func TestLoad_EmbeddedRulesAreValid(t *testing.T) {
	table, err := Load()
	require.NoError(t, err)

	names := table.Names()
	assert.NotEmpty(t, names)

	defaultName, rule := table.Default()
	assert.Equal(t, "casual", defaultName)
	require.NotNil(t, rule)
}
