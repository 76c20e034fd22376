package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_CodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"color\": \"red\"}\n```", `{"color": "red"}`},
		{"bare fence", "```\n{\"color\": \"red\"}\n```", `{"color": "red"}`},
		{"fence with language", "```javascript\n{\"color\": \"red\"}\n```", `{"color": "red"}`},
		{"no fence", `{"color": "red"}`, `{"color": "red"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_SurroundingText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "preamble before object",
			input: "Here is the classification:\n{\"type\": \"saree\"}",
			want:  `{"type": "saree"}`,
		},
		{
			name:  "trailing chatter",
			input: "{\"type\": \"saree\"}\n\nLet me know if you need anything else!",
			want:  `{"type": "saree"}`,
		},
		{
			name:  "preamble before array",
			input: "Matching items:\n[\"red saree\", \"silk blouse\"]",
			want:  `["red saree", "silk blouse"]`,
		},
		{
			name:  "nested objects",
			input: "Result: {\"item\": {\"type\": \"kurti\", \"color\": \"blue\"}}",
			want:  `{"item": {"type": "kurti", "color": "blue"}}`,
		},
		{
			name:  "braces inside strings",
			input: "Output: {\"note\": \"wear {color} accents\"}",
			want:  `{"note": "wear {color} accents"}`,
		},
		{
			name:  "escaped quotes",
			input: "{\"note\": \"a \\\"bold\\\" look\"} done",
			want:  `{"note": "a \"bold\" look"}`,
		},
		{
			name:  "no json at all",
			input: "Sorry, I cannot classify this image.",
			want:  "Sorry, I cannot classify this image.",
		},
		{
			name:  "unterminated object left alone",
			input: `{"type": "saree"`,
			want:  `{"type": "saree"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_FencedReplyWithPreamble(t *testing.T) {
	input := "Sure! Here you go:\n```json\n{\"type\": \"dress\"}\n```"
	assert.Equal(t, `{"type": "dress"}`, CleanJSONBlock(input))
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `{"type": "top"}`, `{"type": "top"}`},
		{"mid-text", `classification: {"type": "top"} done`, `{"type": "top"}`},
		{"object holding array", `{"items": [1, 2, 3]}`, `{"items": [1, 2, 3]}`},
		{"empty input", "", ""},
		{"no object", "not json", ""},
		{"unbalanced", `{"type": "top"`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.input))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", `["a", "b"]`, `["a", "b"]`},
		{"nested", `[[1, 2], [3, 4]]`, `[[1, 2], [3, 4]]`},
		{"array of objects", `[{"id": 1}, {"id": 2}]`, `[{"id": 1}, {"id": 2}]`},
		{"trailing text", `[1, 2, 3] extra`, `[1, 2, 3]`},
		{"empty input", "", ""},
		{"no array", "not an array", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.input))
		})
	}
}
