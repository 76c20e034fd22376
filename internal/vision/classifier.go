package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/meera/wardrobe-stylist/internal/llm"
)

// ImageClassifier answers a structured classification prompt about one image.
type ImageClassifier interface {
	ClassifyImage(ctx context.Context, prompt, format string, image []byte, tier llm.ModelTier) (string, error)
}

// Attributes is the normalized classification of one wardrobe photo.
type Attributes struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Pattern  string `json:"pattern,omitempty"`
	Material string `json:"material,omitempty"`
}

// Classifier turns wardrobe photos into normalized attributes and item names.
type Classifier struct {
	client ImageClassifier
}

// NewClassifier creates a Classifier backed by a multimodal model client.
func NewClassifier(client ImageClassifier) *Classifier {
	return &Classifier{client: client}
}

// Classify sends one image through the model and normalizes the reply against
// the closed vocabularies. format is the image subtype ("jpeg", "png").
func (c *Classifier) Classify(ctx context.Context, image []byte, format string) (*Attributes, error) {
	raw, err := c.client.ClassifyImage(ctx, classificationPrompt(), format, image, llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to classify image: %w", err)
	}

	var attrs Attributes
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &attrs); err != nil {
		return nil, fmt.Errorf("failed to parse classification reply: %w", err)
	}

	normalize(&attrs)
	return &attrs, nil
}

// classificationPrompt asks for a single JSON object constrained to the label
// vocabularies.
func classificationPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are classifying a single photo of a clothing item or accessory for a wardrobe app.\n")
	sb.WriteString("Respond with ONE JSON object and nothing else, with these keys:\n\n")
	sb.WriteString(fmt.Sprintf("- \"type\": the garment type, chosen ONLY from: %s\n", strings.Join(allTypes, ", ")))
	sb.WriteString(fmt.Sprintf("- \"category\": chosen ONLY from: %s\n", strings.Join(Categories(), ", ")))
	sb.WriteString(fmt.Sprintf("- \"color\": the dominant color, chosen ONLY from: %s\n", strings.Join(Colors, ", ")))
	sb.WriteString(fmt.Sprintf("- \"pattern\": chosen ONLY from: %s. Use \"plain\" when unsure.\n", strings.Join(Patterns, ", ")))
	sb.WriteString(fmt.Sprintf("- \"material\": chosen ONLY from: %s. Use \"\" when unsure.\n", strings.Join(Materials, ", ")))
	sb.WriteString("\nPick the single best value for each key. Never invent values outside the lists.")
	return sb.String()
}

// normalize lowercases every field and drops off-vocabulary answers. An
// unrecognized color becomes "multicolor"; an unrecognized pattern or material
// is dropped; the category is re-derived from the type when the type is known.
func normalize(attrs *Attributes) {
	attrs.Type = strings.ToLower(strings.TrimSpace(attrs.Type))
	attrs.Color = strings.ToLower(strings.TrimSpace(attrs.Color))
	attrs.Pattern = strings.ToLower(strings.TrimSpace(attrs.Pattern))
	attrs.Material = strings.ToLower(strings.TrimSpace(attrs.Material))
	attrs.Category = strings.TrimSpace(attrs.Category)

	if attrs.Type == "" {
		attrs.Type = "item"
	}
	if !contains(Colors, attrs.Color) {
		attrs.Color = "multicolor"
	}
	if !contains(Patterns, attrs.Pattern) {
		attrs.Pattern = ""
	}
	if !contains(Materials, attrs.Material) {
		attrs.Material = ""
	}

	if category, ok := typeToCategory[attrs.Type]; ok {
		attrs.Category = category
	} else if !contains(Categories(), attrs.Category) {
		attrs.Category = "Top"
	}
}

// ComposeName builds the stored item name from normalized attributes:
// color, then pattern, then a distinctive material, then the type, joined by
// underscores. Pattern and material are skipped for accessories and shoes,
// and any part already present in the type text is not repeated.
func ComposeName(attrs Attributes) string {
	typePart := strings.ToLower(strings.ReplaceAll(attrs.Type, " ", "_"))

	var parts []string
	if attrs.Color != "" && attrs.Color != "unknown" && !strings.Contains(typePart, attrs.Color) {
		parts = append(parts, attrs.Color)
	}

	if attrs.Category != "Accessory" && attrs.Category != "Shoes" {
		if attrs.Pattern != "" && attrs.Pattern != "plain" && !strings.Contains(typePart, attrs.Pattern) {
			parts = append(parts, attrs.Pattern)
		}
		if distinctiveMaterials[attrs.Material] && !strings.Contains(typePart, attrs.Material) {
			parts = append(parts, attrs.Material)
		}
	}

	parts = append(parts, typePart)

	name := strings.Join(parts, "_")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "__", "_")
	return strings.ToLower(strings.Trim(name, "_"))
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
