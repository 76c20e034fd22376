package weather

import "strings"

// Temperature thresholds for the advisory sentences, in degrees Celsius.
const (
	hotThreshold  = 30
	coldThreshold = 15
)

// Advice derives the short advisory text injected into styling prompts.
// A nil weather yields an empty string, as does weather that triggers no
// threshold.
func Advice(w *Weather) string {
	if w == nil {
		return ""
	}

	var notes []string
	if w.Temp >= hotThreshold {
		notes = append(notes, "It's hot! Suggest light, breathable fabrics.")
	} else if w.Temp <= coldThreshold {
		notes = append(notes, "It's cold! Suggest warm layers.")
	}

	if strings.Contains(strings.ToLower(w.Condition), "rain") {
		notes = append(notes, "It's rainy! Suggest water-resistant items.")
	}

	return strings.Join(notes, " ")
}
