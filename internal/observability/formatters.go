// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/meera/wardrobe-stylist/internal/closet"
	"github.com/meera/wardrobe-stylist/internal/stylist"
	"github.com/meera/wardrobe-stylist/internal/weather"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display per category
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintWardrobe outputs a per-category summary of the loaded wardrobe.
func (p *Printer) PrintWardrobe(items []closet.Item) {
	if len(items) == 0 {
		p.printBox("WARDROBE", "(empty)")
		return
	}

	byCategory := map[string][]string{}
	var order []string
	for _, item := range items {
		if _, seen := byCategory[item.Category]; !seen {
			order = append(order, item.Category)
		}
		byCategory[item.Category] = append(byCategory[item.Category], item.Name)
	}

	var sb strings.Builder
	for _, category := range order {
		names := byCategory[category]
		sb.WriteString(fmt.Sprintf("%s (%d):\n", category, len(names)))
		shown := names
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		for _, name := range shown {
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		}
		if len(names) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-maxItemsToShow))
		}
	}

	p.printBox("WARDROBE", strings.TrimRight(sb.String(), "\n"))
}

// PrintWeather outputs the weather snapshot used for the suggestion.
func (p *Printer) PrintWeather(w *weather.Weather) {
	if w == nil {
		p.printBox("WEATHER", "(unavailable)")
		return
	}

	content := fmt.Sprintf("City:       %s\nTemp:       %d°C (feels like %d°C)\nHumidity:   %d%%\nCondition:  %s",
		w.City, w.Temp, w.FeelsLike, w.Humidity, w.Condition)
	p.printBox("WEATHER", content)
}

// PrintResult outputs the matched occasion and the parsed outfit slots.
func (p *Printer) PrintResult(result *stylist.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Occasion:   %s\n", result.MatchedOccasion))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Top:        %s\n", result.Outfit.Top))
	sb.WriteString(fmt.Sprintf("Bottom:     %s\n", result.Outfit.Bottom))
	sb.WriteString(fmt.Sprintf("Shoes:      %s\n", result.Outfit.Shoes))
	sb.WriteString(fmt.Sprintf("Accessory:  %s", result.Outfit.Accessory))

	p.printBox("OUTFIT", sb.String())

	if result.Outfit.Rationale != "" {
		p.printBox("WHY IT WORKS", result.Outfit.Rationale)
	}
}
