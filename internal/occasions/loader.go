package occasions

import (
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed occasion_rules.json
var rulesJSON []byte

//go:embed occasion_rules.schema.json
var rulesSchema []byte

// document mirrors the on-disk shape of the rules file. Occasions are an
// ordered array because match precedence follows file order.
type document struct {
	DefaultOccasion string      `json:"default_occasion"`
	Occasions       []namedRule `json:"occasions"`
}

// Load parses and validates the embedded occasion rules.
// A rules file that fails schema validation or names a default occasion that
// is not in the table is a fatal configuration error.
func Load() (*Table, error) {
	return Parse(rulesJSON)
}

// Parse builds a Table from a raw rules document. Exposed so tests and tools
// can load alternative rule sets.
func Parse(data []byte) (*Table, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(rulesSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate occasion rules: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return nil, fmt.Errorf("invalid occasion rules: %s: %s", first.Field(), first.Description())
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse occasion rules: %w", err)
	}

	table := &Table{
		rules:       doc.Occasions,
		byName:      make(map[string]*Rule, len(doc.Occasions)),
		defaultName: doc.DefaultOccasion,
	}
	for i := range table.rules {
		name := table.rules[i].Name
		if _, dup := table.byName[name]; dup {
			return nil, fmt.Errorf("duplicate occasion %q in rules", name)
		}
		table.byName[name] = &table.rules[i].Rule
	}

	if _, ok := table.byName[doc.DefaultOccasion]; !ok {
		return nil, fmt.Errorf("default occasion %q is not defined in the rules table", doc.DefaultOccasion)
	}

	return table, nil
}
