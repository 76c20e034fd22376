// Package vision classifies wardrobe photos into named, categorized items
// using a multimodal model constrained to closed label vocabularies.
package vision

// Closed vocabularies the classifier must answer from. The model is told to
// pick from these lists; anything off-vocabulary is normalized away before the
// item name is composed.
var (
	Colors = []string{
		"black", "white", "blue", "red", "green", "yellow", "pink", "purple",
		"orange", "brown", "grey", "beige", "navy", "maroon", "cream",
		"gold", "silver", "tan", "olive", "taupe", "mauve", "nude",
	}

	Patterns = []string{
		"floral", "striped", "checkered", "polka dot", "paisley", "printed",
		"embroidered", "plain", "graphic",
	}

	Materials = []string{
		"denim", "silk", "cotton", "linen", "leather", "velvet", "chiffon",
		"satin", "wool", "knit",
	}
)

// distinctiveMaterials are the only materials worth carrying into an item
// name. Cotton on a t-shirt says nothing; denim or leather does.
var distinctiveMaterials = map[string]bool{
	"denim":   true,
	"leather": true,
	"silk":    true,
	"velvet":  true,
}

// clothingTypes maps each wardrobe category to the garment types that belong
// to it. Order inside a category does not matter; the map doubles as the
// reverse type-to-category index built in init.
var clothingTypes = map[string][]string{
	"Top": {
		"t-shirt", "shirt", "blouse", "kurti", "kurta", "top", "tank top",
		"crop top", "sweater", "turtleneck", "turtleneck sweater", "hoodie",
		"cardigan", "polo shirt", "formal shirt", "printed top",
		"peplum top", "casual shirt", "tunic", "ethnic top",
		"sports bra", "sports top", "gym top", "athletic top", "workout top",
		"wrap top", "floral top", "floral blouse", "wrap blouse",
	},
	"Bottom": {
		"jeans", "trousers", "pants", "shorts", "skirt", "tights", "joggers",
		"palazzo pants", "culottes", "cargo pants", "formal pants", "chinos",
		"denim shorts", "pencil skirt", "track pants", "track trousers", "sweatpants",
		"striped track pants", "tracksuit pants", "side stripe track pants",
	},
	"Dress": {
		"dress", "lehenga", "anarkali", "gown", "salwar suit", "churidar set",
		"maxi dress", "mini dress", "bodycon dress", "wrap dress", "sundress",
		"printed dress", "sharara set", "long dress", "evening gown",
	},
	"Shoes": {
		"sneakers", "high heels", "sandals", "boots", "ankle boots", "knee high boots",
		"loafers", "flat shoes", "formal shoes", "sports shoes", "running shoes", "pumps",
	},
	"Accessory": {
		"bag", "handbag", "backpack", "watch", "earrings", "necklace",
		"bracelet", "belt", "sunglasses", "scarf", "clutch",
		"hair clip", "butterfly clip", "claw clip", "hair accessory",
		"headband", "scrunchie", "hair band", "clip",
	},
	"Outerwear": {
		"jacket", "coat", "blazer", "shrug", "winter jacket", "puffer jacket",
		"overcoat", "denim jacket", "denim coat", "denim overcoat",
	},
	"Saree": {
		"saree", "silk saree", "cotton saree",
	},
}

var (
	allTypes       []string
	typeToCategory = map[string]string{}
)

func init() {
	for category, types := range clothingTypes {
		for _, t := range types {
			allTypes = append(allTypes, t)
			typeToCategory[t] = category
		}
	}
}

// CategoryFor resolves a garment type to its wardrobe category. Unknown types
// land in Top, the most common slot.
func CategoryFor(clothingType string) string {
	if category, ok := typeToCategory[clothingType]; ok {
		return category
	}
	return "Top"
}

// Categories lists the wardrobe categories the classifier can emit.
func Categories() []string {
	return []string{"Top", "Bottom", "Dress", "Shoes", "Accessory", "Outerwear", "Saree"}
}
