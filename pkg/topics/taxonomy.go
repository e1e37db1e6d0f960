// Package topics maps freeform LLM topic strings onto the fixed canonical
// taxonomy used for filtering, alerts, and aggregation.
package topics

// Canonical is the fixed 16-tag vocabulary. The LLM is prompted to emit these,
// but its output is normalized here regardless.
var Canonical = []string{
	"housing",
	"zoning",
	"transportation",
	"budget",
	"public_safety",
	"environment",
	"parks",
	"utilities",
	"economic_development",
	"education",
	"health",
	"planning",
	"permits",
	"contracts",
	"appointments",
	"other",
}

// synonyms maps each canonical tag to the freeform phrasings observed in LLM
// output. Matching is lowercase-trimmed exact first, then word-boundary
// partial (so "park" never matches "parking").
var synonyms = map[string][]string{
	"housing": {
		"affordable housing", "housing development", "residential", "homelessness",
		"homeless", "shelter", "rent control", "tenant", "adu", "accessory dwelling",
	},
	"zoning": {
		"rezoning", "zone change", "land use", "variance", "setback",
		"density", "upzoning", "general plan amendment",
	},
	"transportation": {
		"transit", "traffic", "parking", "bike lane", "bicycle", "pedestrian",
		"street", "road", "highway", "bus", "rail", "sidewalk", "crosswalk",
	},
	"budget": {
		"appropriation", "fiscal", "finance", "funding", "grant", "revenue",
		"tax", "bond", "capital improvement", "cip",
	},
	"public_safety": {
		"police", "fire", "emergency", "crime", "law enforcement", "safety",
		"disaster", "ems", "911",
	},
	"environment": {
		"climate", "sustainability", "emissions", "recycling", "waste",
		"pollution", "conservation", "wildlife", "tree", "stormwater",
	},
	"parks": {
		"park", "recreation", "playground", "trail", "open space", "library",
		"community center",
	},
	"utilities": {
		"water", "sewer", "electric", "gas", "broadband", "internet",
		"utility", "power", "wastewater",
	},
	"economic_development": {
		"business", "economic", "downtown", "retail", "commerce", "jobs",
		"tourism", "redevelopment",
	},
	"education": {
		"school", "education", "student", "university", "college", "childcare",
	},
	"health": {
		"health", "hospital", "clinic", "mental health", "public health",
		"substance abuse",
	},
	"planning": {
		"development", "master plan", "specific plan", "design review",
		"subdivision", "annexation",
	},
	"permits": {
		"permit", "license", "licensing", "entitlement", "approval",
	},
	"contracts": {
		"contract", "agreement", "procurement", "rfp", "bid", "vendor",
		"purchase", "lease",
	},
	"appointments": {
		"appointment", "commission", "board member", "vacancy", "nomination",
		"confirmation",
	},
	"other": {
		"miscellaneous", "general",
	},
}
