package pricing

import "strings"

// Class is a coarse vehicle category used to pick default coverage and
// labor figures.
type Class string

const (
	ClassSedan     Class = "sedan"
	ClassCoupe     Class = "coupe"
	ClassSUV       Class = "suv"
	ClassTruck     Class = "truck"
	ClassVan       Class = "van"
	ClassCrossover Class = "crossover"
	ClassHatchback Class = "hatchback"
	ClassWagon     Class = "wagon"
)

// classKeywords holds curated keyword lists per class. Detection walks
// classPriority in order and the first list with a substring hit wins, so
// a model matching both "truck" and "suv" keywords classifies as a truck.
var classKeywords = map[Class][]string{
	ClassVan: {
		"van", "transit", "sprinter", "promaster", "express", "savana",
		"odyssey", "sienna", "carnival", "metris", "caravan",
	},
	ClassTruck: {
		"truck", "f-150", "f-250", "f-350", "silverado", "sierra", "ram",
		"tundra", "tacoma", "ranger", "frontier", "colorado", "titan",
		"gladiator", "ridgeline", "maverick",
	},
	ClassSUV: {
		"suv", "bronco", "wrangler", "tahoe", "suburban", "yukon",
		"expedition", "explorer", "4runner", "pathfinder", "highlander",
		"pilot", "durango", "cherokee", "blazer", "traverse", "telluride",
		"palisade", "sequoia", "armada", "land cruiser", "escalade",
		"navigator", "defender", "range rover",
	},
	ClassCrossover: {
		"crossover", "rav4", "cr-v", "escape", "rogue", "tucson",
		"santa fe", "sportage", "sorento", "forester", "outback", "edge",
		"murano", "cx-5", "cx-30", "equinox", "trailblazer", "compass",
		"hr-v", "venza",
	},
	ClassCoupe: {
		"coupe", "mustang", "camaro", "challenger", "corvette", "supra",
		"brz", "gr86", "370z", "911", "cayman",
	},
	ClassHatchback: {
		"hatchback", "golf", "gti", "veloster", "fit", "yaris", "rio",
		"bolt", "leaf",
	},
	ClassWagon: {
		"wagon", "allroad", "alltrack", "v60", "v90", "sportwagen",
	},
}

// classPriority is the fixed detection order. Vans before trucks before
// SUVs: the broader body wins when keywords overlap.
var classPriority = []Class{
	ClassVan, ClassTruck, ClassSUV, ClassCrossover,
	ClassCoupe, ClassHatchback, ClassWagon,
}

// DetectVehicleClass infers the class from make/model text.
// Case-insensitive substring matching, first match wins, sedan by default.
func DetectVehicleClass(vehicleMake, vehicleModel string) Class {
	haystack := strings.ToLower(vehicleMake + " " + vehicleModel)

	for _, class := range classPriority {
		for _, kw := range classKeywords[class] {
			if strings.Contains(haystack, kw) {
				return class
			}
		}
	}
	return ClassSedan
}
