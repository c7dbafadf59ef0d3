package pricing

import "math"

// Default coverage (sqft of wrap film) per vehicle class.
var classSqft = map[Class]float64{
	ClassCoupe:     225,
	ClassSedan:     250,
	ClassHatchback: 235,
	ClassWagon:     270,
	ClassCrossover: 290,
	ClassSUV:       310,
	ClassTruck:     335,
	ClassVan:       390,
}

// Default install labor hours per vehicle class. Independent of sqft:
// a van has more flat panel per sqft than a coupe full of curves.
var classLaborHours = map[Class]float64{
	ClassCoupe:     20,
	ClassSedan:     22,
	ClassHatchback: 20,
	ClassWagon:     24,
	ClassCrossover: 26,
	ClassSUV:       28,
	ClassTruck:     30,
	ClassVan:       34,
}

// Material multiplier per wrap type. Unknown types price at 1.0.
var wrapMultipliers = map[string]float64{
	"color_change": 1.0,
	"gloss":        1.0,
	"satin":        1.05,
	"matte":        1.1,
	"commercial":   1.2,
	"printed":      1.3,
	"color_shift":  1.4,
	"chrome":       1.8,
	"partial":      0.6,
}

// Rates are the shop's pricing levers.
type Rates struct {
	PricePerSqft float64
	LaborRate    float64
	Markup       float64
}

// DefaultRates returns the stock shop rates.
func DefaultRates() Rates {
	return Rates{PricePerSqft: 8.50, LaborRate: 75, Markup: 1.35}
}

// Input describes the vehicle and wrap being quoted. Zero overrides mean
// "use the class default".
type Input struct {
	VehicleYear  int
	VehicleMake  string
	VehicleModel string
	WrapType     string
	SqftOverride float64
}

// Result holds the computed quote figures.
type Result struct {
	Class        Class
	Sqft         float64
	LaborHours   float64
	Multiplier   float64
	MaterialCost float64
	LaborCost    float64
	Subtotal     float64
	Total        float64
	PriceLow     float64
	PriceHigh    float64
}

// ClassSqft returns the default coverage for a class.
func ClassSqft(c Class) float64 {
	if v, ok := classSqft[c]; ok {
		return v
	}
	return classSqft[ClassSedan]
}

// ClassLaborHours returns the default labor hours for a class.
func ClassLaborHours(c Class) float64 {
	if v, ok := classLaborHours[c]; ok {
		return v
	}
	return classLaborHours[ClassSedan]
}

// WrapMultiplier returns the material multiplier for a wrap type,
// defaulting to 1.0 for unknown types.
func WrapMultiplier(wrapType string) float64 {
	if m, ok := wrapMultipliers[wrapType]; ok {
		return m
	}
	return 1.0
}

// ComputeQuote runs the pricing heuristic:
//
//	material = sqft x price-per-sqft x wrap multiplier
//	labor    = labor hours x labor rate
//	total    = (material + labor) x markup, rounded up to the dollar
//	band     = total -/+ 10%
//
// Total is monotonic in sqft and in labor rate.
func ComputeQuote(in Input, rates Rates) Result {
	class := DetectVehicleClass(in.VehicleMake, in.VehicleModel)

	sqft := in.SqftOverride
	if sqft <= 0 {
		sqft = ClassSqft(class)
	}
	hours := ClassLaborHours(class)
	mult := WrapMultiplier(in.WrapType)

	material := sqft * rates.PricePerSqft * mult
	labor := hours * rates.LaborRate
	subtotal := material + labor
	total := math.Ceil(subtotal * rates.Markup)

	return Result{
		Class:        class,
		Sqft:         sqft,
		LaborHours:   hours,
		Multiplier:   mult,
		MaterialCost: material,
		LaborCost:    labor,
		Subtotal:     subtotal,
		Total:        total,
		PriceLow:     math.Round(total * 0.9),
		PriceHigh:    math.Round(total * 1.1),
	}
}
