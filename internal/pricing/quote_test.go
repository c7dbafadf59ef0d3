package pricing

import "testing"

func TestDetectVehicleClass(t *testing.T) {
	cases := []struct {
		make, model string
		want        Class
	}{
		{"Ford", "F-150", ClassTruck},
		{"Ford", "Bronco", ClassSUV},
		{"Ford", "Transit", ClassVan},
		{"Toyota", "Camry", ClassSedan},
		{"Toyota", "RAV4", ClassCrossover},
		{"Chevrolet", "Camaro", ClassCoupe},
		{"Volkswagen", "GTI", ClassHatchback},
		{"Audi", "A4 Allroad", ClassWagon},
		{"RAM", "1500", ClassTruck},
		{"", "", ClassSedan},
	}

	for _, tc := range cases {
		if got := DetectVehicleClass(tc.make, tc.model); got != tc.want {
			t.Errorf("DetectVehicleClass(%q, %q) = %s, want %s", tc.make, tc.model, got, tc.want)
		}
	}
}

// When a model matches keyword lists for two classes, the class checked
// first in priority order wins.
func TestDetectVehicleClass_PriorityOrder(t *testing.T) {
	// "Transit Truck" hits both the van and truck lists; van is checked first
	if got := DetectVehicleClass("Ford", "Transit Truck"); got != ClassVan {
		t.Errorf("van/truck overlap resolved to %s, want van", got)
	}
	// "Truck SUV" hits truck and suv; truck is checked first
	if got := DetectVehicleClass("Custom", "Truck SUV"); got != ClassTruck {
		t.Errorf("truck/suv overlap resolved to %s, want truck", got)
	}
}

func TestDetectVehicleClass_CaseInsensitive(t *testing.T) {
	if got := DetectVehicleClass("FORD", "BRONCO"); got != ClassSUV {
		t.Errorf("DetectVehicleClass(FORD, BRONCO) = %s, want suv", got)
	}
}

// Canonical end-to-end case: 2023 Ford Bronco, color change, stock rates.
func TestComputeQuote_FordBronco(t *testing.T) {
	res := ComputeQuote(Input{
		VehicleYear:  2023,
		VehicleMake:  "Ford",
		VehicleModel: "Bronco",
		WrapType:     "color_change",
	}, DefaultRates())

	if res.Class != ClassSUV {
		t.Errorf("class = %s, want suv", res.Class)
	}
	if res.Sqft != 310 {
		t.Errorf("sqft = %v, want 310", res.Sqft)
	}
	if res.LaborHours != 28 {
		t.Errorf("labor hours = %v, want 28", res.LaborHours)
	}
	if res.MaterialCost != 2635 {
		t.Errorf("material = %v, want 2635", res.MaterialCost)
	}
	if res.LaborCost != 2100 {
		t.Errorf("labor = %v, want 2100", res.LaborCost)
	}
	if res.Subtotal != 4735 {
		t.Errorf("subtotal = %v, want 4735", res.Subtotal)
	}
	if res.Total != 6393 {
		t.Errorf("total = %v, want 6393", res.Total)
	}
	if res.PriceLow != 5754 {
		t.Errorf("low = %v, want 5754", res.PriceLow)
	}
	if res.PriceHigh != 7032 {
		t.Errorf("high = %v, want 7032", res.PriceHigh)
	}
}

func TestComputeQuote_SqftOverride(t *testing.T) {
	in := Input{VehicleMake: "Toyota", VehicleModel: "Camry", WrapType: "color_change"}
	base := ComputeQuote(in, DefaultRates())

	in.SqftOverride = 400
	overridden := ComputeQuote(in, DefaultRates())
	if overridden.Sqft != 400 {
		t.Errorf("override sqft = %v, want 400", overridden.Sqft)
	}
	if overridden.Total <= base.Total {
		t.Errorf("larger sqft should not price lower: %v <= %v", overridden.Total, base.Total)
	}
}

func TestComputeQuote_UnknownWrapTypeMultiplierIsOne(t *testing.T) {
	res := ComputeQuote(Input{VehicleMake: "Toyota", VehicleModel: "Camry", WrapType: "holographic"}, DefaultRates())
	if res.Multiplier != 1.0 {
		t.Errorf("multiplier = %v, want 1.0", res.Multiplier)
	}
}

// Total never decreases as sqft or labor rate increase.
func TestComputeQuote_Monotonic(t *testing.T) {
	in := Input{VehicleMake: "Ford", VehicleModel: "Bronco", WrapType: "matte"}

	prev := float64(0)
	for sqft := 100.0; sqft <= 500; sqft += 25 {
		in.SqftOverride = sqft
		total := ComputeQuote(in, DefaultRates()).Total
		if total < prev {
			t.Fatalf("total decreased from %v to %v at sqft %v", prev, total, sqft)
		}
		prev = total
	}

	in.SqftOverride = 0
	prev = 0
	for rate := 50.0; rate <= 150; rate += 10 {
		rates := DefaultRates()
		rates.LaborRate = rate
		total := ComputeQuote(in, rates).Total
		if total < prev {
			t.Fatalf("total decreased from %v to %v at labor rate %v", prev, total, rate)
		}
		prev = total
	}
}
