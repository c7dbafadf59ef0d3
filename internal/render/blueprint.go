package render

// Blueprint building for ad videos. A blueprint is the JSON "source"
// document Creatomate renders: a short vertical clip with the shop's
// footage behind a headline and price card.

// BlueprintInput describes one ad variation
type BlueprintInput struct {
	Headline   string
	Subline    string
	VideoURL   string // background footage; a solid brand fill when empty
	PriceText  string // e.g. "From $2,999", omitted when empty
	BrandColor string // hex, defaults to the house orange
}

const defaultBrandColor = "#ff5a1f"

// BuildBlueprint assembles the render source for one variation.
func BuildBlueprint(in BlueprintInput) map[string]interface{} {
	brand := in.BrandColor
	if brand == "" {
		brand = defaultBrandColor
	}

	elements := []map[string]interface{}{}

	if in.VideoURL != "" {
		elements = append(elements, map[string]interface{}{
			"type":   "video",
			"source": in.VideoURL,
			"track":  1,
			"fit":    "cover",
		})
	} else {
		elements = append(elements, map[string]interface{}{
			"type":       "shape",
			"track":      1,
			"width":      "100%",
			"height":     "100%",
			"fill_color": brand,
		})
	}

	elements = append(elements, map[string]interface{}{
		"type":        "text",
		"track":       2,
		"text":        in.Headline,
		"y":           "38%",
		"width":       "84%",
		"font_family": "Archivo Black",
		"font_size":   "9 vmin",
		"fill_color":  "#ffffff",
		"animations": []map[string]interface{}{
			{"type": "text-slide", "duration": "1 s", "split": "word"},
		},
	})

	if in.Subline != "" {
		elements = append(elements, map[string]interface{}{
			"type":        "text",
			"track":       3,
			"text":        in.Subline,
			"y":           "52%",
			"width":       "80%",
			"font_family": "Inter",
			"font_size":   "4.5 vmin",
			"fill_color":  "#ffffff",
		})
	}

	if in.PriceText != "" {
		elements = append(elements, map[string]interface{}{
			"type":             "text",
			"track":            4,
			"text":             in.PriceText,
			"y":                "78%",
			"width":            "60%",
			"font_family":      "Archivo Black",
			"font_size":        "6 vmin",
			"fill_color":       "#ffffff",
			"background_color": brand,
		})
	}

	return map[string]interface{}{
		"output_format": "mp4",
		"width":         1080,
		"height":        1920,
		"duration":      "8 s",
		"elements":      elements,
	}
}
