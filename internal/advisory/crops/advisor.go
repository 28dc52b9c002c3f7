package crops

import "sort"

type Crop struct {
	Name             string   `json:"name"`
	Suitability      int      `json:"suitability"`
	ExpectedYield    string   `json:"expectedYield"`
	Season           string   `json:"season"`
	Profitability    string   `json:"profitability"`
	WaterRequirement string   `json:"waterRequirement"`
	Advantages       []string `json:"advantages"`
	Considerations   []string `json:"considerations"`
}

// Conditions describes the farm as entered by the user. Only season, soil
// pH and moisture affect the score; the rest is kept for the report.
type Conditions struct {
	SoilType     string  `json:"soilType"`
	SoilPH       float64 `json:"ph"`
	Moisture     string  `json:"moisture"`
	Season       string  `json:"season"`
	Location     string  `json:"location"`
	FarmSize     float64 `json:"farmSize"`
	PreviousCrop string  `json:"previousCrop"`
}

var cropDatabase = []Crop{
	{
		Name:             "Wheat",
		Suitability:      95,
		ExpectedYield:    "3.5 tons/hectare",
		Season:           "Rabi",
		Profitability:    "High",
		WaterRequirement: "Medium",
		Advantages:       []string{"High market demand", "Good storage life", "Government support"},
		Considerations:   []string{"Requires proper irrigation", "Monitor for rust diseases"},
	},
	{
		Name:             "Rice",
		Suitability:      88,
		ExpectedYield:    "4.2 tons/hectare",
		Season:           "Kharif",
		Profitability:    "Medium",
		WaterRequirement: "High",
		Advantages:       []string{"Stable market", "Food security crop", "Multiple varieties"},
		Considerations:   []string{"High water requirement", "Labor intensive"},
	},
	{
		Name:             "Tomato",
		Suitability:      92,
		ExpectedYield:    "25 tons/hectare",
		Season:           "Year-round",
		Profitability:    "Very High",
		WaterRequirement: "Medium",
		Advantages:       []string{"High profit margins", "Short growing cycle", "Multiple harvests"},
		Considerations:   []string{"Disease prone", "Requires market access"},
	},
	{
		Name:             "Cotton",
		Suitability:      78,
		ExpectedYield:    "2.8 tons/hectare",
		Season:           "Kharif",
		Profitability:    "High",
		WaterRequirement: "Medium",
		Advantages:       []string{"Industrial demand", "Export potential", "Byproduct value"},
		Considerations:   []string{"Pest management critical", "Price volatility"},
	},
}

// Recommend scores every crop against the given conditions and returns the
// top three, best first. Scores are clamped to [0, 100].
func Recommend(c Conditions) []Crop {
	scored := make([]Crop, len(cropDatabase))
	copy(scored, cropDatabase)

	for i := range scored {
		score := scored[i].Suitability

		if c.Season == scored[i].Season || scored[i].Season == "Year-round" {
			score += 5
		} else {
			score -= 10
		}

		if c.SoilPH >= 6.0 && c.SoilPH <= 7.5 {
			score += 5
		} else {
			score -= 5
		}

		if c.Moisture == "high" && scored[i].WaterRequirement == "High" {
			score += 5
		} else if c.Moisture == "low" && scored[i].WaterRequirement == "High" {
			score -= 15
		}

		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		scored[i].Suitability = score
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Suitability > scored[b].Suitability
	})

	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}
