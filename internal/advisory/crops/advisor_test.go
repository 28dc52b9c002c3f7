package crops_test

import (
	"testing"

	"github.com/kalyanram2201/KrishiSathi/internal/advisory/crops"
)

func TestRecommend(t *testing.T) {
	t.Run("returns top three sorted by suitability", func(t *testing.T) {
		got := crops.Recommend(crops.Conditions{Season: "Rabi", SoilPH: 6.5, Moisture: "medium"})
		if len(got) != 3 {
			t.Fatalf("expected 3 suggestions, got %d", len(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i].Suitability > got[i-1].Suitability {
				t.Fatalf("suggestions not sorted: %+v", got)
			}
		}
	})

	t.Run("season match boosts score", func(t *testing.T) {
		// Rabi + good pH: Wheat 95+5+5=100 beats Tomato 92+5+5=100? ties
		// break by base order, so Wheat stays first.
		got := crops.Recommend(crops.Conditions{Season: "Rabi", SoilPH: 7.0, Moisture: "medium"})
		if got[0].Name != "Wheat" {
			t.Fatalf("expected Wheat first for Rabi season, got %s", got[0].Name)
		}
		if got[0].Suitability != 100 {
			t.Fatalf("expected clamped score 100, got %d", got[0].Suitability)
		}
	})

	t.Run("year-round crop always gets season boost", func(t *testing.T) {
		got := crops.Recommend(crops.Conditions{Season: "Kharif", SoilPH: 6.5, Moisture: "medium"})
		for _, c := range got {
			if c.Name == "Tomato" && c.Suitability != 100 {
				t.Fatalf("expected Tomato at 100 (92+5+5 clamped), got %d", c.Suitability)
			}
		}
	})

	t.Run("low moisture punishes thirsty crops", func(t *testing.T) {
		high := crops.Recommend(crops.Conditions{Season: "Kharif", SoilPH: 6.5, Moisture: "high"})
		low := crops.Recommend(crops.Conditions{Season: "Kharif", SoilPH: 6.5, Moisture: "low"})

		scoreOf := func(list []crops.Crop, name string) (int, bool) {
			for _, c := range list {
				if c.Name == name {
					return c.Suitability, true
				}
			}
			return 0, false
		}

		hs, ok := scoreOf(high, "Rice")
		if !ok {
			t.Fatalf("expected Rice in high-moisture suggestions")
		}
		// 88 +5 (Kharif) +5 (pH) +5 (high moisture) = 100 (clamped)
		if hs != 100 {
			t.Fatalf("expected Rice at 100 with high moisture, got %d", hs)
		}

		if ls, ok := scoreOf(low, "Rice"); ok {
			// 88 +5 +5 -15 = 83
			if ls != 83 {
				t.Fatalf("expected Rice at 83 with low moisture, got %d", ls)
			}
		}
	})

	t.Run("bad pH penalizes everything", func(t *testing.T) {
		good := crops.Recommend(crops.Conditions{Season: "Rabi", SoilPH: 6.5, Moisture: "medium"})
		bad := crops.Recommend(crops.Conditions{Season: "Rabi", SoilPH: 4.0, Moisture: "medium"})
		if bad[0].Suitability >= good[0].Suitability {
			t.Fatalf("expected acidic soil to lower the top score: %d vs %d",
				bad[0].Suitability, good[0].Suitability)
		}
	})

	t.Run("does not mutate the crop database", func(t *testing.T) {
		first := crops.Recommend(crops.Conditions{Season: "Rabi", SoilPH: 6.5, Moisture: "medium"})
		second := crops.Recommend(crops.Conditions{Season: "Rabi", SoilPH: 6.5, Moisture: "medium"})
		for i := range first {
			if first[i].Name != second[i].Name || first[i].Suitability != second[i].Suitability {
				t.Fatalf("repeated calls disagree: %+v vs %+v", first[i], second[i])
			}
		}
	})
}
