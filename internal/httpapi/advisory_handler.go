package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/kalyanram2201/KrishiSathi/internal/advisory/crops"
	"github.com/kalyanram2201/KrishiSathi/internal/advisory/disease"
	"github.com/kalyanram2201/KrishiSathi/internal/advisory/weather"
)

// AdvisoryHandler serves the stateless advisory tools: crop suggestions,
// the disease-detection mock, and weather.
type AdvisoryHandler struct {
	classifier *disease.Classifier
	weather    *weather.Client
}

func NewAdvisoryHandler(classifier *disease.Classifier, wc *weather.Client) *AdvisoryHandler {
	return &AdvisoryHandler{classifier: classifier, weather: wc}
}

func (h *AdvisoryHandler) SuggestCrops(w http.ResponseWriter, r *http.Request) {
	var cond crops.Conditions
	if err := json.NewDecoder(r.Body).Decode(&cond); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": crops.Recommend(cond),
	})
}

func (h *AdvisoryHandler) DetectDisease(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Filename string `json:"filename"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Filename == "" {
		writeError(w, http.StatusBadRequest, "missing filename")
		return
	}
	writeJSON(w, http.StatusOK, h.classifier.Analyze(body.Filename))
}

func (h *AdvisoryHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	report, err := h.weather.Report(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to fetch weather")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
