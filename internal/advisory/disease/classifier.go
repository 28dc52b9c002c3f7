package disease

import (
	"math/rand"
	"sync"
)

type Diagnosis struct {
	Disease            string   `json:"disease"`
	Confidence         float64  `json:"confidence"`
	Severity           string   `json:"severity"`
	OrganicTreatments  []string `json:"organicTreatments"`
	ChemicalTreatments []string `json:"chemicalTreatments"`
}

var diagnoses = []Diagnosis{
	{
		Disease:    "Healthy",
		Confidence: 94.5,
		Severity:   "none",
		OrganicTreatments: []string{
			"Continue regular watering", "Apply compost monthly", "Ensure adequate sunlight",
		},
		ChemicalTreatments: []string{
			"No treatment needed", "Preventive fungicide spray (optional)",
		},
	},
	{
		Disease:    "Late Blight",
		Confidence: 87.2,
		Severity:   "high",
		OrganicTreatments: []string{
			"Remove affected leaves", "Apply neem oil spray", "Improve air circulation", "Copper fungicide",
		},
		ChemicalTreatments: []string{
			"Chlorothalonil spray", "Mancozeb treatment", "Reduce humidity",
		},
	},
	{
		Disease:    "Early Blight",
		Confidence: 78.9,
		Severity:   "medium",
		OrganicTreatments: []string{
			"Remove infected parts", "Baking soda spray", "Crop rotation", "Organic mulching",
		},
		ChemicalTreatments: []string{
			"Azoxystrobin treatment", "Chlorothalonil spray",
		},
	},
}

// Classifier is a stand-in for a real image model: it returns one of a
// fixed set of diagnoses at random. The rand source is injectable so tests
// are deterministic.
type Classifier struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewClassifier(seed int64) *Classifier {
	return &Classifier{rnd: rand.New(rand.NewSource(seed))}
}

// Analyze classifies an uploaded leaf image. The image content is ignored
// by the mock.
func (c *Classifier) Analyze(filename string) Diagnosis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return diagnoses[c.rnd.Intn(len(diagnoses))]
}
