package predictions

import (
	"github.com/JaimeStill/verdant/internal/encoders"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/model"
)

// Request is one user submission: a plant name from the encoder's known
// categories, a leaf color code, and four symptom flags. LeafColor is a
// pointer so that an omitted color is told apart from Hijau (0).
type Request struct {
	PlantName string         `json:"plant_name"`
	LeafColor *int           `json:"leaf_color"`
	Symptoms  model.Symptoms `json:"symptoms"`
}

// NewRequest builds a complete Request.
func NewRequest(plant string, leafColor int, symptoms model.Symptoms) Request {
	return Request{
		PlantName: plant,
		LeafColor: &leafColor,
		Symptoms:  symptoms,
	}
}

// Result is a decoded prediction together with the inputs that produced it.
type Result struct {
	PlantName   string         `json:"plant_name"`
	LeafColor   string         `json:"leaf_color"`
	Symptoms    model.Symptoms `json:"symptoms"`
	Disease     string         `json:"disease"`
	DiseaseCode int            `json:"disease_code"`
}

// Outcome is the result of a predict-and-record action. A failed save never
// hides the prediction: Saved is false and SaveError describes the failure.
type Outcome struct {
	Result    *Result       `json:"result"`
	Entry     history.Entry `json:"entry"`
	Saved     bool          `json:"saved"`
	SaveError string        `json:"save_error,omitempty"`

	saveErr error
}

// Err returns the persistence error, if any.
func (o *Outcome) Err() error {
	return o.saveErr
}

// Categories lists the selectable inputs of the prediction form.
type Categories struct {
	Plants     []string             `json:"plants"`
	LeafColors []encoders.LeafColor `json:"leaf_colors"`
	Symptoms   []string             `json:"symptoms"`
	Diseases   []string             `json:"diseases,omitempty"`
}
