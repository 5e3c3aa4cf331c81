package app

import (
	"github.com/JaimeStill/verdant/internal/encoders"
	"github.com/JaimeStill/verdant/internal/history"
	"github.com/JaimeStill/verdant/internal/predictions"
)

// form field names of the four symptom checkboxes, in feature order.
var symptomNames = [4]string{"leaf_spot", "leaf_wilt", "stem_rot", "growth_stunted"}

type page struct {
	Plants       []string
	LeafColors   []encoders.LeafColor
	Form         form
	Outcome      *predictions.Outcome
	Error        string
	History      *historyView
	HistoryError string
}

type form struct {
	PlantName string
	LeafColor int
	Symptoms  []symptomField
	Filter    string

	checked [4]bool
}

type symptomField struct {
	Name    string
	Label   string
	Checked bool
}

type historyView struct {
	Filter  string
	Options []string
	Columns []string
	Entries []history.Entry
	Chart   []bar
}

// bar is one row of the disease frequency chart. Width is the bar length as
// a percentage of the most frequent disease.
type bar struct {
	Disease string
	Count   int
	Width   int
}

func symptomFields(labels []string, checked [4]bool) []symptomField {
	fields := make([]symptomField, len(symptomNames))
	for i, name := range symptomNames {
		label := name
		if i < len(labels) {
			label = labels[i]
		}
		fields[i] = symptomField{Name: name, Label: label, Checked: checked[i]}
	}
	return fields
}

func chartBars(ranked []history.DiseaseCount) []bar {
	if len(ranked) == 0 {
		return nil
	}

	top := ranked[0].Count
	bars := make([]bar, len(ranked))
	for i, dc := range ranked {
		bars[i] = bar{
			Disease: dc.Disease,
			Count:   dc.Count,
			Width:   dc.Count * 100 / top,
		}
	}
	return bars
}
