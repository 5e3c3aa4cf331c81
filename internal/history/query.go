package history

import (
	"cmp"
	"slices"
)

// AllPlants is the filter value that selects every entry.
const AllPlants = "-- Semua --"

// FilterByPlant returns the entries whose plant name equals plant, in order.
// AllPlants or an empty plant returns every entry.
func FilterByPlant(entries []Entry, plant string) []Entry {
	if plant == "" || plant == AllPlants {
		return slices.Clone(entries)
	}

	out := make([]Entry, 0)
	for _, e := range entries {
		if e.PlantName == plant {
			out = append(out, e)
		}
	}
	return out
}

// Plants returns the distinct plant names present in entries, sorted.
func Plants(entries []Entry) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, e := range entries {
		if _, ok := seen[e.PlantName]; ok {
			continue
		}
		seen[e.PlantName] = struct{}{}
		out = append(out, e.PlantName)
	}

	slices.Sort(out)
	return out
}

// Summary counts entries per predicted disease.
type Summary map[string]int

// DiseaseCount is one row of a ranked Summary.
type DiseaseCount struct {
	Disease string `json:"Penyakit"`
	Count   int    `json:"Jumlah"`
}

// SummarizeByDisease counts entries per distinct disease label.
// The counts always sum to len(entries).
func SummarizeByDisease(entries []Entry) Summary {
	s := make(Summary)
	for _, e := range entries {
		s[e.Disease]++
	}
	return s
}

// Total returns the sum of all counts.
func (s Summary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// Ranked orders the summary by count descending, then disease ascending.
func (s Summary) Ranked() []DiseaseCount {
	out := make([]DiseaseCount, 0, len(s))
	for disease, n := range s {
		out = append(out, DiseaseCount{Disease: disease, Count: n})
	}

	slices.SortFunc(out, func(a, b DiseaseCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Disease, b.Disease)
	})
	return out
}
