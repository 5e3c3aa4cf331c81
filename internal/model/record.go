// Package model defines the classifier contract, the fixed-order feature record
// submitted to it, and the artifact-backed classifier implementations.
package model

// NumFeatures is the width of a FeatureRecord.
const NumFeatures = 7

// Columns is the feature order the classifier was trained on.
var Columns = [NumFeatures]string{
	"ID",
	"Nama_Tanaman",
	"Warna_Daun",
	"Bercak_Daun",
	"Daun_Layu",
	"Batang_Busuk",
	"Pertumbuhan_Terhambat",
}

// Symptoms holds the four binary symptom flags in their trained order:
// leaf spot, leaf wilt, stem rot, stunted growth.
type Symptoms struct {
	LeafSpot      bool `json:"leaf_spot"`
	LeafWilt      bool `json:"leaf_wilt"`
	StemRot       bool `json:"stem_rot"`
	GrowthStunted bool `json:"growth_stunted"`
}

// SymptomsFromFlags builds Symptoms from four flags in trained order.
func SymptomsFromFlags(flags [4]bool) Symptoms {
	return Symptoms{
		LeafSpot:      flags[0],
		LeafWilt:      flags[1],
		StemRot:       flags[2],
		GrowthStunted: flags[3],
	}
}

// Flags returns the symptoms as 0/1 values in trained order.
func (s Symptoms) Flags() [4]int {
	return [4]int{bit(s.LeafSpot), bit(s.LeafWilt), bit(s.StemRot), bit(s.GrowthStunted)}
}

// FeatureRecord is one encoded input row.
type FeatureRecord struct {
	ID            int
	PlantName     int
	LeafColor     int
	LeafSpot      int
	LeafWilt      int
	StemRot       int
	GrowthStunted int
}

// NewRecord assembles a FeatureRecord. It is the only place the feature order is decided.
func NewRecord(plantCode, leafColorCode int, s Symptoms) FeatureRecord {
	flags := s.Flags()
	return FeatureRecord{
		ID:            0,
		PlantName:     plantCode,
		LeafColor:     leafColorCode,
		LeafSpot:      flags[0],
		LeafWilt:      flags[1],
		StemRot:       flags[2],
		GrowthStunted: flags[3],
	}
}

// Values returns the record in Columns order.
func (r FeatureRecord) Values() [NumFeatures]int {
	return [NumFeatures]int{
		r.ID,
		r.PlantName,
		r.LeafColor,
		r.LeafSpot,
		r.LeafWilt,
		r.StemRot,
		r.GrowthStunted,
	}
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}
