package history

import (
	"fmt"
	"strconv"
	"strings"
)

// Columns is the fixed schema of the history log, in column order.
var Columns = []string{
	"Nama_Tanaman",
	"Warna_Daun",
	"Bercak_Daun",
	"Daun_Layu",
	"Batang_Busuk",
	"Pertumbuhan_Terhambat",
	"Prediksi_Penyakit",
}

// Entry is one immutable record of a past prediction and its inputs.
// Every field is stored as text: symptom flags are "0" or "1".
type Entry struct {
	PlantName     string `json:"Nama_Tanaman"`
	LeafColor     string `json:"Warna_Daun"`
	LeafSpot      string `json:"Bercak_Daun"`
	LeafWilt      string `json:"Daun_Layu"`
	StemRot       string `json:"Batang_Busuk"`
	GrowthStunted string `json:"Pertumbuhan_Terhambat"`
	Disease       string `json:"Prediksi_Penyakit"`
}

// NewEntry projects a prediction's inputs and result into an Entry.
func NewEntry(plant, leafColor string, flags [4]int, disease string) Entry {
	return Entry{
		PlantName:     plant,
		LeafColor:     leafColor,
		LeafSpot:      strconv.Itoa(flags[0]),
		LeafWilt:      strconv.Itoa(flags[1]),
		StemRot:       strconv.Itoa(flags[2]),
		GrowthStunted: strconv.Itoa(flags[3]),
		Disease:       disease,
	}
}

// Record returns the entry's fields in Columns order.
func (e Entry) Record() []string {
	return []string{
		e.PlantName,
		e.LeafColor,
		e.LeafSpot,
		e.LeafWilt,
		e.StemRot,
		e.GrowthStunted,
		e.Disease,
	}
}

// Validate rejects carriage returns in any field. encoding/csv folds a
// quoted "\r\n" into "\n" on read, so such a field would not survive a
// write and read of the log.
func (e Entry) Validate() error {
	for i, v := range e.Record() {
		if strings.ContainsRune(v, '\r') {
			return fmt.Errorf("%w: %s contains a carriage return", ErrInvalidEntry, Columns[i])
		}
	}
	return nil
}

// entryFromRecord is the inverse of Record. The caller checks the width.
func entryFromRecord(rec []string) Entry {
	return Entry{
		PlantName:     rec[0],
		LeafColor:     rec[1],
		LeafSpot:      rec[2],
		LeafWilt:      rec[3],
		StemRot:       rec[4],
		GrowthStunted: rec[5],
		Disease:       rec[6],
	}
}
