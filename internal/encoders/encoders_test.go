package encoders_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/JaimeStill/verdant/internal/encoders"
)

func loadSet(t *testing.T) *encoders.Set {
	t.Helper()
	set, err := encoders.Load("testdata/encoders.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return set
}

func TestPlantNameRoundTrip(t *testing.T) {
	set := loadSet(t)

	for _, label := range set.Categories(encoders.FieldPlantName) {
		t.Run(label, func(t *testing.T) {
			code, err := set.Encode(encoders.FieldPlantName, label)
			if err != nil {
				t.Fatalf("Encode(%q) error = %v", label, err)
			}
			got, err := set.Decode(encoders.FieldPlantName, code)
			if err != nil {
				t.Fatalf("Decode(%d) error = %v", code, err)
			}
			if got != label {
				t.Errorf("round trip: got %q, want %q", got, label)
			}
		})
	}
}

func TestDiseaseCodeRoundTrip(t *testing.T) {
	set := loadSet(t)
	enc, err := set.Encoder(encoders.FieldDisease)
	if err != nil {
		t.Fatalf("Encoder() error = %v", err)
	}

	for code := range enc.Len() {
		label, err := set.Decode(encoders.FieldDisease, code)
		if err != nil {
			t.Fatalf("Decode(%d) error = %v", code, err)
		}
		back, err := set.Encode(encoders.FieldDisease, label)
		if err != nil {
			t.Fatalf("Encode(%q) error = %v", label, err)
		}
		if back != code {
			t.Errorf("code %d: round trip gave %d", code, back)
		}
	}
}

func TestCodesFollowSortedOrder(t *testing.T) {
	set := loadSet(t)

	tests := []struct {
		label string
		code  int
	}{
		{"Cabai", 0},
		{"Jagung", 1},
		{"Kentang", 2},
		{"Padi", 3},
		{"Tomat", 4},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := set.Encode(encoders.FieldPlantName, tt.label)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tt.code {
				t.Errorf("Encode(%q) = %d, want %d", tt.label, got, tt.code)
			}
		})
	}
}

func TestEncodeUnknownCategory(t *testing.T) {
	set := loadSet(t)

	tests := []struct {
		name  string
		label string
	}{
		{"never seen", "Unknown_Plant_XYZ"},
		{"case differs", "padi"},
		{"surrounding space", " Padi"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := set.Encode(encoders.FieldPlantName, tt.label)
			if !errors.Is(err, encoders.ErrUnknownCategory) {
				t.Errorf("Encode(%q) error = %v, want ErrUnknownCategory", tt.label, err)
			}
		})
	}
}

func TestDecodeUnknownCode(t *testing.T) {
	set := loadSet(t)

	for _, code := range []int{-1, 5, 100} {
		_, err := set.Decode(encoders.FieldPlantName, code)
		if !errors.Is(err, encoders.ErrUnknownCode) {
			t.Errorf("Decode(%d) error = %v, want ErrUnknownCode", code, err)
		}
	}
}

func TestUnknownField(t *testing.T) {
	set := loadSet(t)

	if _, err := set.Encode("Warna_Batang", "Hijau"); !errors.Is(err, encoders.ErrUnknownField) {
		t.Errorf("Encode() error = %v, want ErrUnknownField", err)
	}
	if got := set.Categories("Warna_Batang"); got != nil {
		t.Errorf("Categories() = %v, want nil", got)
	}
}

func TestCategoriesSortedCopy(t *testing.T) {
	set := loadSet(t)

	got := set.Categories(encoders.FieldPlantName)
	if !slices.IsSorted(got) {
		t.Errorf("categories not sorted: %v", got)
	}

	got[0] = "mutated"
	if again := set.Categories(encoders.FieldPlantName); again[0] != "Cabai" {
		t.Errorf("categories shared backing array: %v", again)
	}
}

func TestLoadJSONWithoutDisease(t *testing.T) {
	set, err := encoders.Load("testdata/encoders.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if set.Has(encoders.FieldDisease) {
		t.Error("Has(Penyakit) = true, want false")
	}
	if !set.Has(encoders.FieldPlantName) {
		t.Error("Has(Nama_Tanaman) = false, want true")
	}
	if diff := set.Fields(); !slices.Equal(diff, []string{encoders.FieldPlantName}) {
		t.Errorf("Fields() = %v", diff)
	}
}

func TestNewSetValidation(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string][]string
		wantErr error
	}{
		{
			name:    "unsorted classes",
			fields:  map[string][]string{encoders.FieldPlantName: {"Padi", "Jagung"}},
			wantErr: encoders.ErrInvalidClasses,
		},
		{
			name:    "duplicate classes",
			fields:  map[string][]string{encoders.FieldPlantName: {"Padi", "Padi"}},
			wantErr: encoders.ErrInvalidClasses,
		},
		{
			name:    "empty classes",
			fields:  map[string][]string{encoders.FieldPlantName: {}},
			wantErr: encoders.ErrInvalidClasses,
		},
		{
			name:    "carriage return in class",
			fields:  map[string][]string{encoders.FieldPlantName: {"Padi"}, encoders.FieldDisease: {"Blas\r\nDaun"}},
			wantErr: encoders.ErrInvalidClasses,
		},
		{
			name:    "missing plant encoder",
			fields:  map[string][]string{encoders.FieldDisease: {"Blas"}},
			wantErr: encoders.ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encoders.NewSet(tt.fields)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewSet() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLeafColors(t *testing.T) {
	tests := []struct {
		code  int
		label string
	}{
		{0, "Hijau"},
		{1, "Kuning"},
		{2, "Coklat"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			label, err := encoders.LeafColorLabel(tt.code)
			if err != nil || label != tt.label {
				t.Errorf("LeafColorLabel(%d) = %q, %v", tt.code, label, err)
			}
			code, err := encoders.LeafColorCode(tt.label)
			if err != nil || code != tt.code {
				t.Errorf("LeafColorCode(%q) = %d, %v", tt.label, code, err)
			}
		})
	}

	if _, err := encoders.LeafColorLabel(3); !errors.Is(err, encoders.ErrUnknownCode) {
		t.Errorf("LeafColorLabel(3) error = %v, want ErrUnknownCode", err)
	}
	if _, err := encoders.LeafColorCode("Ungu"); !errors.Is(err, encoders.ErrUnknownCategory) {
		t.Errorf("LeafColorCode(Ungu) error = %v, want ErrUnknownCategory", err)
	}
	if n := len(encoders.LeafColors()); n != 3 {
		t.Errorf("LeafColors() length = %d, want 3", n)
	}
}
