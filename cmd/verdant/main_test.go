package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func setupWorkspace(t *testing.T) string {
	t.Helper()

	testdata, err := filepath.Abs("../../internal/model/testdata")
	if err != nil {
		t.Fatalf("abs: %v", err)
	}

	dir := t.TempDir()
	cfg := fmt.Sprintf(`
[logging]
level = "error"

[model]
encoders_path = %q
forest_path = %q

[history]
backend = "file"
path = "riwayat_prediksi.csv"
`, filepath.Join(testdata, "encoders.yaml"), filepath.Join(testdata, "forest.yaml"))

	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(cfg), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })

	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPredictRecords(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := execute(t, "predict", "--plant", "Padi", "--leaf-color", "1", "--leaf-spot", "--stem-rot")
	if err != nil {
		t.Fatalf("predict: %v\n%s", err, out)
	}

	for _, want := range []string{
		"Nama Tanaman: Padi",
		"Warna Daun: Kuning",
		"Prediksi Penyakit: Busuk Batang",
		"Hasil disimpan",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "riwayat_prediksi.csv"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.HasSuffix(string(data), "Padi,Kuning,1,0,1,0,Busuk Batang\n") {
		t.Errorf("log: got %q", data)
	}
}

func TestPredictDryRun(t *testing.T) {
	dir := setupWorkspace(t)

	out, err := execute(t, "predict", "--plant", "Padi", "--leaf-color", "0", "--dry-run", "--json")
	if err != nil {
		t.Fatalf("predict: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"disease": "Sehat"`) {
		t.Errorf("output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "riwayat_prediksi.csv")); !os.IsNotExist(err) {
		t.Error("dry run created the history log")
	}
}

func TestPredictUnknownPlant(t *testing.T) {
	dir := setupWorkspace(t)

	if _, err := execute(t, "predict", "--plant", "Unknown_Plant_XYZ"); err == nil {
		t.Fatal("expected error for unknown plant")
	}
	if _, err := os.Stat(filepath.Join(dir, "riwayat_prediksi.csv")); !os.IsNotExist(err) {
		t.Error("failed prediction created the history log")
	}
}

func TestPredictRequiresPlant(t *testing.T) {
	setupWorkspace(t)

	if _, err := execute(t, "predict", "--leaf-color", "1"); err == nil {
		t.Fatal("expected error for missing --plant")
	}
}

func TestHistorySummaryExport(t *testing.T) {
	setupWorkspace(t)

	runs := [][]string{
		{"predict", "--plant", "Padi", "--leaf-color", "1", "--leaf-spot", "--stem-rot"},
		{"predict", "--plant", "Padi", "--leaf-color", "1", "--leaf-spot"},
		{"predict", "--plant", "Cabai", "--leaf-color", "0", "--leaf-spot"},
	}
	for _, args := range runs {
		if out, err := execute(t, args...); err != nil {
			t.Fatalf("%v: %v\n%s", args, err, out)
		}
	}

	out, err := execute(t, "history", "--plant", "Padi")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.Count(out, "Padi") != 2 || strings.Contains(out, "Cabai") {
		t.Errorf("history filter:\n%s", out)
	}

	out, err = execute(t, "summary")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	for _, want := range []string{"Penyakit", "Busuk Batang", "Hawar Daun", "Sehat"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	total := regexp.MustCompile(`Total\s*[│|]\s*3\s*[│|]`)
	if !total.MatchString(out) {
		t.Errorf("summary total:\n%s", out)
	}

	out, err = execute(t, "summary", "--plant", "Padi", "--markdown")
	if err != nil {
		t.Fatalf("summary markdown: %v", err)
	}
	if !strings.Contains(out, "| Penyakit |") || strings.Contains(out, "Sehat") {
		t.Errorf("summary markdown:\n%s", out)
	}

	out, err = execute(t, "export", "--plant", "Cabai")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	want := "Nama_Tanaman,Warna_Daun,Bercak_Daun,Daun_Layu,Batang_Busuk,Pertumbuhan_Terhambat,Prediksi_Penyakit\n" +
		"Cabai,Hijau,1,0,0,0,Sehat\n"
	if out != want {
		t.Errorf("export:\ngot  %q\nwant %q", out, want)
	}
}

func TestHistoryEmpty(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "No predictions recorded.") {
		t.Errorf("output: %s", out)
	}
}

func TestExportToFile(t *testing.T) {
	dir := setupWorkspace(t)

	if _, err := execute(t, "export", "-o", "out.csv"); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "Nama_Tanaman,") {
		t.Errorf("export: got %q", data)
	}
}

func TestCategories(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, want := range []string{
		"Nama Tanaman: Cabai, Jagung, Kentang, Padi, Tomat",
		"Warna Daun: 0=Hijau, 1=Kuning, 2=Coklat",
		"Gejala: Bercak Daun, Daun Layu, Batang Busuk, Pertumbuhan Terhambat",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestArchiveWithoutStorage(t *testing.T) {
	setupWorkspace(t)

	out, err := execute(t, "archive")
	if err == nil {
		t.Fatalf("expected error without a storage provider:\n%s", out)
	}
	if !strings.Contains(err.Error(), "storage disabled") {
		t.Errorf("error: got %v, want storage disabled", err)
	}
}
