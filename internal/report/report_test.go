package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func buildTestResult() (model.Design, model.Result) {
	d := model.DemoDesign()
	placement := model.Placement{}
	x := 0.0
	for _, name := range d.ComponentOrder() {
		placement[name] = model.Position{X: x, Y: 10}
		x += 15
	}
	metrics := model.Metrics{PairSum: 42, Longest: 30, PairNorm: 0.3, LongestNorm: 0.2, Score: 0.36}
	return d, model.Result{Placement: placement, Metrics: metrics}
}

func TestExportPDFCreatesFile(t *testing.T) {
	d, result := buildTestResult()
	path := filepath.Join(t.TempDir(), "board.pdf")

	if err := ExportPDF(path, d, result); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file, got error: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty PDF file")
	}
}

func TestExportPDFRejectsEmptyPlacement(t *testing.T) {
	d, _ := buildTestResult()
	err := ExportPDF(filepath.Join(t.TempDir(), "board.pdf"), d, model.Result{})
	if err == nil {
		t.Fatal("expected error for empty placement")
	}
}

func TestExportLabelsCreatesFile(t *testing.T) {
	d, result := buildTestResult()
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, d, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected output file, got error: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected non-empty PDF file")
	}
}

func TestCollectLabelInfosMatchesPlacementCount(t *testing.T) {
	d, result := buildTestResult()
	labels := CollectLabelInfos(d, result)
	if len(labels) != len(result.Placement) {
		t.Fatalf("expected %d labels, got %d", len(result.Placement), len(labels))
	}
}

func TestExportLabelsRejectsEmptyPlacement(t *testing.T) {
	d, _ := buildTestResult()
	err := ExportLabels(filepath.Join(t.TempDir(), "labels.pdf"), d, model.Result{})
	if err == nil {
		t.Fatal("expected error for empty placement")
	}
}
