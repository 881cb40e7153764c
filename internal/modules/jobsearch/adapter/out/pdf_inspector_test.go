package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"rsc.io/pdf"
)

func TestInspectRejectsNonPDF(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cv.pdf")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := NewLocalPDFInspector().Inspect(context.Background(), path); err == nil {
		t.Fatalf("expected error for non-pdf content")
	}
}

func TestPageTextBreaksLinesOnBaseline(t *testing.T) {
	t.Parallel()
	runs := []pdf.Text{
		{S: "Ana", Y: 700}, {S: " ", Y: 700}, {S: "Diaz", Y: 700},
		{S: "Data", Y: 680}, {S: " Engineer", Y: 680.4},
	}
	got := pageText(runs)
	want := "Ana Diaz\nData Engineer"
	if got != want {
		t.Fatalf("pageText = %q, want %q", got, want)
	}
}
