package doc

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadSplitsLinesAndMeasuresWidth(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("short\na much longer line here\nmid\n"))
	d, err := Load(path)
	if err != nil {
		t.Fatalf("expected clean load, got %v", err)
	}
	if len(d.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(d.Lines))
	}
	if d.MaxWidth != len("a much longer line here") {
		t.Fatalf("expected max width %d, got %d", len("a much longer line here"), d.MaxWidth)
	}
}

func TestLoadExpandsTabsAndCRLF(t *testing.T) {
	path := writeFile(t, "b.txt", []byte("a\tb\r\nnext\r\n"))
	d, err := Load(path)
	if err != nil {
		t.Fatalf("expected clean load, got %v", err)
	}
	if d.Lines[0] != "a    b" {
		t.Fatalf("expected expanded tab, got %q", d.Lines[0])
	}
	if len(d.Lines) != 2 {
		t.Fatalf("expected CRLF handling, got %d lines", len(d.Lines))
	}
}

func TestLoadRejectsBinary(t *testing.T) {
	path := writeFile(t, "c.bin", []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01})
	if _, err := Load(path); err == nil {
		t.Fatal("expected binary rejection")
	}
}

func TestIsSupportedExt(t *testing.T) {
	for _, ext := range []string{".txt", ".MD", ".go", ""} {
		if !IsSupportedExt(ext) {
			t.Fatalf("expected %q to be supported", ext)
		}
	}
	for _, ext := range []string{".png", ".mp3", ".zip"} {
		if IsSupportedExt(ext) {
			t.Fatalf("expected %q to be rejected", ext)
		}
	}
}
