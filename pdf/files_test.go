package pdf_test

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"zadachnik/pdf"
)

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.csv", "a.CSV", "note.txt", filepath.Join("sub", "c.csv")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := pdf.FindFiles(dir, ".csv")
	if err != nil {
		t.Fatalf("FindFiles() error = %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("found %d files, want 3: %v", len(files), files)
	}
	// uppercase extension matches, .txt does not
	if filepath.Base(files[0]) != "a.CSV" {
		t.Errorf("files[0] = %q, want a.CSV first in sorted order", files[0])
	}
}

func TestSelectFile(t *testing.T) {
	files := []string{"one.csv", "two.csv"}

	tests := []struct {
		name     string
		input    string
		want     string
		wantOK   bool
	}{
		{"pick second", "2\n", "two.csv", true},
		{"cancel with zero", "0\n", "", false},
		{"garbage then valid", "abc\n9\n1\n", "one.csv", true},
		{"eof cancels", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, ok := pdf.SelectFile(bufio.NewReader(strings.NewReader(tt.input)), &out, files, "CSV")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SelectFile() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	var out bytes.Buffer
	if _, ok := pdf.SelectFile(bufio.NewReader(strings.NewReader("1\n")), &out, nil, "CSV"); ok {
		t.Error("SelectFile() with no files returned ok")
	}
}

func TestSelectEncoding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"\n", pdf.EncodingUTF8},
		{"1\n", pdf.EncodingUTF8},
		{"2\n", pdf.EncodingWindows1251},
		{"x\n2\n", pdf.EncodingWindows1251},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, ok := pdf.SelectEncoding(bufio.NewReader(strings.NewReader(tt.input)), &out)
		if !ok || got != tt.want {
			t.Errorf("SelectEncoding(%q) = (%q, %v), want (%q, true)", tt.input, got, ok, tt.want)
		}
	}
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		name string
		base string
		idx  int
		want string
	}{
		{"plain", "Invoice", 1, "Invoice_1.pdf"},
		{"invalid chars", `a/b\c:d`, 2, "a_b_c_d_2.pdf"},
		{"whitespace collapsed", "  too   many \t spaces ", 3, "too many spaces_3.pdf"},
		{"empty falls back", "", 4, "record_4_4.pdf"},
		{"only invalid chars", "///", 5, "___5.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pdf.OutputFileName(tt.base, tt.idx); got != tt.want {
				t.Errorf("OutputFileName(%q, %d) = %q, want %q", tt.base, tt.idx, got, tt.want)
			}
		})
	}

	long := pdf.OutputFileName(strings.Repeat("я", 300), 1)
	if got := len([]rune(long)); got != 200+len("_1.pdf") {
		t.Errorf("long name has %d runes, want 200-rune base plus suffix", got)
	}
}
