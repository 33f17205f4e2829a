package doc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 4

// Document is a loaded text file, split into display lines.
type Document struct {
	Path  string
	Lines []string
	// MaxWidth is the display width of the widest line, the horizontal
	// scroll extent.
	MaxWidth int
}

// Name returns the file name without its directory.
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// Load reads a text file into a Document. Tabs are expanded and the
// widest line is recorded for horizontal scrolling. Binary content is
// rejected.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return nil, fmt.Errorf("%s: binary file", filepath.Base(path))
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))
	lines := strings.Split(text, "\n")
	// A trailing newline produces one phantom empty line; drop it.
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}

	return &Document{Path: path, Lines: lines, MaxWidth: maxWidth}, nil
}
