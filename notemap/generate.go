package notemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Test notemap layout
const (
	TestFileName  = "test.notemap"
	TestFirstNote = 12
	TestLastNote  = 127
	TestOffset    = 12 // dev-note minus gm-note
)

// Modeline ends every notemap file
const Modeline = "# vim: sw=4 ts=4 wm=4 et ft=dosini"

// TestEntries returns the drum entries written to a test notemap,
// ascending by device note.
func TestEntries() []Entry {
	entries := make([]Entry, 0, TestLastNote-TestFirstNote+1)
	for x := TestFirstNote; x <= TestLastNote; x++ {
		entries = append(entries, Entry{
			DevNote: x,
			GMNote:  x - TestOffset,
			DevName: fmt.Sprintf("Dev note %d", x),
			GMName:  fmt.Sprintf("GM note %d", x-TestOffset),
		})
	}
	return entries
}

// GenerateTest writes the test notemap to w. name is the file name
// shown in the header line.
func GenerateTest(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Test notemap file: %s\n\n", name)
	for _, e := range TestEntries() {
		writeEntry(bw, e)
	}
	bw.WriteString(Modeline)

	return bw.Flush()
}

// WriteTestFile creates (or truncates) path and writes the test notemap
// into it. The header names the file by its base name.
func WriteTestFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := GenerateTest(f, filepath.Base(path)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
