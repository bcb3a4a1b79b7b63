package notemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// Write emits m in canonical notemap form: a [notemap-flags] section
// followed by one [Drum nn] section per entry, ascending by device note.
func Write(w io.Writer, m *Mapper, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Note-mapper ('drums') file %s\n", name)
	bw.WriteString("#\n")
	bw.WriteString("#  map-type    drums, patches, or multi; only drums are applied.\n")
	bw.WriteString("#  gm-channel  GM percussion channel (1-16).\n")
	bw.WriteString("#  dev-channel Device channel (1-16), 0 to accept any channel.\n")
	bw.WriteString("#  reverse     Map GM notes back to the device when true.\n")
	bw.WriteString("\n[notemap-flags]\n\n")

	fmt.Fprintf(bw, "map-type = %s\n", m.MapType)
	fmt.Fprintf(bw, "gm-channel = %d\n", m.GMChannel)
	fmt.Fprintf(bw, "dev-channel = %d\n", m.DevChannel)
	fmt.Fprintf(bw, "reverse = %t\n\n", m.Reverse())

	entries := m.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DevNote < entries[j].DevNote
	})
	for _, e := range entries {
		writeEntry(bw, e)
	}

	fmt.Fprintf(bw, "# End of %s\n#\n%s\n", name, Modeline)
	return bw.Flush()
}

func writeEntry(w io.Writer, e Entry) {
	fmt.Fprintf(w, "[Drum %d]\n\n", e.DevNote)
	fmt.Fprintf(w, "dev-name = %q\n", e.DevName)
	fmt.Fprintf(w, "gm-name = %q\n", e.GMName)
	fmt.Fprintf(w, "dev-note = %d\n", e.DevNote)
	fmt.Fprintf(w, "gm-note = %d\n\n", e.GMNote)
}

// WriteFile writes m to path, creating or truncating it
func WriteFile(path string, m *Mapper) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return Write(f, m, filepath.Base(path))
}

// Copy reads the notemap at src and saves it in canonical form at dst
func Copy(src, dst string) (*Mapper, error) {
	if src == "" || dst == "" {
		return nil, fmt.Errorf("copy notemap: source and destination required")
	}
	m, err := ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("copy %s: %w", src, err)
	}
	if err := WriteFile(dst, m); err != nil {
		return nil, fmt.Errorf("copy to %s: %w", dst, err)
	}
	return m, nil
}
