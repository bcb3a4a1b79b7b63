package notemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const flagsSection = "notemap-flags"

type drumSection struct {
	line    int
	entry   Entry
	hasDev  bool
	hasGM   bool
	section int
}

type parser struct {
	name  string
	m     *Mapper
	drums []drumSection

	reverse bool
	section string
	cur     *drumSection
}

// ReadFile parses the notemap at path
func ReadFile(path string) (*Mapper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse reads a notemap. Text before the first section is ignored, as
// are sections other than [notemap-flags] and [Drum nn].
func Parse(r io.Reader, name string) (*Mapper, error) {
	p := &parser{name: name, m: NewMapper()}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := p.line(lineNo, strings.TrimSpace(scanner.Text())); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if err := p.closeDrum(); err != nil {
		return nil, err
	}

	if len(p.drums) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoDrumSections)
	}
	if err := p.m.SetReverse(p.reverse); err != nil {
		return nil, err
	}
	for _, d := range p.drums {
		if err := p.m.Add(d.entry); err != nil {
			return nil, &ParseError{File: name, Line: d.line, Msg: "drum section", Err: err}
		}
	}
	return p.m, nil
}

func (p *parser) errorf(line int, format string, args ...any) error {
	return &ParseError{File: p.name, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) line(n int, line string) error {
	if line == "" || line[0] == '#' || line[0] == ';' {
		return nil
	}

	if line[0] == '[' {
		if !strings.HasSuffix(line, "]") {
			return p.errorf(n, "unterminated section %q", line)
		}
		return p.openSection(n, strings.TrimSpace(line[1:len(line)-1]))
	}

	// Free text before the first section (a generator header) and the
	// bodies of other sections are skipped
	if p.section != flagsSection && p.cur == nil {
		return nil
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return p.errorf(n, "expected key = value, got %q", line)
	}
	key = strings.TrimSpace(key)
	value = unquote(strings.TrimSpace(value))

	if p.cur != nil {
		return p.drumValue(n, key, value)
	}
	return p.flag(n, key, value)
}

func (p *parser) openSection(n int, name string) error {
	if err := p.closeDrum(); err != nil {
		return err
	}
	p.section = name

	if rest, ok := strings.CutPrefix(name, "Drum "); ok {
		num, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return p.errorf(n, "bad drum section %q", name)
		}
		p.cur = &drumSection{line: n, section: num}
	}
	return nil
}

func (p *parser) closeDrum() error {
	d := p.cur
	if d == nil {
		return nil
	}
	p.cur = nil

	if !d.hasGM {
		return p.errorf(d.line, "[Drum %d] has no gm-note", d.section)
	}
	if !d.hasDev {
		return p.errorf(d.line, "[Drum %d] has no dev-note", d.section)
	}
	p.drums = append(p.drums, *d)
	return nil
}

func (p *parser) flag(n int, key, value string) error {
	switch key {
	case "map-type":
		p.m.MapType = value
	case "gm-channel":
		ch, err := parseChannel(value)
		if err != nil {
			return p.errorf(n, "gm-channel: %v", err)
		}
		p.m.GMChannel = ch
		p.m.gmChannelSet = true
	case "dev-channel", "device-channel":
		ch, err := parseChannel(value)
		if err != nil {
			return p.errorf(n, "dev-channel: %v", err)
		}
		p.m.DevChannel = ch
		p.m.devChannelSet = true
	case "reverse":
		b, err := parseBool(value)
		if err != nil {
			return p.errorf(n, "reverse: %v", err)
		}
		p.reverse = b
	}
	return nil
}

func (p *parser) drumValue(n int, key, value string) error {
	d := p.cur
	switch key {
	case "dev-name":
		d.entry.DevName = value
	case "gm-name":
		d.entry.GMName = value
	case "dev-note":
		note, err := strconv.Atoi(value)
		if err != nil {
			return p.errorf(n, "dev-note: %v", err)
		}
		d.entry.DevNote = note
		d.hasDev = true
	case "gm-note":
		note, err := strconv.Atoi(value)
		if err != nil {
			return p.errorf(n, "gm-note: %v", err)
		}
		d.entry.GMNote = note
		d.hasGM = true
	}
	return nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

func parseChannel(s string) (int, error) {
	ch, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if ch < 0 || ch > 16 {
		return 0, errors.New("channel must be 0-16")
	}
	return ch, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "on":
		return true, nil
	case "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
