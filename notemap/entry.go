package notemap

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateNote  = errors.New("duplicate note")
	ErrNoteRange      = errors.New("note out of range")
	ErrNoDrumSections = errors.New("no [Drum nn] sections found")
)

// MaxNote is the highest MIDI note number
const MaxNote = 127

// Entry maps one device drum note to its closest General MIDI note
type Entry struct {
	DevNote int    `yaml:"devNote"`
	GMNote  int    `yaml:"gmNote"`
	DevName string `yaml:"devName,omitempty"`
	GMName  string `yaml:"gmName,omitempty"`
}

func (e Entry) validate() error {
	if e.DevNote < 0 || e.DevNote > MaxNote {
		return fmt.Errorf("dev-note %d: %w", e.DevNote, ErrNoteRange)
	}
	if e.GMNote < 0 || e.GMNote > MaxNote {
		return fmt.Errorf("gm-note %d: %w", e.GMNote, ErrNoteRange)
	}
	return nil
}

// ParseError reports a malformed line in a notemap file
type ParseError struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %s: %v", e.File, e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
