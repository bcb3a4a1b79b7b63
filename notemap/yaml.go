package notemap

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type marshalNotemap struct {
	MapType    string  `yaml:"mapType"`
	GMChannel  int     `yaml:"gmChannel"`
	DevChannel int     `yaml:"devChannel,omitempty"`
	Reverse    bool    `yaml:"reverse,omitempty"`
	Drums      []Entry `yaml:"drums"`
}

// MarshalYAML encodes the mapper flags and entries as YAML
func MarshalYAML(m *Mapper) ([]byte, error) {
	doc := marshalNotemap{
		MapType:    m.MapType,
		GMChannel:  m.GMChannel,
		DevChannel: m.DevChannel,
		Reverse:    m.Reverse(),
		Drums:      m.Entries(),
	}
	return yaml.Marshal(doc)
}

// WriteYAML writes the YAML form of m to w
func WriteYAML(w io.Writer, m *Mapper) error {
	data, err := MarshalYAML(m)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// UnmarshalYAML decodes a mapper written by MarshalYAML
func UnmarshalYAML(data []byte) (*Mapper, error) {
	var doc marshalNotemap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("notemap yaml: %w", err)
	}
	if len(doc.Drums) == 0 {
		return nil, fmt.Errorf("notemap yaml: %w", ErrNoDrumSections)
	}

	m := NewMapper()
	if doc.MapType != "" {
		m.MapType = doc.MapType
	}
	if doc.GMChannel != 0 {
		m.GMChannel = doc.GMChannel
		m.gmChannelSet = true
	}
	if doc.DevChannel != 0 {
		m.DevChannel = doc.DevChannel
		m.devChannelSet = true
	}
	if err := m.SetReverse(doc.Reverse); err != nil {
		return nil, err
	}
	for _, e := range doc.Drums {
		if err := m.Add(e); err != nil {
			return nil, fmt.Errorf("notemap yaml: %w", err)
		}
	}
	return m, nil
}
