package descriptor

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a parsed dialog definition: the three positional inputs a
// dialog is constructed from, as they would arrive from the embedding
// scripting layer.
type Document struct {
	// Controls holds one descriptor per control, in presentation order.
	Controls []Values

	// ButtonLabels lists button captions in display order. Optional.
	ButtonLabels []string

	// ButtonIDs maps semantic button names ("ok", "cancel", ...) to the
	// label they should be attached to. Optional.
	ButtonIDs map[string]string
}

// Sources exposes the control descriptors through the Source interface.
func (d Document) Sources() []Source {
	out := make([]Source, len(d.Controls))
	for i, values := range d.Controls {
		out[i] = values
	}
	return out
}

type documentFile struct {
	Controls  []map[string]any  `json:"controls" yaml:"controls"`
	Buttons   []string          `json:"buttons" yaml:"buttons"`
	ButtonIDs map[string]string `json:"buttonIds" yaml:"buttonIds"`
}

// ParseDocument decodes a dialog definition from JSON or YAML bytes. JSON is
// attempted first so payloads produced by other tooling keep their exact
// number semantics; YAML is the fallback.
func ParseDocument(data []byte) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("descriptor: document is empty")
	}

	var file documentFile
	if err := json.Unmarshal(data, &file); err != nil {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Document{}, fmt.Errorf("descriptor: parse document: invalid JSON or YAML")
		}
	}

	doc := Document{
		ButtonLabels: append([]string(nil), file.Buttons...),
	}
	if len(file.ButtonIDs) > 0 {
		doc.ButtonIDs = make(map[string]string, len(file.ButtonIDs))
		for name, label := range file.ButtonIDs {
			doc.ButtonIDs[name] = label
		}
	}
	for _, raw := range file.Controls {
		doc.Controls = append(doc.Controls, Values(raw))
	}
	return doc, nil
}

// LoadDocument reads and parses a dialog definition file.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("descriptor: read %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}
