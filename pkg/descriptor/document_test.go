package descriptor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const yamlDoc = `
controls:
  - class: label
    label: Style settings
  - class: edit
    name: actor
    value: Unknown
  - class: intedit
    name: layer
    value: 3
    min: 0
    max: 10
buttons:
  - Apply
  - Close
buttonIds:
  apply: Apply
  close: Close
`

func TestParseDocumentYAML(t *testing.T) {
	doc, err := ParseDocument([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if len(doc.Controls) != 3 {
		t.Fatalf("got %d controls, want 3", len(doc.Controls))
	}
	if got := String(doc.Controls[1], "name", ""); got != "actor" {
		t.Errorf("control name = %q", got)
	}
	if got := Int(doc.Controls[2], "max", -1); got != 10 {
		t.Errorf("intedit max = %d", got)
	}
	if diff := cmp.Diff([]string{"Apply", "Close"}, doc.ButtonLabels); diff != "" {
		t.Errorf("button labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"apply": "Apply", "close": "Close"}, doc.ButtonIDs); diff != "" {
		t.Errorf("button ids mismatch (-want +got):\n%s", diff)
	}

	sources := doc.Sources()
	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3", len(sources))
	}
	if got := String(sources[0], "class", ""); got != "label" {
		t.Errorf("first source class = %q", got)
	}
}

func TestParseDocumentJSON(t *testing.T) {
	data := []byte(`{
		"controls": [{"class": "checkbox", "name": "keep", "value": true}],
		"buttons": ["OK"]
	}`)

	doc, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(doc.Controls) != 1 {
		t.Fatalf("got %d controls, want 1", len(doc.Controls))
	}
	if !Bool(doc.Controls[0], "value", false) {
		t.Error("checkbox value should be true")
	}
}

func TestParseDocumentErrors(t *testing.T) {
	if _, err := ParseDocument(nil); err == nil {
		t.Error("empty document should fail")
	}
	if _, err := ParseDocument([]byte("   \n\t")); err == nil {
		t.Error("blank document should fail")
	}
	if _, err := ParseDocument([]byte("{invalid: [yaml")); err == nil {
		t.Error("malformed document should fail")
	}
}
