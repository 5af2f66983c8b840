package dialogkit

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateHTML(t *testing.T) {
	doc := &Document{
		Controls: []Values{
			{"class": "edit", "name": "actor", "value": "Ryu"},
		},
	}

	out, err := GenerateHTML(context.Background(), doc, true)
	if err != nil {
		t.Fatalf("GenerateHTML: %v", err)
	}
	for _, want := range []string{`name="actor"`, ">OK</button>"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewDialogRoundTrip(t *testing.T) {
	dlg, err := NewDialog([]Values{
		{"class": "edit", "name": "actor", "value": "Ken"},
		{"class": "checkbox", "name": "keep", "value": true},
	}, false)
	if err != nil {
		t.Fatal(err)
	}

	state := dlg.Serialise()
	dlg.Unserialise(state)

	_, values := dlg.ReadBack()
	if got, _ := values.Get("actor"); got != "Ken" {
		t.Errorf("actor = %v", got)
	}
}
