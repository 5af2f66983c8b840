package render

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialogkit/pkg/dialog"
)

type fakeRenderer struct {
	name string
}

func (f *fakeRenderer) Name() string        { return f.name }
func (f *fakeRenderer) ContentType() string { return "text/plain" }

func (f *fakeRenderer) Render(context.Context, *dialog.Dialog, Options) ([]byte, error) {
	return nil, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&fakeRenderer{name: "tui"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := reg.Get("tui")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name() != "tui" {
		t.Errorf("Name() = %q", got.Name())
	}

	if _, err := reg.Get("missing"); err == nil {
		t.Error("unknown name should fail")
	}
}

func TestRegistryRejectsDuplicatesAndEmptyNames(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(&fakeRenderer{name: "html"}); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(&fakeRenderer{name: "html"}); err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("duplicate register err = %v", err)
	}
	if err := reg.Register(&fakeRenderer{}); err == nil {
		t.Error("empty name should fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Error("nil renderer should fail")
	}
}

func TestRegistryListIsSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"tui", "html", "json"} {
		reg.MustRegister(&fakeRenderer{name: name})
	}
	if diff := cmp.Diff([]string{"html", "json", "tui"}, reg.List()); diff != "" {
		t.Errorf("List mismatch (-want +got):\n%s", diff)
	}
}
