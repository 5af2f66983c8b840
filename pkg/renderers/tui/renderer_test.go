package tui

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dialogkit/pkg/descriptor"
	"github.com/goliatone/go-dialogkit/pkg/dialog"
	"github.com/goliatone/go-dialogkit/pkg/render"
)

type stubDriver struct {
	inputs    []string
	selects   []int
	confirms  []bool
	textAreas []string
	infos     []string

	inputPos   int
	selectPos  int
	confirmPos int
	textPos    int

	abortButtonSelect bool
	selectsSeen       []SelectConfig
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectsSeen = append(s.selectsSeen, cfg)
	if s.selectPos >= len(s.selects) {
		if s.abortButtonSelect {
			return 0, ErrAborted
		}
		return -1, errors.New("no select scripted")
	}
	val := s.selects[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no text area scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func buildDialog(t *testing.T, includeButtons bool) *dialog.Dialog {
	t.Helper()
	dlg, err := dialog.New([]descriptor.Source{
		descriptor.Values{"class": "label", "name": "banner", "label": "Export settings"},
		descriptor.Values{"class": "edit", "name": "actor", "value": "old"},
		descriptor.Values{"class": "intedit", "name": "layer", "value": 1, "min": 0, "max": 5},
		descriptor.Values{"class": "dropdown", "name": "style", "items": []any{"Default", "Alt"}, "value": "Default"},
		descriptor.Values{"class": "checkbox", "name": "keep", "value": false},
	}, nil, nil, includeButtons)
	if err != nil {
		t.Fatal(err)
	}
	return dlg
}

func TestRenderCollectsValues(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"new actor", "3"},
		selects:  []int{1, 0}, // dropdown picks "Alt", button picks "OK"
		confirms: []bool{true},
	}

	dlg := buildDialog(t, true)
	renderer := New(WithPromptDriver(driver))

	out, err := renderer.Render(context.Background(), dlg, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var payload struct {
		Button any            `json:"button"`
		Values map[string]any `json:"values"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if payload.Button != "OK" {
		t.Errorf("button = %v, want %q", payload.Button, "OK")
	}
	// The label contributes a nil entry: every named control appears in
	// readback, value-less ones included.
	wantValues := map[string]any{
		"banner": nil,
		"actor":  "new actor",
		"layer":  float64(3),
		"style":  "Alt",
		"keep":   true,
	}
	if diff := cmp.Diff(wantValues, payload.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	if len(driver.infos) != 1 || driver.infos[0] != "Export settings" {
		t.Errorf("label not announced: %v", driver.infos)
	}
}

func TestRenderClampsNumericInput(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"actor", "99"}, // 99 exceeds the max of 5
		selects:  []int{0, 0},
		confirms: []bool{false},
	}

	dlg := buildDialog(t, true)
	renderer := New(WithPromptDriver(driver))
	if _, err := renderer.Render(context.Background(), dlg, render.Options{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	_, values := dlg.ReadBack()
	got, _ := values.Get("layer")
	if got != 5 {
		t.Errorf("layer = %v, want clamped 5", got)
	}
}

func TestRenderAbortAtButtonsCancels(t *testing.T) {
	driver := &stubDriver{
		inputs:            []string{"actor", "2"},
		selects:           []int{0}, // only the dropdown is scripted
		confirms:          []bool{false},
		abortButtonSelect: true,
	}

	dlg := buildDialog(t, true)
	renderer := New(WithPromptDriver(driver))

	out, err := renderer.Render(context.Background(), dlg, render.Options{})
	if err != nil {
		t.Fatalf("aborting the button prompt should cancel, not fail: %v", err)
	}

	var payload struct {
		Button any `json:"button"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Button != false {
		t.Errorf("button = %v, want false", payload.Button)
	}
}

func TestRenderRestoresState(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"restored", "2"},
		selects:  []int{0},
		confirms: []bool{true},
	}

	dlg := buildDialog(t, false)
	renderer := New(WithPromptDriver(driver))

	// State sets the edit's default before prompting; the driver sees it.
	if _, err := renderer.Render(context.Background(), dlg, render.Options{State: "actor:from archive"}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	_, values := dlg.ReadBack()
	got, _ := values.Get("actor")
	if got != "restored" {
		t.Errorf("actor = %v", got)
	}
}

func TestRenderWithoutButtonsOmitsActivation(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"a", "1"},
		selects:  []int{0},
		confirms: []bool{false},
	}

	dlg := buildDialog(t, false)
	renderer := New(WithPromptDriver(driver))
	out, err := renderer.Render(context.Background(), dlg, render.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatal(err)
	}
	if _, present := payload["button"]; present {
		t.Error("button key should be absent when the dialog has no buttons")
	}
}
