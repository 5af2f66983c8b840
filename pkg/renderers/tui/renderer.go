// Package tui presents a dialog interactively on a terminal. Prompts are
// issued in control insertion order through a PromptDriver (survey-backed
// by default), collected values are written back into the dialog, and the
// rendered output is the dialog's readback serialised as JSON.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/goliatone/go-dialogkit/pkg/color"
	"github.com/goliatone/go-dialogkit/pkg/dialog"
	"github.com/goliatone/go-dialogkit/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver PromptDriver
}

// New constructs a TUI renderer with the survey prompt driver by default.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "tui" }

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string { return "application/json" }

// Render walks the dialog's controls, prompting for each value, then asks
// which button to push when the dialog uses buttons. Aborting at the button
// prompt counts as cancelling the dialog; aborting mid-control returns
// ErrAborted.
func (r *Renderer) Render(ctx context.Context, dlg *dialog.Dialog, opts render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if dlg == nil {
		return nil, errors.New("tui: dialog is required")
	}
	if opts.State != "" {
		dlg.Unserialise(opts.State)
	}

	for _, ctl := range dlg.Controls() {
		if err := r.promptControl(ctx, ctl); err != nil {
			return nil, err
		}
	}

	if dlg.UsesButtons() {
		if err := r.promptButtons(ctx, dlg); err != nil {
			return nil, err
		}
	}

	activated, values := dlg.ReadBack()
	out := map[string]any{"values": values.AsMap()}
	if dlg.UsesButtons() {
		out["button"] = activated
	}
	return json.Marshal(out)
}

func (r *Renderer) promptControl(ctx context.Context, ctl dialog.Control) error {
	attrs := ctl.Attributes()

	switch c := ctl.(type) {
	case *dialog.Label:
		if c.Text == "" {
			return nil
		}
		return r.driver.Info(ctx, c.Text)

	case *dialog.Textbox:
		response, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: promptMessage(attrs),
			Default: c.Text,
			Help:    attrs.Hint,
		})
		if err != nil {
			return err
		}
		c.Text = response
		return nil

	case *dialog.Edit:
		response, err := r.driver.Input(ctx, InputConfig{
			Message: promptMessage(attrs),
			Default: c.Text,
			Help:    attrs.Hint,
		})
		if err != nil {
			return err
		}
		c.Text = response
		return nil

	case *dialog.IntEdit:
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   promptMessage(attrs),
			Default:   strconv.Itoa(c.Value),
			Help:      attrs.Hint,
			Validator: validateInt,
		})
		if err != nil {
			return err
		}
		if v, err := strconv.Atoi(response); err == nil {
			c.Value = clampInt(v, c.Min, c.Max)
		}
		return nil

	case *dialog.FloatEdit:
		response, err := r.driver.Input(ctx, InputConfig{
			Message:   promptMessage(attrs),
			Default:   strconv.FormatFloat(c.Value, 'g', -1, 64),
			Help:      attrs.Hint,
			Validator: validateFloat,
		})
		if err != nil {
			return err
		}
		if v, err := strconv.ParseFloat(response, 64); err == nil {
			c.Value = clampFloat(v, c.Min, c.Max)
		}
		return nil

	case *dialog.Dropdown:
		if len(c.Items) == 0 {
			response, err := r.driver.Input(ctx, InputConfig{
				Message: promptMessage(attrs),
				Default: c.Value,
				Help:    attrs.Hint,
			})
			if err != nil {
				return err
			}
			c.Value = response
			return nil
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      promptMessage(attrs),
			Options:      c.Items,
			DefaultIndex: indexOf(c.Items, c.Value),
			Help:         attrs.Hint,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(c.Items) {
			c.Value = c.Items[idx]
		}
		return nil

	case *dialog.Checkbox:
		message := c.Label
		if message == "" {
			message = promptMessage(attrs)
		}
		response, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: c.Value,
			Help:    attrs.Hint,
		})
		if err != nil {
			return err
		}
		c.Value = response
		return nil

	case *dialog.ColorPicker:
		response, err := r.driver.Input(ctx, InputConfig{
			Message: promptMessage(attrs),
			Default: c.Value.Hex(c.Alpha),
			Help:    attrs.Hint,
		})
		if err != nil {
			return err
		}
		c.Value = color.Parse(response)
		return nil

	default:
		// Unknown control types are presented read-only: nothing to ask.
		return nil
	}
}

func (r *Renderer) promptButtons(ctx context.Context, dlg *dialog.Dialog) error {
	buttons := dlg.Buttons()
	labels := make([]string, len(buttons))
	for i, btn := range buttons {
		labels[i] = btn.Label
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      "Choose an action",
		Options:      labels,
		DefaultIndex: 0,
	})
	if err != nil {
		if errors.Is(err, ErrAborted) {
			dlg.PushButton(-1)
			return nil
		}
		return err
	}
	dlg.PushButton(idx)
	return nil
}

func promptMessage(attrs dialog.Attributes) string {
	if attrs.Name != "" {
		return attrs.Name
	}
	return "value"
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
