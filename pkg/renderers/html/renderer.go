// Package html renders a dialog as a static HTML form. Markup comes from
// an embedded pongo2 template bundle that callers can replace wholesale;
// hint text may carry simple markup and is sanitised before injection.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-dialogkit/pkg/dialog"
	"github.com/goliatone/go-dialogkit/pkg/render"
)

const dialogTemplate = "templates/dialog.tmpl"

// Option configures the HTML renderer.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer implements render.Renderer producing text/html output.
type Renderer struct {
	templates *pongo2.TemplateSet
	sanitizer *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	set := pongo2.NewSet("dialogkit", pongo2.NewFSLoader(cfg.templateFS))
	return &Renderer{
		templates: set,
		sanitizer: bluemonday.UGCPolicy(),
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return "html" }

// ContentType reports the MIME type of Render's output.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render emits the dialog as an HTML form. The renderer never mutates the
// dialog beyond restoring the requested state; activation is a concern for
// whatever serves the form.
func (r *Renderer) Render(_ context.Context, dlg *dialog.Dialog, opts render.Options) ([]byte, error) {
	if dlg == nil {
		return nil, fmt.Errorf("html: dialog is required")
	}
	if opts.State != "" {
		dlg.Unserialise(opts.State)
	}

	tmpl, err := r.templates.FromCache(dialogTemplate)
	if err != nil {
		return nil, fmt.Errorf("html: load template: %w", err)
	}

	fields := make([]pongo2.Context, 0, len(dlg.Controls()))
	for _, ctl := range dlg.Controls() {
		fields = append(fields, r.fieldContext(ctl))
	}

	var buttons []string
	if dlg.UsesButtons() {
		for _, btn := range dlg.Buttons() {
			buttons = append(buttons, btn.Label)
		}
	}

	out, err := tmpl.ExecuteBytes(pongo2.Context{
		"fields":  fields,
		"buttons": buttons,
	})
	if err != nil {
		return nil, fmt.Errorf("html: execute template: %w", err)
	}
	return out, nil
}

func (r *Renderer) fieldContext(ctl dialog.Control) pongo2.Context {
	attrs := ctl.Attributes()
	field := pongo2.Context{
		"name": attrs.Name,
		"hint": r.sanitizer.Sanitize(attrs.Hint),
	}

	switch c := ctl.(type) {
	case *dialog.Label:
		field["kind"] = "label"
		field["text"] = c.Text

	case *dialog.Textbox:
		field["kind"] = "textbox"
		field["value"] = c.Text
		rows := attrs.Height
		if rows < 2 {
			rows = 2
		}
		field["rows"] = strconv.Itoa(rows)

	case *dialog.Edit:
		field["kind"] = "edit"
		field["value"] = c.Text

	case *dialog.IntEdit:
		field["kind"] = "number"
		field["value"] = strconv.Itoa(c.Value)
		if c.Min != math.MinInt {
			field["min"] = strconv.Itoa(c.Min)
		}
		if c.Max != math.MaxInt {
			field["max"] = strconv.Itoa(c.Max)
		}

	case *dialog.FloatEdit:
		field["kind"] = "number"
		field["value"] = strconv.FormatFloat(c.Value, 'g', -1, 64)
		if c.Min != -math.MaxFloat64 {
			field["min"] = strconv.FormatFloat(c.Min, 'g', -1, 64)
		}
		if c.Max != math.MaxFloat64 {
			field["max"] = strconv.FormatFloat(c.Max, 'g', -1, 64)
		}
		if c.Step != 0 {
			field["step"] = strconv.FormatFloat(c.Step, 'g', -1, 64)
		}

	case *dialog.Dropdown:
		field["kind"] = "dropdown"
		field["items"] = c.Items
		field["value"] = c.Value

	case *dialog.Checkbox:
		field["kind"] = "checkbox"
		field["text"] = c.Label
		field["checked"] = c.Value

	case *dialog.ColorPicker:
		if c.Alpha {
			// <input type="color"> cannot carry an alpha channel; fall
			// back to a text input holding the 8-digit hex form.
			field["kind"] = "edit"
			field["value"] = c.Value.Hex(true)
		} else {
			field["kind"] = "color"
			field["value"] = c.Value.Hex(false)
		}

	default:
		field["kind"] = "edit"
		field["value"] = ""
	}

	return field
}
