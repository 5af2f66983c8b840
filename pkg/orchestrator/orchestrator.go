// Package orchestrator coordinates the pipeline from dialog definition to
// rendered output: parse or accept a dialog, restore any saved state, pick
// a renderer from the registry, and present.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/goliatone/go-dialogkit/pkg/descriptor"
	"github.com/goliatone/go-dialogkit/pkg/dialog"
	"github.com/goliatone/go-dialogkit/pkg/render"
	"github.com/goliatone/go-dialogkit/pkg/renderers/html"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithRenderer registers an additional renderer on the orchestrator's
// registry during construction.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		o.pending = append(o.pending, renderer)
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		if name != "" {
			o.defaultRenderer = name
		}
	}
}

// WithDialogOptions forwards options (diagnostics sinks and the like) to
// every dialog the orchestrator constructs.
func WithDialogOptions(opts ...dialog.Option) Option {
	return func(o *Orchestrator) {
		o.dialogOpts = append(o.dialogOpts, opts...)
	}
}

// Orchestrator presents dialogs through named renderers. The zero
// configuration registers the HTML renderer and uses it by default; callers
// add interactive renderers when they have a terminal to run them on.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	dialogOpts      []dialog.Option
	pending         []render.Renderer
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{defaultRenderer: defaultRendererName}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		htmlRenderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: initialise html renderer: %w", err)
			return
		}
		if err := o.registry.Register(htmlRenderer); err != nil {
			o.initialiseErr = err
			return
		}
	}
	for _, renderer := range o.pending {
		if renderer == nil {
			continue
		}
		if err := o.registry.Register(renderer); err != nil {
			o.initialiseErr = err
			return
		}
	}
	o.pending = nil
}

// Request describes the inputs required to present a dialog.
type Request struct {
	// Document is a parsed dialog definition. Optional when Dialog is
	// supplied.
	Document *descriptor.Document

	// Dialog allows callers to bypass construction when they already hold
	// a dialog instance.
	Dialog *dialog.Dialog

	// IncludeButtons controls whether a dialog built from Document gets a
	// button row that participates in readback.
	IncludeButtons bool

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// State is a previously serialised dialog state to restore before
	// presenting.
	State string
}

// Present builds the dialog (unless one is supplied), selects the renderer,
// and returns its output. The dialog used is returned alongside so callers
// can read values back or serialise its state after interactive sessions.
func (o *Orchestrator) Present(ctx context.Context, req Request) ([]byte, *dialog.Dialog, error) {
	if o.initialiseErr != nil {
		return nil, nil, o.initialiseErr
	}

	dlg := req.Dialog
	if dlg == nil {
		if req.Document == nil {
			return nil, nil, fmt.Errorf("orchestrator: request needs a document or a dialog")
		}
		built, err := dialog.NewFromDocument(*req.Document, req.IncludeButtons, o.dialogOpts...)
		if err != nil {
			return nil, nil, err
		}
		dlg = built
	}

	name := req.Renderer
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, nil, err
	}

	out, err := renderer.Render(ctx, dlg, render.Options{State: req.State})
	if err != nil {
		return nil, nil, err
	}
	return out, dlg, nil
}

// Renderers lists the names of the registered renderers.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}
