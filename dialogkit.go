// Package dialogkit builds interactive dialogs from descriptor documents
// and renders them through pluggable presenters. The root package
// re-exports the common entry points; the pkg/ subpackages hold the full
// surface.
package dialogkit

import (
	"context"

	"github.com/goliatone/go-dialogkit/pkg/descriptor"
	"github.com/goliatone/go-dialogkit/pkg/dialog"
	"github.com/goliatone/go-dialogkit/pkg/orchestrator"
)

// Values aliases descriptor.Values for callers constructing control
// definitions programmatically.
type Values = descriptor.Values

// Document aliases descriptor.Document, the parsed form of a dialog
// definition file.
type Document = descriptor.Document

// Dialog aliases dialog.Dialog.
type Dialog = dialog.Dialog

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module for callers that want to register their own renderers.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewDialog builds a dialog from control definitions, applying the default
// OK/Cancel pair when buttons are requested but none are named.
func NewDialog(controls []Values, includeButtons bool, opts ...dialog.Option) (*dialog.Dialog, error) {
	sources := make([]descriptor.Source, len(controls))
	for i, c := range controls {
		sources[i] = c
	}
	return dialog.New(sources, nil, nil, includeButtons, opts...)
}

// GenerateHTML builds a dialog from the document and renders it with the
// default HTML renderer. It is the simplest entry point for callers that
// just want form markup.
func GenerateHTML(ctx context.Context, doc *descriptor.Document, includeButtons bool, options ...orchestrator.Option) ([]byte, error) {
	out, _, err := orchestrator.New(options...).Present(ctx, orchestrator.Request{
		Document:       doc,
		IncludeButtons: includeButtons,
	})
	return out, err
}

// GenerateHTMLFromFile loads a JSON or YAML document from disk and renders
// it, delegating to GenerateHTML.
func GenerateHTMLFromFile(ctx context.Context, path string, includeButtons bool, options ...orchestrator.Option) ([]byte, error) {
	doc, err := descriptor.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return GenerateHTML(ctx, &doc, includeButtons, options...)
}
