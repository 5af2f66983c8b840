// Package render defines the contract between the dialog aggregate and the
// pluggable presenters (terminal, static HTML) plus the registry they are
// discovered through.
package render

import (
	"context"

	"github.com/goliatone/go-dialogkit/pkg/dialog"
)

// Options carries per-request presentation inputs.
type Options struct {
	// State is a previously serialised dialog state to restore into the
	// dialog before presenting. Empty means present the descriptor
	// defaults.
	State string
}

// Renderer presents a dialog and produces a byte representation of the
// outcome: interactive renderers collect values into the dialog and report
// the readback, static renderers emit markup. Renderers may mutate the
// dialog's control values and pushed button; that is how interactive
// presentations feed results back to the embedding caller.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, dlg *dialog.Dialog, opts Options) ([]byte, error)
}
