package dialog

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-dialogkit/pkg/codec"
	"github.com/goliatone/go-dialogkit/pkg/descriptor"
)

// noButton is the buttonPushed sentinel for "none/cancelled".
const noButton = -1

// Dialog owns an ordered control list and button row built from the three
// positional descriptor inputs. It tracks which button was activated and
// implements readback and state (un)serialisation over the whole set.
//
// A Dialog is a plain synchronous value: no locking, no I/O. Callers that
// mutate controls from a UI thread while reading values elsewhere must
// serialise access themselves.
type Dialog struct {
	controls     []Control
	buttons      []Button
	buttonPushed int
	useButtons   bool
	diag         DiagnosticFunc
}

// DiagnosticFunc receives printf-style non-fatal warnings (out-of-range
// button index and similar). The default sink discards them.
type DiagnosticFunc func(format string, args ...any)

// Option configures a Dialog at construction.
type Option func(*Dialog)

// WithDiagnostics installs a sink for non-fatal warnings.
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(d *Dialog) {
		if fn != nil {
			d.diag = fn
		}
	}
}

// New constructs a dialog from an ordered control descriptor list, the
// optional button labels, and the optional semantic-name to label table.
// Construction fails only when the overall shape is broken: a nil control
// entry, a missing or unknown control class, or an id table entry naming an
// absent label. Individual bad fields inside a descriptor fall back to
// defaults instead.
func New(controls []descriptor.Source, buttonLabels []string, buttonIDs map[string]string, includeButtons bool, opts ...Option) (*Dialog, error) {
	d := &Dialog{
		buttonPushed: noButton,
		useButtons:   includeButtons,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(d)
	}

	for i, src := range controls {
		if src == nil {
			return nil, fmt.Errorf("dialog: control entry %d is not a table", i)
		}
		ctl, err := newControl(src)
		if err != nil {
			return nil, err
		}
		d.controls = append(d.controls, ctl)
	}

	if includeButtons {
		buttons, err := resolveButtons(buttonLabels, buttonIDs)
		if err != nil {
			return nil, err
		}
		d.buttons = buttons
	}
	if len(d.buttons) == 0 {
		d.buttons = defaultButtons()
	}

	return d, nil
}

// NewFromDocument constructs a dialog from a parsed dialog document.
func NewFromDocument(doc descriptor.Document, includeButtons bool, opts ...Option) (*Dialog, error) {
	return NewFromSources(doc.Sources(), doc.ButtonLabels, doc.ButtonIDs, includeButtons, opts...)
}

// NewFromSources is an alias for New kept for symmetry with
// NewFromDocument.
func NewFromSources(controls []descriptor.Source, buttonLabels []string, buttonIDs map[string]string, includeButtons bool, opts ...Option) (*Dialog, error) {
	return New(controls, buttonLabels, buttonIDs, includeButtons, opts...)
}

// Controls returns the dialog's controls in insertion order. The slice is
// shared; callers mutate control values through it (that is how presenters
// push user input back into the dialog).
func (d *Dialog) Controls() []Control { return d.controls }

// Buttons returns the resolved button row in display order.
func (d *Dialog) Buttons() []Button { return d.buttons }

// UsesButtons reports whether the dialog was constructed with a button row
// that participates in readback.
func (d *Dialog) UsesButtons() bool { return d.useButtons }

// PushButton records the activated button. An index outside the button row
// is treated as "no button pushed" rather than an error; the dialog stays
// usable and the incident goes to the diagnostics sink.
func (d *Dialog) PushButton(index int) {
	if index != noButton && (index < 0 || index >= len(d.buttons)) {
		d.logf("dialog: button index %d out of range, treating as cancel", index)
		index = noButton
	}
	d.buttonPushed = index
}

// ButtonPushed returns the recorded button index, or -1 when none was
// pushed.
func (d *Dialog) ButtonPushed() int { return d.buttonPushed }

// ReadBack reports the dialog outcome. When the dialog uses buttons,
// activated is false if no button was pushed or the pushed button's role is
// cancel, and the pushed button's label otherwise; when the dialog does not
// use buttons, activated is nil and carries no meaning. The returned value
// map holds every control's current value keyed by name in insertion
// order; controls sharing a name overwrite earlier entries, last one wins.
func (d *Dialog) ReadBack() (activated any, values *ValueMap) {
	if d.useButtons {
		if d.buttonPushed == noButton || d.buttons[d.buttonPushed].ID == ButtonCancel {
			activated = false
		} else {
			activated = d.buttons[d.buttonPushed].Label
		}
	}

	values = NewValueMap()
	for _, ctl := range d.controls {
		values.Set(ctl.Attributes().Name, ctl.ReadBack())
	}
	return activated, values
}

// Serialise flattens every serialisable control into
// `name1:value1|name2:value2|...`, in insertion order. Names and values
// pass through the codec so delimiters never appear unescaped. Controls
// without a serialisable value are not represented at all.
func (d *Dialog) Serialise() string {
	var b strings.Builder
	for _, ctl := range d.controls {
		if !ctl.CanSerialiseValue() {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(codec.Encode(ctl.Attributes().Name))
		b.WriteByte(':')
		b.WriteString(ctl.SerialiseValue())
	}
	return b.String()
}

// Unserialise restores control values from a string produced by Serialise,
// possibly by an older version of the dialog. Entries naming unknown
// controls and entries without a separator are skipped silently so stale
// archives degrade instead of failing; when several controls share a name,
// each receives the value.
func (d *Dialog) Unserialise(serialised string) {
	for _, token := range strings.Split(serialised, "|") {
		sep := strings.IndexByte(token, ':')
		if sep < 0 {
			continue
		}
		name := codec.Decode(token[:sep])
		value := token[sep+1:]

		for _, ctl := range d.controls {
			if ctl.Attributes().Name == name && ctl.CanSerialiseValue() {
				ctl.UnserialiseValue(value)
			}
		}
	}
}

func (d *Dialog) logf(format string, args ...any) {
	if d.diag != nil {
		d.diag(format, args...)
	}
}

// ValueMap is an insertion-ordered name to value mapping used for dialog
// readback. Setting an existing name keeps its position and replaces the
// value.
type ValueMap struct {
	names  []string
	values map[string]any
}

// NewValueMap creates an empty ValueMap.
func NewValueMap() *ValueMap {
	return &ValueMap{values: make(map[string]any)}
}

// Set stores value under name, appending the name on first use.
func (m *ValueMap) Set(name string, value any) {
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value stored under name.
func (m *ValueMap) Get(name string) (any, bool) {
	value, ok := m.values[name]
	return value, ok
}

// Names returns the stored names in insertion order.
func (m *ValueMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Len reports the number of stored names.
func (m *ValueMap) Len() int { return len(m.names) }

// AsMap returns a plain map copy of the stored values.
func (m *ValueMap) AsMap() map[string]any {
	out := make(map[string]any, len(m.values))
	for name, value := range m.values {
		out[name] = value
	}
	return out
}
