// Package dialog materialises typed dialog controls from the untyped
// descriptors an embedding scripting layer supplies, resolves the dialog's
// button row, and round-trips control values through a flat serialised
// string so dialog state can be persisted and restored.
package dialog

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-dialogkit/pkg/descriptor"
)

// Attributes holds the shared identity and layout hints every control
// carries. Positions and sizes are opaque hints for whatever presents the
// dialog; this package never interprets them.
type Attributes struct {
	Name   string
	Hint   string
	X, Y   int
	Width  int
	Height int
}

// Control is the uniform capability contract every dialog control
// satisfies. CanSerialiseValue reports whether the control participates in
// the flat serialised state; SerialiseValue and UnserialiseValue are only
// meaningful when it does. UnserialiseValue must tolerate foreign or
// garbage input, clamping or ignoring rather than failing. ReadBack reports
// the control's current value to the embedding caller, nil for controls
// that have none.
type Control interface {
	Attributes() Attributes
	CanSerialiseValue() bool
	SerialiseValue() string
	UnserialiseValue(serialised string)
	ReadBack() any
}

func readAttributes(src descriptor.Source) Attributes {
	return Attributes{
		Name:   descriptor.String(src, "name", ""),
		Hint:   descriptor.String(src, "hint", ""),
		X:      descriptor.Int(src, "x", 0),
		Y:      descriptor.Int(src, "y", 0),
		Width:  descriptor.Int(src, "width", 1),
		Height: descriptor.Int(src, "height", 1),
	}
}

// newControl builds one control from its descriptor. The class name is
// matched case-insensitively against the fixed catalog; anything else is a
// fatal construction error because a wrong class is an authoring bug, not a
// value problem.
func newControl(src descriptor.Source) (Control, error) {
	class := strings.ToLower(descriptor.String(src, "class", ""))
	switch class {
	case "":
		return nil, fmt.Errorf("dialog: control entry has no class")
	case "label":
		return newLabel(src), nil
	case "edit":
		return newEdit(src), nil
	case "intedit":
		return newIntEdit(src), nil
	case "floatedit":
		return newFloatEdit(src), nil
	case "textbox":
		return newTextbox(src), nil
	case "dropdown":
		return newDropdown(src), nil
	case "checkbox":
		return newCheckbox(src), nil
	case "color":
		return newColorPicker(src, false), nil
	case "coloralpha":
		return newColorPicker(src, true), nil
	case "alpha":
		// Historical quirk: scripts could declare an "alpha" control and
		// got a plain text edit. Preserved for compatibility with old
		// descriptors; do not use in new ones.
		return newEdit(src), nil
	default:
		return nil, fmt.Errorf("dialog: unrecognised control class %q", class)
	}
}
