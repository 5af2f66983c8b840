package dialog

import (
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-dialogkit/pkg/codec"
	"github.com/goliatone/go-dialogkit/pkg/color"
	"github.com/goliatone/go-dialogkit/pkg/descriptor"
)

// Label is a static text control. It produces no serialisable value and its
// readback value is nil.
type Label struct {
	attrs Attributes
	Text  string
}

func newLabel(src descriptor.Source) *Label {
	return &Label{
		attrs: readAttributes(src),
		Text:  descriptor.String(src, "label", ""),
	}
}

// Attributes implements Control.
func (l *Label) Attributes() Attributes { return l.attrs }

// CanSerialiseValue implements Control; labels carry no value.
func (l *Label) CanSerialiseValue() bool { return false }

// SerialiseValue implements Control.
func (l *Label) SerialiseValue() string { return "" }

// UnserialiseValue implements Control.
func (l *Label) UnserialiseValue(string) {}

// ReadBack implements Control.
func (l *Label) ReadBack() any { return nil }

// Edit is a single-line text control. The descriptor key `value` is the
// documented source for its text; `text` is also accepted and wins when
// both are present, a compatibility behaviour old scripts rely on.
type Edit struct {
	attrs Attributes
	Text  string
}

func newEdit(src descriptor.Source) *Edit {
	text := descriptor.String(src, "value", "")
	text = descriptor.String(src, "text", text)
	return &Edit{attrs: readAttributes(src), Text: text}
}

// Attributes implements Control.
func (e *Edit) Attributes() Attributes { return e.attrs }

// CanSerialiseValue implements Control.
func (e *Edit) CanSerialiseValue() bool { return true }

// SerialiseValue implements Control.
func (e *Edit) SerialiseValue() string { return codec.Encode(e.Text) }

// UnserialiseValue implements Control.
func (e *Edit) UnserialiseValue(serialised string) { e.Text = codec.Decode(serialised) }

// ReadBack implements Control.
func (e *Edit) ReadBack() any { return e.Text }

// Textbox is a multiline text control. It behaves exactly like Edit; the
// distinct type is a rendering hint only.
type Textbox struct {
	Edit
}

func newTextbox(src descriptor.Source) *Textbox {
	return &Textbox{Edit: *newEdit(src)}
}

// IntEdit is an integer-only edit with an inclusive range. A descriptor
// whose min is not below its max is treated as "no range": both bounds
// snap to the platform int limits instead of rejecting the control.
type IntEdit struct {
	attrs    Attributes
	Value    int
	Min, Max int
}

func newIntEdit(src descriptor.Source) *IntEdit {
	ctl := &IntEdit{
		attrs: readAttributes(src),
		Value: descriptor.Int(src, "value", 0),
		Min:   descriptor.Int(src, "min", math.MinInt),
		Max:   descriptor.Int(src, "max", math.MaxInt),
	}
	if ctl.Min >= ctl.Max {
		ctl.Min = math.MinInt
		ctl.Max = math.MaxInt
	}
	return ctl
}

// Attributes implements Control.
func (e *IntEdit) Attributes() Attributes { return e.attrs }

// CanSerialiseValue implements Control.
func (e *IntEdit) CanSerialiseValue() bool { return true }

// SerialiseValue implements Control.
func (e *IntEdit) SerialiseValue() string { return strconv.Itoa(e.Value) }

// UnserialiseValue implements Control. Garbage input degrades to the
// longest leading integer, or zero.
func (e *IntEdit) UnserialiseValue(serialised string) { e.Value = parseLeadingInt(serialised) }

// ReadBack implements Control.
func (e *IntEdit) ReadBack() any { return e.Value }

// FloatEdit is the floating point analogue of IntEdit, with an advisory
// step size for presenters that render a spinner.
type FloatEdit struct {
	attrs    Attributes
	Value    float64
	Min, Max float64
	Step     float64
}

func newFloatEdit(src descriptor.Source) *FloatEdit {
	ctl := &FloatEdit{
		attrs: readAttributes(src),
		Value: descriptor.Float(src, "value", 0),
		Min:   descriptor.Float(src, "min", -math.MaxFloat64),
		Max:   descriptor.Float(src, "max", math.MaxFloat64),
		Step:  descriptor.Float(src, "step", 0),
	}
	if ctl.Min >= ctl.Max {
		ctl.Min = -math.MaxFloat64
		ctl.Max = math.MaxFloat64
	}
	return ctl
}

// Attributes implements Control.
func (e *FloatEdit) Attributes() Attributes { return e.attrs }

// CanSerialiseValue implements Control.
func (e *FloatEdit) CanSerialiseValue() bool { return true }

// SerialiseValue implements Control.
func (e *FloatEdit) SerialiseValue() string { return strconv.FormatFloat(e.Value, 'g', -1, 64) }

// UnserialiseValue implements Control.
func (e *FloatEdit) UnserialiseValue(serialised string) { e.Value = parseLeadingFloat(serialised) }

// ReadBack implements Control.
func (e *FloatEdit) ReadBack() any { return e.Value }

// Dropdown is a selection over a fixed ordered item list. When the
// descriptor's value is not one of the items, the selection resets to the
// first item so the presented dialog always shows a valid choice.
type Dropdown struct {
	attrs Attributes
	Items []string
	Value string
}

func newDropdown(src descriptor.Source) *Dropdown {
	ctl := &Dropdown{
		attrs: readAttributes(src),
		Items: descriptor.StringSlice(src, "items"),
		Value: descriptor.String(src, "value", ""),
	}
	if len(ctl.Items) > 0 && !contains(ctl.Items, ctl.Value) {
		ctl.Value = ctl.Items[0]
	}
	return ctl
}

// Attributes implements Control.
func (d *Dropdown) Attributes() Attributes { return d.attrs }

// CanSerialiseValue implements Control.
func (d *Dropdown) CanSerialiseValue() bool { return true }

// SerialiseValue implements Control.
func (d *Dropdown) SerialiseValue() string { return codec.Encode(d.Value) }

// UnserialiseValue implements Control. Restored values are not checked for
// membership; a stale archive may select an item that no longer exists.
func (d *Dropdown) UnserialiseValue(serialised string) { d.Value = codec.Decode(serialised) }

// ReadBack implements Control.
func (d *Dropdown) ReadBack() any { return d.Value }

// Checkbox is a boolean control with its own caption.
type Checkbox struct {
	attrs Attributes
	Label string
	Value bool
}

func newCheckbox(src descriptor.Source) *Checkbox {
	return &Checkbox{
		attrs: readAttributes(src),
		Label: descriptor.String(src, "label", ""),
		Value: descriptor.Bool(src, "value", false),
	}
}

// Attributes implements Control.
func (c *Checkbox) Attributes() Attributes { return c.attrs }

// CanSerialiseValue implements Control.
func (c *Checkbox) CanSerialiseValue() bool { return true }

// SerialiseValue implements Control.
func (c *Checkbox) SerialiseValue() string {
	if c.Value {
		return "1"
	}
	return "0"
}

// UnserialiseValue implements Control; anything other than "0" is true.
func (c *Checkbox) UnserialiseValue(serialised string) { c.Value = serialised != "0" }

// ReadBack implements Control.
func (c *Checkbox) ReadBack() any { return c.Value }

// ColorPicker holds an RGBA value. Alpha is fixed at construction (the
// `coloralpha` class) and decides whether the serialised and readback hex
// forms carry an alpha channel.
type ColorPicker struct {
	attrs Attributes
	Value color.Color
	Alpha bool
}

func newColorPicker(src descriptor.Source, alpha bool) *ColorPicker {
	return &ColorPicker{
		attrs: readAttributes(src),
		Value: color.Parse(descriptor.String(src, "value", "")),
		Alpha: alpha,
	}
}

// Attributes implements Control.
func (c *ColorPicker) Attributes() Attributes { return c.attrs }

// CanSerialiseValue implements Control.
func (c *ColorPicker) CanSerialiseValue() bool { return true }

// SerialiseValue implements Control.
func (c *ColorPicker) SerialiseValue() string { return codec.Encode(c.Value.Hex(c.Alpha)) }

// UnserialiseValue implements Control.
func (c *ColorPicker) UnserialiseValue(serialised string) {
	c.Value = color.Parse(codec.Decode(serialised))
}

// ReadBack implements Control.
func (c *ColorPicker) ReadBack() any { return c.Value.Hex(c.Alpha) }

func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// parseLeadingInt reads an optionally signed decimal prefix, mirroring the
// tolerance of C's atoi so restored archives never abort on bad numerics.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == end {
		return 0
	}
	v, err := strconv.Atoi(s[:digits])
	if err != nil {
		return 0
	}
	return v
}

// parseLeadingFloat reads a decimal floating prefix (sign, digits, fraction,
// exponent) the way C's atof would, yielding 0 for garbage.
func parseLeadingFloat(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
	}
	if end == start || (end == start+1 && s[start] == '.') {
		return 0
	}
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		expEnd := end + 1
		if expEnd < len(s) && (s[expEnd] == '+' || s[expEnd] == '-') {
			expEnd++
		}
		expDigits := expEnd
		for expDigits < len(s) && s[expDigits] >= '0' && s[expDigits] <= '9' {
			expDigits++
		}
		if expDigits > expEnd {
			end = expDigits
		}
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
