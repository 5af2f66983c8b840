package dialog

import "fmt"

// ButtonID is the semantic role of a dialog button. Embedding callers use
// it to recognise standard roles regardless of the displayed label text.
type ButtonID int

// The fixed semantic role enumeration. ButtonNone marks a button whose
// label was never mapped to a role; it is distinct from "no button pushed"
// even though both use -1 internally.
const (
	ButtonNone ButtonID = -1

	ButtonOK ButtonID = iota - 1
	ButtonYes
	ButtonSave
	ButtonApply
	ButtonClose
	ButtonNo
	ButtonCancel
	ButtonHelp
	ButtonContextHelp
)

// buttonIDsByName maps the case-sensitive semantic names accepted in a
// button id table to their roles.
var buttonIDsByName = map[string]ButtonID{
	"ok":           ButtonOK,
	"yes":          ButtonYes,
	"save":         ButtonSave,
	"apply":        ButtonApply,
	"close":        ButtonClose,
	"no":           ButtonNo,
	"cancel":       ButtonCancel,
	"help":         ButtonHelp,
	"context_help": ButtonContextHelp,
}

// Button pairs a semantic role with a display label.
type Button struct {
	ID    ButtonID
	Label string
}

// resolveButtons builds the ordered button list from the supplied labels
// and attaches semantic roles from the id table. Every entry in ids must
// name a label that exists in labels; an unknown semantic name is not an
// error, it simply attaches no role.
func resolveButtons(labels []string, ids map[string]string) ([]Button, error) {
	buttons := make([]Button, 0, len(labels))
	for _, label := range labels {
		buttons = append(buttons, Button{ID: ButtonNone, Label: label})
	}

	for name, label := range ids {
		id, ok := buttonIDsByName[name]
		if !ok {
			id = ButtonNone
		}
		matched := false
		for i := range buttons {
			if buttons[i].Label == label {
				buttons[i].ID = id
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("dialog: no button with label %q for id %q", label, name)
		}
	}

	return buttons, nil
}

// defaultButtons is the OK/Cancel pair used when a dialog requests buttons
// without supplying any.
func defaultButtons() []Button {
	return []Button{
		{ID: ButtonOK, Label: "OK"},
		{ID: ButtonCancel, Label: "Cancel"},
	}
}
