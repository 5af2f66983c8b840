package tui

import "errors"

// ErrAborted signals the user aborted input (e.g., Ctrl+C) before the
// dialog completed.
var ErrAborted = errors.New("tui: aborted")
