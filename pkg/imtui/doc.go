// Package imtui is a small immediate-mode toolkit on top of Bubble Tea.
//
// A Program calls a draw function for every message. The function builds the
// whole screen through a Ui and reads interaction results straight from the
// widget calls, for example ui.TextEdit(...).HasFocus. Anything that must
// outlive a frame is kept in the Context's Memory, keyed by widget ID.
//
// Focus is owned by the Context and resolved before any widget runs, using
// the layout recorded by the previous frame: Tab and Shift+Tab cycle fields,
// Esc and Enter blur, and clicks focus the field under the pointer. Popups
// are drawn as overlay layers and swallow clicks aimed at fields beneath
// them.
//
// Widgets ask for another frame with RequestRepaint. The Harness drives a
// Program synchronously so tests can script keys and clicks and inspect the
// rendered view.
package imtui
