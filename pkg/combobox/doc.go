// Package combobox implements an editable combo box for the imtui toolkit: a
// single-line text field with a dropdown of candidate values filtered by what
// the user types.
//
// Values and options:
//   - A bound value implements Value, which renders it as editable text.
//   - Candidates implement Option[V]. An option decides how it matches the
//     typed text (FilterByText), how its row reads (Display), what value it
//     commits (IntoValue) and whether it equals the bound value
//     (EqualsValue). Text and ParseDisplay cover strings and enum-like types.
//   - WithCustom wraps any option source so the typed text itself can be
//     committed. The custom entry is always last and only shows when nothing
//     else matches exactly.
//
// Per-frame flow (Show):
//   - The text buffer lives in Memory under the box's identity. While the
//     field is idle the buffer follows the bound value; gaining focus clears
//     it so every candidate is offered.
//   - While focused, and in the frame focus is lost, FilterOptions runs a
//     single pass over the options in source order, MoveCursor applies the
//     frame's navigation key, and the popup draws the visible window of rows.
//   - The cursor is stored as a source index, not a row, so it stays on the
//     same candidate while the filter hides and reveals others.
//   - Clicking a row or pressing Enter commits it into the bound value and
//     marks the response changed.
//
// Show never blocks and never fails; options are enumerated once per frame
// and only while the popup is open.
package combobox
