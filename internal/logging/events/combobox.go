package events

import "github.com/atomicstack/combopick/internal/logging"

type ComboBoxTracer struct{}

type CursorTracer struct{}

type FilterTracer struct{}

type FocusTracer struct{}

var (
	ComboBox = ComboBoxTracer{}
	Cursor   = CursorTracer{}
	Filter   = FilterTracer{}
	Focus    = FocusTracer{}
)

func (ComboBoxTracer) FocusGained(id string) {
	logging.Trace("combobox.focus.gained", map[string]interface{}{"id": id})
}

func (ComboBoxTracer) FocusLost(id, text string) {
	logging.Trace("combobox.focus.lost", map[string]interface{}{"id": id, "text": text})
}

func (ComboBoxTracer) Resync(id, hint string) {
	logging.Trace("combobox.resync", map[string]interface{}{"id": id, "hint": hint})
}

func (ComboBoxTracer) Commit(id string, source int, text, value string) {
	logging.Trace("combobox.commit", map[string]interface{}{
		"id":     id,
		"source": source,
		"text":   text,
		"value":  value,
	})
}

func (ComboBoxTracer) Forget(id string) {
	logging.Trace("combobox.cursor.forget", map[string]interface{}{"id": id})
}

func (CursorTracer) Seed(id string, source int) {
	logging.Trace("cursor.seed", map[string]interface{}{"id": id, "source": source})
}

func (CursorTracer) Move(id, motion string, from, to int) {
	logging.Trace("cursor.move", map[string]interface{}{"id": id, "motion": motion, "from": from, "to": to})
}

func (FilterTracer) Pass(id, text string, total, shown int) {
	logging.Trace("filter.pass", map[string]interface{}{"id": id, "text": text, "total": total, "shown": shown})
}

func (FocusTracer) Change(from, to string) {
	logging.Trace("focus.change", map[string]interface{}{"from": from, "to": to})
}
