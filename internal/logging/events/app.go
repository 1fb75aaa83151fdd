package events

import "github.com/atomicstack/combopick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(value string, custom bool) {
	logging.Trace("app.finish", map[string]interface{}{"value": value, "custom": custom})
}

func (AppTracer) Abort(reason string) {
	logging.Trace("app.abort", map[string]interface{}{"reason": reason})
}

func (AppTracer) Source(kind string, count int) {
	logging.Trace("app.source", map[string]interface{}{"kind": kind, "count": count})
}
