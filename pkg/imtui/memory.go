package imtui

// Memory holds widget state between frames. It is owned by a Context and
// only touched from the frame loop, so it carries no locking.
type Memory struct {
	data map[ID]any
}

func newMemory() *Memory {
	return &Memory{data: make(map[ID]any)}
}

// Get returns the value stored under id when it has type T.
func Get[T any](m *Memory, id ID) (T, bool) {
	v, ok := m.data[id]
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// GetOr returns the stored value or fallback.
func GetOr[T any](m *Memory, id ID, fallback T) T {
	if v, ok := Get[T](m, id); ok {
		return v
	}
	return fallback
}

// Insert stores v under id, replacing anything already there.
func Insert[T any](m *Memory, id ID, v T) {
	m.data[id] = v
}

// Remove drops the value under id if it has type T.
func Remove[T any](m *Memory, id ID) {
	if _, ok := Get[T](m, id); ok {
		delete(m.data, id)
	}
}

// Len reports how many entries are stored.
func (m *Memory) Len() int {
	return len(m.data)
}
