package imtui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// ID identifies a widget, or one piece of a widget's state, across frames.
type ID uint64

// NewID derives an ID from any salt. Equal salts give equal IDs.
func NewID(salt any) ID {
	h := fnv.New64a()
	fmt.Fprintf(h, "%T:%v", salt, salt)
	return ID(h.Sum64())
}

// With derives a child ID, typically (widget, role).
func (id ID) With(part any) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	_, _ = h.Write(buf[:])
	fmt.Fprintf(h, "/%T:%v", part, part)
	return ID(h.Sum64())
}

func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}
